package scenario

import "github.com/san-kum/aurasim/internal/dynamo"

const unitEpsilon = 1e-9

// deploy advances the airbag by one frame once the fall passes the trigger
// angle. Progress is clamped to [0, 1] and never decreases.
func (a *Animator) deploy() Event {
	if !a.cfg.Airbag || a.state.Angle < a.bagCfg.TriggerAngle || a.bag.Deployed() {
		return 0
	}

	var ev Event
	if a.bag.DeployProgress == 0 {
		ev |= EventDeployStarted
	}
	a.bag.DeployProgress = clampUnit(a.bag.DeployProgress + a.bagCfg.Step)
	if a.bag.Deployed() {
		ev |= EventDeployed
	}

	a.state.Phase = dynamo.PhaseDeploying
	a.state.Status = a.bagCfg.DeployStatus
	return ev
}

// clampUnit limits v to [0, 1]; values within float noise of 1 become 1.
func clampUnit(v float64) float64 {
	if v >= 1-unitEpsilon {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
