package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/dynamo"
)

func stepTo(s *Simulation, frame int) Snapshot {
	snap := s.Snapshot()
	for s.Frame() < frame {
		snap = s.Step()
	}
	return snap
}

func scenarioOf(snap Snapshot, name string) ScenarioSnapshot {
	sc, ok := snap.Scenario(name)
	Expect(ok).To(BeTrue(), "scenario %s missing", name)
	return sc
}

var _ = Describe("Simulation", func() {
	var s *Simulation

	BeforeEach(func() {
		s = New(config.DefaultConfig(), nil)
	})

	Describe("scenario animators", func() {
		It("keeps every angle non-decreasing and within its threshold", func() {
			prev := map[string]float64{}
			for i := 0; i < 150; i++ {
				snap := s.Step()
				for _, sc := range snap.Scenarios {
					threshold := config.FallThreshold
					if sc.Sitting {
						threshold = config.SitThreshold
					}
					Expect(sc.State.Angle).To(BeNumerically(">=", prev[sc.Name]))
					Expect(sc.State.Angle).To(BeNumerically("<=", threshold))
					prev[sc.Name] = sc.State.Angle
				}
			}
		})

		It("never leaves the terminal state once reached", func() {
			seen := map[string]bool{}
			for i := 0; i < 150; i++ {
				snap := s.Step()
				for _, sc := range snap.Scenarios {
					if seen[sc.Name] {
						Expect(sc.State.Terminal).To(BeTrue())
						Expect(sc.State.Active).To(BeFalse())
					}
					seen[sc.Name] = seen[sc.Name] || sc.State.Terminal
				}
			}
			Expect(seen).To(HaveLen(3))
			for name, done := range seen {
				Expect(done).To(BeTrue(), "scenario %s never finished", name)
			}
		})

		It("finishes the unprotected fall on frame 70 and holds it on frame 71", func() {
			at69 := scenarioOf(stepTo(s, 69), config.ScenarioFall)
			Expect(at69.State.Terminal).To(BeFalse())

			at70 := scenarioOf(stepTo(s, 70), config.ScenarioFall)
			Expect(at70.State.Terminal).To(BeTrue())
			Expect(at70.State.Status).To(Equal("CEDERA SERIUS"))
			Expect(at70.State.StatusLine()).To(Equal("HASIL: CEDERA SERIUS"))
			Expect(at70.State.Color).To(Equal(config.ColorInjury))

			at71 := scenarioOf(stepTo(s, 71), config.ScenarioFall)
			Expect(at71.State).To(Equal(at70.State))
		})

		It("finishes the sit at 45 degrees as safe", func() {
			sit := scenarioOf(stepTo(s, 45), config.ScenarioSit)
			Expect(sit.State.Terminal).To(BeTrue())
			Expect(sit.State.Angle).To(Equal(45.0))
			Expect(sit.State.Status).To(Equal("AMAN (Duduk Normal)"))
		})
	})

	Describe("airbag deployment", func() {
		It("starts on the first frame at or past 30 degrees", func() {
			at23 := scenarioOf(stepTo(s, 23), config.ScenarioAirbag)
			Expect(at23.State.Angle).To(BeNumerically("<", 30))
			Expect(at23.Bag.DeployProgress).To(BeZero())

			at24 := scenarioOf(stepTo(s, 24), config.ScenarioAirbag)
			Expect(at24.State.Angle).To(BeNumerically(">=", 30))
			Expect(at24.Bag.DeployProgress).To(BeNumerically(">", 0))
			Expect(at24.State.Phase).To(Equal(dynamo.PhaseDeploying))
		})

		It("stays in [0, 1], never decreases and reaches exactly 1", func() {
			prev := 0.0
			for i := 0; i < 100; i++ {
				sc := scenarioOf(s.Step(), config.ScenarioAirbag)
				if sc.State.Angle < config.AirbagTrigger {
					Expect(sc.Bag.DeployProgress).To(BeZero())
				}
				Expect(sc.Bag.DeployProgress).To(BeNumerically(">=", prev))
				Expect(sc.Bag.DeployProgress).To(BeNumerically("<=", 1))
				prev = sc.Bag.DeployProgress
			}
			Expect(prev).To(Equal(1.0))
		})

		It("deploys fully within eleven frames of the trigger", func() {
			sc := scenarioOf(stepTo(s, 24+10), config.ScenarioAirbag)
			Expect(sc.Bag.Deployed()).To(BeTrue())
		})
	})

	Describe("dashboard", func() {
		It("never raises the battery and never drops below zero", func() {
			prev := 100.0
			for i := 0; i < 300; i++ {
				d := s.Step().Dashboard
				Expect(d.BatteryPercent).To(BeNumerically("<=", prev))
				Expect(d.BatteryPercent).To(BeNumerically(">=", 0))
				prev = d.BatteryPercent
			}
		})

		It("shows the alert from the airbag fall's terminal frame onwards", func() {
			before := stepTo(s, 69)
			Expect(before.Dashboard.AlertVisible).To(BeFalse())
			Expect(before.VibrateOffset).To(BeZero())

			first := stepTo(s, 70)
			Expect(scenarioOf(first, config.ScenarioAirbag).State.Terminal).To(BeTrue())
			Expect(first.Dashboard.AlertVisible).To(BeTrue())

			for i := 0; i < 100; i++ {
				snap := s.Step()
				Expect(snap.Dashboard.AlertVisible).To(BeTrue())
				Expect(snap.VibrateOffset).To(BeNumerically("~", 0, config.VibrateAmp))
			}
		})

		It("reports OK until each scenario finishes", func() {
			early := stepTo(s, 10).Dashboard.Summary
			for _, line := range early {
				Expect(line.Value).To(Equal("OK"))
			}

			late := stepTo(s, 90).Dashboard.Summary
			Expect(late).To(HaveLen(3))
			Expect(late[0].Value).To(Equal("CEDERA"))
			Expect(late[1].Value).To(Equal("AMAN"))
			Expect(late[2].Value).To(Equal("AMAN"))
		})
	})
})
