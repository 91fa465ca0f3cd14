package scenario

import "strings"

// Event flags what changed on a single frame.
type Event uint8

const (
	EventDeployStarted Event = 1 << iota
	EventDeployed
	EventTerminal
	EventAlarm
)

func (e Event) Has(flag Event) bool { return e&flag != 0 }

func (e Event) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	names := []struct {
		flag Event
		name string
	}{
		{EventDeployStarted, "deploy-started"},
		{EventDeployed, "deployed"},
		{EventTerminal, "terminal"},
		{EventAlarm, "alarm"},
	}
	for _, n := range names {
		if e.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
