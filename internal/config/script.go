package config

import "github.com/san-kum/aurasim/internal/dynamo"

var (
	ColorInjury    = dynamo.RGB(200, 0, 0)
	ColorSafe      = dynamo.RGB(0, 180, 0)
	ColorProtected = dynamo.RGB(0, 0, 200)
)

// defaultScenarios returns the three panels in display order.
func defaultScenarios() []ScenarioConfig {
	return []ScenarioConfig{
		{
			Name:         ScenarioFall,
			Title:        "SKENARIO 1: TANPA AIRBAG",
			Increment:    FallIncrement,
			Threshold:    FallThreshold,
			IdleStatus:   "Berdiri Normal",
			MovingStatus: "Terjatuh...",
			DoneStatus:   "CEDERA SERIUS",
			SummaryLabel: "Skenario 1 (Jatuh):",
			Outcome:      "CEDERA",
			Color:        dynamo.Black,
			DoneColor:    ColorInjury,
		},
		{
			Name:         ScenarioSit,
			Title:        "SKENARIO 2: DUDUK (NORMAL)",
			Increment:    SitIncrement,
			Threshold:    SitThreshold,
			Sitting:      true,
			IdleStatus:   "Berdiri Normal",
			MovingStatus: "Sedang Duduk...",
			DoneStatus:   "AMAN (Duduk Normal)",
			SummaryLabel: "Skenario 2 (Duduk):",
			Outcome:      "AMAN",
			Color:        ColorSafe,
			DoneColor:    ColorSafe,
		},
		{
			Name:         ScenarioAirbag,
			Title:        "SKENARIO 3: JATUH (AIRBAG)",
			Increment:    FallIncrement,
			Threshold:    FallThreshold,
			Airbag:       true,
			Alarm:        true,
			IdleStatus:   "Berdiri Normal",
			MovingStatus: "Terjatuh...",
			DoneStatus:   "AMAN (Terlindungi)",
			SummaryLabel: "Skenario 3 (Jatuh):",
			Outcome:      "AMAN",
			Color:        ColorProtected,
			DoneColor:    ColorProtected,
		},
	}
}
