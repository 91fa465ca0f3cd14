package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/sim"
)

type ExportData struct {
	FPS       int                `json:"fps"`
	Scenarios []string           `json:"scenarios"`
	Frames    int                `json:"frames"`
	Duration  float64            `json:"duration"`
	Timeline  []Record           `json:"timeline"`
	Metrics   map[string]float64 `json:"metrics"`
}

// WriteJSON writes the whole run as one indented JSON document.
func WriteJSON(w io.Writer, cfg *config.Config, result *sim.Result) error {
	data := ExportData{
		FPS:       cfg.FPS,
		Scenarios: cfg.ScenarioNames(),
		Frames:    result.FramesTaken,
		Timeline:  Records(result),
		Metrics:   result.Metrics,
	}
	if n := len(result.Frames); n > 0 {
		data.Duration = result.Frames[n-1].Elapsed
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
