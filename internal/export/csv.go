package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/aurasim/internal/sim"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WriteCSV writes one row per frame: frame, elapsed, battery, alert, then
// angle, terminal flag and deploy progress for each scenario.
func WriteCSV(w io.Writer, result *sim.Result) error {
	cw := csv.NewWriter(w)

	if len(result.Frames) == 0 {
		cw.Flush()
		return cw.Error()
	}

	header := []string{"frame", "elapsed", "battery", "alert"}
	for _, sc := range result.Frames[0].Scenarios {
		header = append(header, sc.Name+"_angle", sc.Name+"_terminal", sc.Name+"_deploy")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, f := range result.Frames {
		row := []string{
			strconv.Itoa(f.Frame),
			formatFloat(f.Elapsed),
			formatFloat(f.Dashboard.BatteryPercent),
			strconv.FormatBool(f.Dashboard.AlertVisible),
		}
		for _, sc := range f.Scenarios {
			row = append(row,
				formatFloat(sc.State.Angle),
				strconv.FormatBool(sc.State.Terminal),
				formatFloat(sc.Bag.DeployProgress),
			)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
