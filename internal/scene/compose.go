package scene

import (
	"fmt"

	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/dynamo"
	"github.com/san-kum/aurasim/internal/sim"
)

const (
	titleY     = 30
	statusY    = 80
	ruleY      = 140
	summaryY   = 170
	summaryRow = 210
	rowStep    = 30
	alertY     = 310
	alertH     = 370
)

var (
	divider   = dynamo.RGB(150, 150, 150)
	alertRed  = dynamo.RGB(220, 0, 0)
	okGreen   = dynamo.RGB(0, 100, 0)
	darkRed   = dynamo.RGB(100, 0, 0)
	titleText = TextStyle{Font: FontPanelTitle, Color: dynamo.Black, Centered: true}
)

// PanelCenter is the x coordinate of the middle of panel i.
func PanelCenter(i int) float64 {
	return float64(config.PanelWidth/2 + config.PanelWidth*i)
}

// Compose draws one frame of the four panels.
func Compose(r Renderer, snap sim.Snapshot, cfg *config.Config) {
	r.Clear(snap.Dashboard.Background)

	for i := 1; i < 4; i++ {
		x := float64(config.PanelWidth * i)
		r.DrawLine(dynamo.Vec2{X: x, Y: 0}, dynamo.Vec2{X: x, Y: config.ScreenHeight}, 3, divider)
	}

	for i, sc := range snap.Scenarios {
		drawScenario(r, i, sc, cfg)
	}
	drawDashboard(r, len(snap.Scenarios), snap, cfg)
}

func drawScenario(r Renderer, panel int, sc sim.ScenarioSnapshot, cfg *config.Config) {
	cx := PanelCenter(panel)
	figY := float64(cfg.Window.FigureY)

	r.DrawText(sc.Title, titleText, dynamo.Vec2{X: cx, Y: titleY})
	r.DrawText(sc.State.StatusLine(), TextStyle{Font: FontResult, Color: sc.State.Color, Centered: true}, dynamo.Vec2{X: cx, Y: statusY})

	if sc.Sitting {
		figY += 10
	}
	if sc.Airbag {
		// airbag first so the figure is drawn over it
		r.DrawAirbag(dynamo.Vec2{X: cx, Y: figY}, sc.State.Angle, sc.Bag.DeployProgress)
	}
	r.DrawFigure(dynamo.Vec2{X: cx, Y: figY}, sc.State.Angle, sc.State.Color, sc.Sitting)
}

func drawDashboard(r Renderer, panel int, snap sim.Snapshot, cfg *config.Config) {
	cx := PanelCenter(panel)
	d := snap.Dashboard
	left := TextStyle{Font: FontSmall, Color: dynamo.Black}

	r.DrawText(cfg.Dashboard.Title, titleText, dynamo.Vec2{X: cx, Y: titleY})
	r.DrawText(fmt.Sprintf("BATERAI: %.1f%%", d.BatteryPercent),
		TextStyle{Font: FontInfo, Color: d.BatteryColor, Centered: true}, dynamo.Vec2{X: cx, Y: 80})
	r.DrawText(fmt.Sprintf("WAKTU AKTIF: %.1f s", d.ElapsedSeconds),
		TextStyle{Font: FontInfo, Color: dynamo.Black, Centered: true}, dynamo.Vec2{X: cx, Y: 110})

	x0 := float64(config.PanelWidth*panel + 20)
	r.DrawLine(dynamo.Vec2{X: x0, Y: ruleY}, dynamo.Vec2{X: config.ScreenWidth - 20, Y: ruleY}, 1, divider)

	r.DrawText("RINGKASAN HASIL:", TextStyle{Font: FontInfo, Color: dynamo.Black, Centered: true}, dynamo.Vec2{X: cx, Y: summaryY})
	for i, line := range d.Summary {
		y := float64(summaryRow + rowStep*i)
		r.DrawText(line.Label, left, dynamo.Vec2{X: cx - 120, Y: y})
		r.DrawText(line.Value, TextStyle{Font: FontSmall, Color: line.Color}, dynamo.Vec2{X: cx + 70, Y: y})
	}

	if !d.AlertVisible {
		return
	}

	boxX := float64(config.PanelWidth*panel + 15)
	r.DrawAlertBox(boxX, alertY, config.PanelWidth-30, alertH)

	r.DrawText("ALERT DARURAT (SK 3)", TextStyle{Font: FontInfo, Color: alertRed, Centered: true}, dynamo.Vec2{X: cx, Y: alertY + 30})
	r.DrawText(fmt.Sprintf("Lat: %.4f", snap.GPS.Lat), left, dynamo.Vec2{X: cx - 110, Y: alertY + 70})
	r.DrawText(fmt.Sprintf("Lon: %.4f", snap.GPS.Lon), left, dynamo.Vec2{X: cx - 110, Y: alertY + 95})

	green := TextStyle{Font: FontSmall, Color: okGreen}
	r.DrawText("Kontak: "+cfg.Dashboard.Contact, green, dynamo.Vec2{X: cx - 110, Y: alertY + 130})
	r.DrawText("Status: "+cfg.Dashboard.DeliveryState, green, dynamo.Vec2{X: cx - 110, Y: alertY + 155})

	r.DrawPhone(dynamo.Vec2{X: cx - 30, Y: alertY + 190}, snap.VibrateOffset, true)
	r.DrawText("Kontak Darurat", TextStyle{Font: FontSmall, Color: darkRed, Centered: true}, dynamo.Vec2{X: cx, Y: alertY + 330})
}
