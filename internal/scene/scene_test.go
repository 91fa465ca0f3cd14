package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/dynamo"
	"github.com/san-kum/aurasim/internal/sim"
)

type recorder struct {
	bg       dynamo.Color
	texts    []string
	figures  []dynamo.Vec2
	sitting  []bool
	airbags  []float64
	bagPos   []dynamo.Vec2
	bagAngle []float64
	phones   int
	boxes    int
	lines    int
}

func (r *recorder) Clear(bg dynamo.Color) { r.bg = bg }
func (r *recorder) DrawLine(from, to dynamo.Vec2, thick float64, color dynamo.Color) {
	r.lines++
}
func (r *recorder) DrawText(text string, style TextStyle, pos dynamo.Vec2) {
	r.texts = append(r.texts, text)
}
func (r *recorder) DrawFigure(pos dynamo.Vec2, angle float64, color dynamo.Color, sitting bool) {
	r.figures = append(r.figures, pos)
	r.sitting = append(r.sitting, sitting)
}
func (r *recorder) DrawAirbag(pos dynamo.Vec2, angle, progress float64) {
	r.airbags = append(r.airbags, progress)
	r.bagPos = append(r.bagPos, pos)
	r.bagAngle = append(r.bagAngle, angle)
}
func (r *recorder) DrawPhone(pos dynamo.Vec2, vibrateOffset float64, active bool) { r.phones++ }
func (r *recorder) DrawAlertBox(x, y, w, h float64)                               { r.boxes++ }

func (r *recorder) has(text string) bool {
	for _, t := range r.texts {
		if strings.Contains(t, text) {
			return true
		}
	}
	return false
}

func composeAt(frame int) *recorder {
	cfg := config.DefaultConfig()
	s := sim.New(cfg, nil)
	snap := s.Snapshot()
	for s.Frame() < frame {
		snap = s.Step()
	}
	r := &recorder{}
	Compose(r, snap, cfg)
	return r
}

func TestComposeBeforeAlert(t *testing.T) {
	r := composeAt(10)

	if len(r.figures) != 3 {
		t.Fatalf("expected 3 figures, got %d", len(r.figures))
	}
	if r.sitting[0] || !r.sitting[1] || r.sitting[2] {
		t.Errorf("unexpected sitting flags %v", r.sitting)
	}
	if r.figures[1].Y != config.FigureY+10 {
		t.Errorf("expected sitting figure 10px lower, got y=%f", r.figures[1].Y)
	}
	if len(r.airbags) != 1 || r.airbags[0] != 0 {
		t.Errorf("expected one undeployed airbag, got %v", r.airbags)
	}
	if r.boxes != 0 || r.phones != 0 {
		t.Error("alert drawn before the airbag fall finished")
	}
	if r.lines != 4 {
		t.Errorf("expected 3 dividers and the dashboard rule, got %d lines", r.lines)
	}
	for _, want := range []string{"SKENARIO 1: TANPA AIRBAG", "STATUS: Terjatuh...", "BATERAI: 100.0%", "WAKTU AKTIF: 0.3 s", "RINGKASAN HASIL:"} {
		if !r.has(want) {
			t.Errorf("missing text %q", want)
		}
	}
	if r.bg != dynamo.RGB(240, 240, 255) {
		t.Errorf("unexpected background %v", r.bg)
	}
}

func TestComposeAfterAlert(t *testing.T) {
	r := composeAt(80)

	if r.boxes != 1 || r.phones != 1 {
		t.Errorf("expected alert box and phone, got %d/%d", r.boxes, r.phones)
	}
	for _, want := range []string{"HASIL: CEDERA SERIUS", "HASIL: AMAN (Terlindungi)", "Lat: -6.2088", "Lon: 106.8456", "Kontak: +62 812-3456-7890", "Kontak Darurat"} {
		if !r.has(want) {
			t.Errorf("missing text %q", want)
		}
	}
	if r.bg != dynamo.RGB(255, 230, 230) {
		t.Errorf("expected emergency background, got %v", r.bg)
	}
}

func near(a, b dynamo.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestRotate(t *testing.T) {
	tests := []struct {
		in   dynamo.Vec2
		deg  float64
		want dynamo.Vec2
	}{
		{dynamo.Vec2{X: 0, Y: -55}, 0, dynamo.Vec2{X: 0, Y: -55}},
		{dynamo.Vec2{X: 0, Y: -55}, 90, dynamo.Vec2{X: 55, Y: 0}},
		{dynamo.Vec2{X: 10, Y: 0}, 90, dynamo.Vec2{X: 0, Y: 10}},
		{dynamo.Vec2{X: 0, Y: -10}, 180, dynamo.Vec2{X: 0, Y: 10}},
	}
	for _, tt := range tests {
		if got := Rotate(tt.in, tt.deg); !near(got, tt.want) {
			t.Errorf("Rotate(%v, %v) = %v, want %v", tt.in, tt.deg, got, tt.want)
		}
	}
}

func TestFigureFallsToTheRight(t *testing.T) {
	pos := dynamo.Vec2{X: 100, Y: 100}
	head := HeadCenter(pos, 90)
	if !near(head, dynamo.Vec2{X: 155, Y: 100}) {
		t.Errorf("expected head right of center when fallen, got %v", head)
	}

	if n := len(FigureSegments(pos, 0, false)); n != 5 {
		t.Errorf("expected 5 standing segments, got %d", n)
	}
	if n := len(FigureSegments(pos, 0, true)); n != 7 {
		t.Errorf("expected 7 sitting segments, got %d", n)
	}
}

func TestAirbagCircle(t *testing.T) {
	pos := dynamo.Vec2{X: 0, Y: 0}

	_, r := AirbagCircle(pos, 0.5, 70, 40)
	if r != 35 {
		t.Errorf("expected half radius, got %f", r)
	}
	_, r = AirbagCircle(pos, 2, 70, 40)
	if r != 70 {
		t.Errorf("expected radius clamped to 70, got %f", r)
	}

	c, _ := AirbagCircle(dynamo.Vec2{X: 750, Y: 450}, 1, 70, 40)
	if !near(c, dynamo.Vec2{X: 750, Y: 410}) {
		t.Errorf("expected cushion 40px above the figure center, got %v", c)
	}
}

func TestAirbagStaysPutWhileFalling(t *testing.T) {
	r := &recorder{}
	cfg := config.DefaultConfig()
	s := sim.New(cfg, nil)
	for s.Frame() < 90 {
		Compose(r, s.Step(), cfg)
	}
	if len(r.bagPos) == 0 {
		t.Fatal("airbag never drawn")
	}
	first, _ := AirbagCircle(r.bagPos[0], 1, cfg.Airbag.MaxRadius, cfg.Airbag.TorsoOffsetPx)
	for i, pos := range r.bagPos {
		c, _ := AirbagCircle(pos, 1, cfg.Airbag.MaxRadius, cfg.Airbag.TorsoOffsetPx)
		if !near(c, first) {
			t.Fatalf("draw %d: cushion moved from %v to %v while tilting %.1f", i, first, c, r.bagAngle[i])
		}
	}
}

func TestPhoneShake(t *testing.T) {
	if PhoneShake(2.5, false) != 0 {
		t.Error("inactive phone should not shake")
	}
	if PhoneShake(2.5, true) != 2.5 {
		t.Error("active phone should shake by the offset")
	}
}
