package gui

import (
	"context"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/aurasim/internal/audio"
	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/scene"
	"github.com/san-kum/aurasim/internal/sim"
)

var fontPaths = []string{
	"/usr/share/fonts/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
}

type App struct {
	Cfg      *config.Config
	Sim      *sim.Simulation
	Font     rl.Font
	renderer *Renderer
}

// initWindow opens the fixed-size window and caps the loop at cfg.FPS.
// Escape and the window close button both end the loop.
func initWindow(cfg *config.Config) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(rl.KeyEscape)
}

// loadFont loads the first available system sans font, falling back to the
// raylib default font.
func loadFont() rl.Font {
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, 32, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
		log.Printf("gui: loaded font %s", path)
		return font
	}
	log.Printf("gui: no system font found, using default")
	return rl.GetFontDefault()
}

func NewApp(cfg *config.Config, alarm audio.Alarm) *App {
	font := loadFont()
	return &App{
		Cfg:      cfg,
		Sim:      sim.New(cfg, alarm),
		Font:     font,
		renderer: NewRenderer(font, cfg.Airbag),
	}
}

// Run opens the window and animates the script until the user quits or ctx
// is canceled.
func Run(ctx context.Context, cfg *config.Config) {
	initWindow(cfg)
	defer rl.CloseWindow()

	alarm := audio.Start(cfg.Alarm)
	defer alarm.Close()

	app := NewApp(cfg, alarm)
	app.RunLoop(ctx)
	log.Printf("gui: closed after %d frames", app.Sim.Frame())
}

func (a *App) RunLoop(ctx context.Context) {
	runFrames(ctx, rl.WindowShouldClose, func() {
		a.Draw(a.Sim.Step())
	})
}

func (a *App) Draw(snap sim.Snapshot) {
	rl.BeginDrawing()
	scene.Compose(a.renderer, snap, a.Cfg)
	rl.EndDrawing()
}
