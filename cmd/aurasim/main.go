package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/aurasim/internal/audio"
	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/export"
	"github.com/san-kum/aurasim/internal/gui"
	"github.com/san-kum/aurasim/internal/metrics"
	"github.com/san-kum/aurasim/internal/sim"
	"github.com/san-kum/aurasim/internal/viz"
	"github.com/spf13/cobra"
)

const debugLog = "aurasim-debug.log"

var (
	debug     bool
	frames    int
	every     int
	theme     string
	svgFrame  int
	svgChart  bool
	zstdOut   bool
	logCloser io.Closer
)

// main registers the commands and opens the animation window when no
// subcommand is given. It exits with status 1 if a command fails.
func main() {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "aurasim",
		Short: "airbag fall/sit demonstration",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				logCloser.Close()
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			gui.Run(cmd.Context(), cfg)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug log to "+debugLog)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the animation in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			alarm := audio.Start(cfg.Alarm)
			defer alarm.Close()
			return viz.Run(cfg, alarm, viz.GetTheme(theme))
		},
	}
	tuiCmd.Flags().StringVar(&theme, "theme", viz.ThemeAura.Name, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	timelineCmd := &cobra.Command{
		Use:   "timeline",
		Short: "run headless and print the frame timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTimeline(cmd.Context(), cfg)
		},
	}
	timelineCmd.Flags().IntVar(&every, "every", 5, "print every n-th frame (frames with events are always printed)")

	plotCmd := &cobra.Command{
		Use:   "plot [scenario]",
		Short: "plot scenario angles per frame",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotScenarios(cmd.Context(), cfg, args)
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export the headless timeline as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runHeadless(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return export.WriteJSON(os.Stdout, cfg, res)
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export the headless timeline as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runHeadless(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return export.WriteCSV(os.Stdout, res)
		},
	}

	exportJSONLCmd := &cobra.Command{
		Use:   "export-jsonl",
		Short: "stream one JSON line per frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			frameLog, err := export.NewFrameLog(os.Stdout, zstdOut)
			if err != nil {
				return err
			}
			_, runErr := runHeadless(cmd.Context(), cfg, frameLog)
			if err := frameLog.Close(); err != nil && runErr == nil {
				runErr = err
			}
			return runErr
		},
	}
	exportJSONLCmd.Flags().BoolVar(&zstdOut, "zstd", false, "compress the stream with zstd")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "export one frame (or the angle chart) as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportSVG(cmd.Context(), cfg)
		},
	}
	exportSVGCmd.Flags().IntVar(&svgFrame, "frame", 80, "frame to render (or chart length)")
	exportSVGCmd.Flags().BoolVar(&svgChart, "chart", false, "render the angle chart instead of a frame")

	scriptCmd := &cobra.Command{
		Use:   "script",
		Short: "print the animation script as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Write(os.Stdout, cfg)
		},
	}

	toneCmd := &cobra.Command{
		Use:   "tone",
		Short: "synthesize the alarm tone and report its spectrum",
		RunE: func(cmd *cobra.Command, args []string) error {
			return describeTone(cfg.Alarm)
		},
	}

	for _, c := range []*cobra.Command{timelineCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportJSONLCmd} {
		c.Flags().IntVar(&frames, "frames", 100, "number of frames to simulate")
	}

	rootCmd.AddCommand(tuiCmd, timelineCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportJSONLCmd, exportSVGCmd, scriptCmd, toneCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func setupLogging() error {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(debugLog, "aurasim")
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	logCloser = f
	return nil
}

func runHeadless(ctx context.Context, cfg *config.Config, observers ...sim.Observer) (*sim.Result, error) {
	s := sim.New(cfg, nil)
	for _, m := range metrics.Standard(cfg) {
		s.AddMetric(m)
	}
	for _, o := range observers {
		s.AddObserver(o)
	}
	res, err := s.Run(ctx, frames)
	if err != nil {
		return nil, fmt.Errorf("headless run: %w", err)
	}
	log.Printf("headless run: %d frames", res.FramesTaken)
	return res, nil
}

func printTimeline(ctx context.Context, cfg *config.Config) error {
	res, err := runHeadless(ctx, cfg)
	if err != nil {
		return err
	}
	if every < 1 {
		every = 1
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := []string{"FRAME", "TIME", "BATTERY"}
	for _, name := range cfg.ScenarioNames() {
		header = append(header, strings.ToUpper(name))
	}
	header = append(header, "ALERT", "EVENTS")
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, f := range res.Frames {
		var events []string
		cols := []string{
			fmt.Sprintf("%d", f.Frame),
			fmt.Sprintf("%.2fs", f.Elapsed),
			fmt.Sprintf("%.2f%%", f.Dashboard.BatteryPercent),
		}
		for _, sc := range f.Scenarios {
			cols = append(cols, fmt.Sprintf("%5.1f° %s", sc.State.Angle, sc.State.Status))
			if sc.Event != 0 {
				events = append(events, sc.Name+":"+sc.Event.String())
			}
		}
		if f.Frame%every != 0 && len(events) == 0 {
			continue
		}
		alert := "-"
		if f.Dashboard.AlertVisible {
			alert = "ALERT"
		}
		cols = append(cols, alert, strings.Join(events, " "))
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	return printMetrics(res.Metrics)
}

func printMetrics(m map[string]float64) error {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%g\n", name, m[name])
	}
	return w.Flush()
}

func plotScenarios(ctx context.Context, cfg *config.Config, args []string) error {
	names := cfg.ScenarioNames()
	if len(args) == 1 {
		if _, err := cfg.Scenario(args[0]); err != nil {
			return err
		}
		names = args
	}

	res, err := runHeadless(ctx, cfg)
	if err != nil {
		return err
	}

	for _, name := range names {
		sc, _ := cfg.Scenario(name)
		angles := make([]float64, len(res.Frames))
		deploy := make([]float64, len(res.Frames))
		for i, f := range res.Frames {
			snap, _ := f.Scenario(name)
			angles[i] = snap.State.Angle
			deploy[i] = snap.Bag.DeployProgress * 100
		}

		fmt.Println(asciigraph.Plot(angles,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s: angle (deg) vs frame", sc.Title)),
		))
		fmt.Println()
		if sc.Airbag {
			fmt.Println(asciigraph.Plot(deploy,
				asciigraph.Height(6),
				asciigraph.Width(80),
				asciigraph.Caption("airbag deployment (%) vs frame"),
			))
			fmt.Println()
		}
	}
	return nil
}

func exportSVG(ctx context.Context, cfg *config.Config) error {
	frames = svgFrame
	res, err := runHeadless(ctx, cfg)
	if err != nil {
		return err
	}
	if svgChart {
		_, err = fmt.Print(export.AngleChart(res, cfg, 800, 400))
		return err
	}
	_, err = fmt.Print(export.SceneSVG(res.Frames[len(res.Frames)-1], cfg))
	return err
}

func describeTone(cfg config.AlarmConfig) error {
	stats := audio.Analyze(audio.Tone(cfg.Frequency, cfg.Duration, cfg.SampleRate), cfg.SampleRate)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "frequency\t%.1f Hz\n", cfg.Frequency)
	fmt.Fprintf(w, "samples\t%d\n", stats.Samples)
	fmt.Fprintf(w, "duration\t%.3f s\n", stats.Duration)
	fmt.Fprintf(w, "peak\t%d\n", stats.Peak)
	fmt.Fprintf(w, "rms\t%.3f\n", stats.RMS)
	fmt.Fprintf(w, "dominant\t%.1f Hz (±%.1f)\n", stats.Dominant, stats.BinWidthHz/2)
	return w.Flush()
}
