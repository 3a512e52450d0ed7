package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/seesaw/internal/audio"
	"github.com/san-kum/seesaw/internal/config"
	"github.com/san-kum/seesaw/internal/export"
	"github.com/san-kum/seesaw/internal/gui"
	"github.com/san-kum/seesaw/internal/seesaw"
	"github.com/san-kum/seesaw/internal/storage"
	"github.com/san-kum/seesaw/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	// drop
	dropAt     float64
	dropWeight int
	dropColor  string
	// plot / export
	svgPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "seesaw",
		Short:        "drop weights on a plank and watch it balance",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for weights and colours (0: time based)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the desktop window",
		RunE:  runGUI,
	}

	dropCmd := &cobra.Command{
		Use:   "drop",
		Short: "drop one object without a front end",
		RunE:  runDrop,
	}
	dropCmd.Flags().Float64Var(&dropAt, "at", 0, "position along the plank, negative is left")
	dropCmd.Flags().IntVar(&dropWeight, "weight", 0, "weight in kg (default: the pending weight)")
	dropCmd.Flags().StringVar(&dropColor, "color", "", "hsl() or hex colour (default: the pending colour)")
	_ = dropCmd.MarkFlagRequired("at")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "remove every object",
		RunE:  runReset,
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "show objects, torques and angle",
		RunE:  runStatus,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the plank settling from level to its target",
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "also write the curve as svg to this path")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "print the saved state with derived torques as json",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&svgPath, "svg", "", "also draw the scene as svg to this path")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(guiCmd, dropCmd, resetCmd, statusCmd, plotCmd, exportCmd, configCmd)
	return rootCmd
}

// loadConfig layers preset, config file and flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Apply(p)
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("data") || cfg.Storage.Dir == "" {
		cfg.Storage.Dir = dataDir
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSimulation(cfg *config.Config, opts ...seesaw.Option) (*seesaw.Simulation, *storage.Store) {
	p := cfg.Params()
	if cfg.Seed != 0 {
		opts = append(opts, seesaw.WithSeed(cfg.Seed))
	}
	opts = append(opts, seesaw.WithJournalCapacity(cfg.Log.Capacity))

	st := storage.New(cfg.Storage.Dir, p.HalfLength())
	sim := seesaw.New(p, opts...)
	sim.Attach(st)
	return sim, st
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "seesaw")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	player := audio.New(cfg.Audio)
	defer player.Close()

	sim, _ := newSimulation(cfg, seesaw.WithSounder(player))
	return viz.Run(sim, viz.Options{FPS: cfg.Animation.FPS, Theme: cfg.UI.Theme})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	player := audio.New(cfg.Audio)
	defer player.Close()

	sim, _ := newSimulation(cfg, seesaw.WithSounder(player))
	gui.Run(sim, cfg)
	return nil
}

func runDrop(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if math.IsNaN(dropAt) || math.IsInf(dropAt, 0) {
		return fmt.Errorf("position must be a finite number, got %v", dropAt)
	}
	if dropColor != "" {
		if _, err := seesaw.ParseColor(dropColor); err != nil {
			return err
		}
	}

	sim, _ := newSimulation(cfg)
	if cmd.Flags().Changed("weight") || dropColor != "" {
		w := sim.NextWeight()
		if cmd.Flags().Changed("weight") {
			if dropWeight < seesaw.MinWeight || dropWeight > seesaw.MaxWeight {
				return fmt.Errorf("weight must be in [%d, %d], got %d", seesaw.MinWeight, seesaw.MaxWeight, dropWeight)
			}
			w = dropWeight
		}
		sim.SetNext(w, dropColor)
	}

	sim.Place(dropAt)
	fmt.Fprintln(cmd.OutOrStdout(), sim.Journal().Entries()[0])
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sim, _ := newSimulation(cfg)
	sim.Reset()
	fmt.Fprintln(cmd.OutOrStdout(), "reset: plank cleared")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sim, _ := newSimulation(cfg)
	out := cmd.OutOrStdout()
	objs := sim.Objects()
	b := sim.Balance()

	if len(objs) == 0 {
		fmt.Fprintln(out, "no objects on the plank")
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tPOSITION\tSIDE\tWEIGHT\tTORQUE\tCOLOR")
		for i, o := range objs {
			torque := o.Position * float64(o.Weight)
			if torque < 0 {
				torque = -torque
			}
			fmt.Fprintf(w, "%d\t%.0f\t%s\t%dkg\t%.0f\t%s\n", i+1, o.Position, o.Side(), o.Weight, torque, o.Color)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "left:   %d kg  τ=%.0f\n", b.LeftWeight, b.LeftTorque)
	fmt.Fprintf(out, "right:  %d kg  τ=%.0f\n", b.RightWeight, b.RightTorque)
	fmt.Fprintf(out, "angle:  %.1f°\n", b.Target)
	fmt.Fprintf(out, "next:   %d kg %s\n", sim.NextWeight(), sim.NextColor())
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sim, _ := newSimulation(cfg)
	trace := sim.Animator().Trace(0, sim.Target())
	if len(trace) < 2 {
		fmt.Fprintln(cmd.OutOrStdout(), "plank is level, nothing to plot")
		return nil
	}

	graph := asciigraph.Plot(trace,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("angle settling to %.1f° (%d frames)", sim.Target(), len(trace)-1)),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)

	if svgPath != "" {
		return writeSVG(cmd, svgPath, export.TraceToSVG(trace, 800, 240, "#00ff88"))
	}
	return nil
}

func writeSVG(cmd *cobra.Command, path, svg string) error {
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "svg written to %s\n", path)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.Params()
	st := storage.New(cfg.Storage.Dir, p.HalfLength())
	snap, err := st.Load()
	if err != nil {
		return err
	}
	if snap == nil {
		return errors.New("no saved state")
	}
	if err := storage.Export(cmd.OutOrStdout(), snap, p); err != nil {
		return err
	}

	if svgPath != "" {
		angle := seesaw.Calculate(snap.Objects, p).Target
		return writeSVG(cmd, svgPath, export.SceneToSVG(snap, p, angle, int(cfg.UI.BaseWidth)))
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "seesaw.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
