package main

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/phaseplot/internal/config"
	"github.com/san-kum/phaseplot/internal/export"
	"github.com/san-kum/phaseplot/internal/ode"
	"github.com/san-kum/phaseplot/internal/portrait"
	"github.com/san-kum/phaseplot/internal/systems"
	"github.com/san-kum/phaseplot/internal/term"
)

var (
	configFile string
	preset     string
	t0         float64
	t1         float64
	samples    int
	rtol       float64
	atol       float64
	arrowCount int
	arrowSpan  int
	lineColor  string
	arrowColor string
	outDir     string
	xStarts    []float64
	yStarts    []float64
	preview    bool
	jsonPath   string
	csvPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phaseplot",
		Short: "phase portraits of planar ODE systems",
	}

	renderCmd := &cobra.Command{
		Use:   "render [system]",
		Short: "integrate trajectories and save the portrait as PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderPortrait,
	}
	addScenarioFlags(renderCmd)
	renderCmd.Flags().StringVar(&outDir, "out", "", "output directory for the PDF")
	renderCmd.Flags().BoolVar(&preview, "preview", false, "print a terminal preview after saving")
	renderCmd.Flags().StringVar(&jsonPath, "json", "", "also export trajectory data as JSON")
	renderCmd.Flags().StringVar(&csvPath, "csv", "", "also export trajectory data as CSV")

	viewCmd := &cobra.Command{
		Use:   "view [system]",
		Short: "interactive terminal viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  viewPortrait,
	}
	addScenarioFlags(viewCmd)

	seriesCmd := &cobra.Command{
		Use:   "series [system]",
		Short: "plot x(t) and y(t) per trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotSeries,
	}
	addScenarioFlags(seriesCmd)

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list catalog systems and their presets",
		RunE:  listSystems,
	}

	rootCmd.AddCommand(renderCmd, viewCmd, seriesCmd, systemsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in preset scenario")
	cmd.Flags().Float64Var(&t0, "t0", config.DefaultTimeFrom, "schedule start time")
	cmd.Flags().Float64Var(&t1, "t1", config.DefaultTimeTo, "schedule end time (t1 < t0 integrates in reverse)")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "evaluation samples")
	cmd.Flags().Float64Var(&rtol, "rtol", 0, "relative solver tolerance")
	cmd.Flags().Float64Var(&atol, "atol", 0, "absolute solver tolerance")
	cmd.Flags().IntVar(&arrowCount, "arrows", portrait.DefaultArrowCount, "direction arrows per trajectory")
	cmd.Flags().IntVar(&arrowSpan, "arrow-span", portrait.DefaultArrowSpan, "sample spacing between arrows")
	cmd.Flags().StringVar(&lineColor, "color", "", "trajectory color for --x/--y starts")
	cmd.Flags().StringVar(&arrowColor, "arrow-color", "", "arrow color for --x/--y starts")
	cmd.Flags().Float64SliceVar(&xStarts, "x", nil, "starting x values (paired with --y)")
	cmd.Flags().Float64SliceVar(&yStarts, "y", nil, "starting y values (paired with --x)")
}

// buildScenario resolves preset, config file and CLI flags into one
// scenario; flags win over the file, the file wins over the preset.
func buildScenario(cmd *cobra.Command, args []string) (*config.Scenario, error) {
	scn := config.DefaultScenario()
	if len(args) > 0 {
		scn.System = args[0]
	}

	if preset != "" && configFile != "" {
		return nil, fmt.Errorf("--preset and --config are mutually exclusive")
	}

	if preset != "" {
		p := config.GetPreset(scn.System, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(scn.System))
		}
		scn = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		scn = loaded
	}

	if cmd.Flags().Changed("t0") {
		scn.Time.From = t0
	}
	if cmd.Flags().Changed("t1") {
		scn.Time.To = t1
	}
	if cmd.Flags().Changed("samples") {
		scn.Time.Samples = samples
	}

	if len(xStarts) != len(yStarts) {
		return nil, fmt.Errorf("--x and --y must be paired: %d vs %d values", len(xStarts), len(yStarts))
	}
	for i := range xStarts {
		tc := config.TrajectoryConfig{
			X:          xStarts[i],
			Y:          yStarts[i],
			Rtol:       rtol,
			Atol:       atol,
			Color:      lineColor,
			ArrowColor: arrowColor,
		}
		if cmd.Flags().Changed("arrows") || cmd.Flags().Changed("arrow-span") {
			tc.Arrows = portrait.ArrowConfig{Count: arrowCount, Span: arrowSpan}
		}
		scn.Trajectories = append(scn.Trajectories, tc)
	}

	if len(scn.Trajectories) == 0 {
		names := config.ListPresets(scn.System)
		if len(names) == 1 {
			scn = config.GetPreset(scn.System, names[0])
		} else {
			return nil, fmt.Errorf("no trajectories: give --x/--y starts, a --config file or a --preset (%v)", names)
		}
	}

	return scn, nil
}

// buildPortrait integrates every scenario trajectory and decorates the
// portrait with equilibria and axis formatting.
func buildPortrait(scn *config.Scenario) (*portrait.PhasePortrait, error) {
	registry := systems.NewRegistry()
	sys, err := registry.Get(scn.System)
	if err != nil {
		return nil, err
	}

	if len(scn.Params) > 0 {
		tunable, ok := sys.(ode.Configurable)
		if !ok {
			return nil, fmt.Errorf("system %s has no tunable parameters", scn.System)
		}
		for name, value := range scn.Params {
			if err := tunable.SetParam(name, value); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		}
	}

	p, err := portrait.New(sys.Derive)
	if err != nil {
		return nil, err
	}

	ics := make([]portrait.InitialCondition, len(scn.Trajectories))
	for i, tc := range scn.Trajectories {
		ics[i] = tc.InitialCondition()
	}
	if err := p.AddTrajectories(ics, scn.Time.Schedule()); err != nil {
		return nil, err
	}

	if scn.MarkEquilibria {
		if eq, ok := sys.(ode.Equilibria); ok {
			if err := p.AddEquilibria(eq.Equilibria()); err != nil {
				return nil, err
			}
		}
	}
	for _, e := range scn.Equilibria {
		if err := p.AddEquilibrium(e.X, e.Y, e.Stable); err != nil {
			return nil, err
		}
	}

	p.Format(scn.Axes.Format())
	return p, nil
}

func renderPortrait(cmd *cobra.Command, args []string) error {
	scn, err := buildScenario(cmd, args)
	if err != nil {
		return err
	}
	p, err := buildPortrait(scn)
	if err != nil {
		return err
	}

	dir := scn.OutDir
	if cmd.Flags().Changed("out") {
		dir = outDir
	}
	path, err := p.Save(dir)
	if err != nil {
		return err
	}
	fmt.Printf("figure saved to %s\n", path)

	if jsonPath != "" {
		if err := export.JSONFile(jsonPath, scn.System, p); err != nil {
			return err
		}
		fmt.Printf("data exported to %s\n", jsonPath)
	}
	if csvPath != "" {
		if err := export.CSVFile(csvPath, p); err != nil {
			return err
		}
		fmt.Printf("data exported to %s\n", csvPath)
	}

	if preview {
		fmt.Println(term.View(p, 80, 24, term.FitViewport(p), scn.System))
	}
	return nil
}

func viewPortrait(cmd *cobra.Command, args []string) error {
	scn, err := buildScenario(cmd, args)
	if err != nil {
		return err
	}
	p, err := buildPortrait(scn)
	if err != nil {
		return err
	}
	return term.RunViewer(p, scn.System)
}

func plotSeries(cmd *cobra.Command, args []string) error {
	scn, err := buildScenario(cmd, args)
	if err != nil {
		return err
	}
	p, err := buildPortrait(scn)
	if err != nil {
		return err
	}

	for i, tr := range p.Trajectories() {
		label := tr.Label
		if label == "" {
			label = fmt.Sprintf("trajectory %d", i)
		}
		fmt.Println(asciigraph.Plot(tr.XS,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s: x(t)", label)),
		))
		fmt.Println()
		fmt.Println(asciigraph.Plot(tr.YS,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s: y(t)", label)),
		))
		fmt.Println()
	}
	return nil
}

func listSystems(cmd *cobra.Command, args []string) error {
	registry := systems.NewRegistry()
	for _, name := range registry.List() {
		fmt.Println(name)
		for _, p := range config.ListPresets(name) {
			fmt.Printf("  preset: %s\n", p)
		}
	}
	return nil
}
