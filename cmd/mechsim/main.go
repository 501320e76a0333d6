package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/mechsim/internal/analysis"
	"github.com/san-kum/mechsim/internal/config"
	"github.com/san-kum/mechsim/internal/export"
	"github.com/san-kum/mechsim/internal/mech"
	"github.com/san-kum/mechsim/internal/ode"
	"github.com/san-kum/mechsim/internal/server"
	"github.com/san-kum/mechsim/internal/sim"
	"github.com/san-kum/mechsim/internal/storage"
	"github.com/san-kum/mechsim/internal/viz"
)

var (
	dataDir    string
	duration   float64
	samples    int
	substeps   int
	tolerance  float64
	integrator string
	x0Str      string
	paramArgs  []string
	preset     string
	configFile string
	format     string
	outPath    string
	addr       string
	frameRate  int
)

var catalog = mech.NewCatalog()

func main() {
	rootCmd := &cobra.Command{
		Use:   "mechsim",
		Short: "mechanical system simulation toolkit",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mechsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [system]",
		Short: "simulate a system and store the trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	suiteCmd := &cobra.Command{
		Use:   "suite",
		Short: "run the three reference systems concurrently",
		RunE:  runSuite,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json, png)")
	exportCmd.Flags().StringVar(&outPath, "out", "", "output file (stdout for csv/json when empty)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [system]",
		Short: "linearize a system about its initial state",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeSystem,
	}
	addSimFlags(analyzeCmd)

	liveCmd := &cobra.Command{
		Use:   "live [system]",
		Short: "simulate and replay in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "playback frame rate")

	serveCmd := &cobra.Command{
		Use:   "serve [run_id]",
		Short: "stream a stored run over websocket",
		Args:  cobra.ExactArgs(1),
		RunE:  serveRun,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list reference presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("%-18s %s, %gs, %d samples\n", name, cfg.System, cfg.Duration, cfg.Samples)
			}
			return nil
		},
	}

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list cataloged systems and integrators",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("systems:     %s\n", strings.Join(catalog.Systems(), ", "))
			fmt.Printf("integrators: %s\n", strings.Join(sim.ListSteppers(), ", "))
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, suiteCmd, listCmd, plotCmd, exportCmd,
		analyzeCmd, liveCmd, serveCmd, presetsCmd, systemsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, viz.ErrorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "horizon end time")
	cmd.Flags().IntVar(&samples, "samples", ode.DefaultSamples, "sample count")
	cmd.Flags().IntVar(&substeps, "substeps", 1, "substeps per sample interval")
	cmd.Flags().Float64Var(&tolerance, "tol", 0, "adaptive tolerance (rk45)")
	cmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator")
	cmd.Flags().StringVar(&x0Str, "x0", "", "initial state, e.g. 1.0,0.0")
	cmd.Flags().StringArrayVar(&paramArgs, "param", nil, "physical parameter, e.g. mass=1.0")
	cmd.Flags().StringVar(&preset, "preset", "", "start from a named preset")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (yaml)")
}

// buildConfig resolves preset/config-file/flags, in that order, into one
// run configuration.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
	case configFile != "":
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
	default:
		cfg = config.DefaultConfig()
		if len(args) == 0 {
			return nil, fmt.Errorf("system name required (one of: %s)", strings.Join(catalog.Systems(), ", "))
		}
	}

	if len(args) > 0 {
		cfg.System = args[0]
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("substeps") {
		cfg.Substeps = substeps
	}
	if cmd.Flags().Changed("tol") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if x0Str != "" {
		x0, err := parseFloats(x0Str)
		if err != nil {
			return nil, fmt.Errorf("bad --x0: %w", err)
		}
		cfg.InitState = x0
	}
	for _, arg := range paramArgs {
		name, value, err := parseParam(arg)
		if err != nil {
			return nil, err
		}
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64)
		}
		cfg.Params[name] = value
	}
	return cfg, nil
}

func buildInstance(cfg *config.Config) (ode.SystemInstance, error) {
	return catalog.Instance(cfg.System, cfg.Params, ode.State(cfg.InitState), cfg.Span())
}

func buildSolver(cfg *config.Config) (*sim.Solver, error) {
	stepper, err := sim.NewStepper(cfg.Integrator)
	if err != nil {
		return nil, err
	}
	return sim.New(stepper, sim.Options{Substeps: cfg.Substeps, Tolerance: cfg.Tolerance}), nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	inst, err := buildInstance(cfg)
	if err != nil {
		return err
	}
	solver, err := buildSolver(cfg)
	if err != nil {
		return err
	}

	traj, err := solver.Solve(inst)
	if err != nil {
		return err
	}

	fmt.Println(viz.RenderTrajectory(cfg.System, traj))
	if drift, ok := analysis.EnergyDrift(inst.System, traj); ok {
		fmt.Printf("energy drift: %.3e\n", drift)
	}

	runID, err := saveRun(cfg, traj)
	if err != nil {
		return err
	}
	fmt.Printf("saved: %s\n", runID)
	return nil
}

func runSuite(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	instances := make([]ode.SystemInstance, 0, len(names))
	cfgs := make([]*config.Config, 0, len(names))
	for _, name := range names {
		cfg := config.GetPreset(name)
		inst, err := buildInstance(cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		inst.Name = name
		instances = append(instances, inst)
		cfgs = append(cfgs, cfg)
	}

	results, err := sim.RunAll(instances, func() *sim.Solver {
		solver, _ := buildSolver(config.DefaultConfig())
		return solver
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSYSTEM\tFINAL POSITION\tFINAL VELOCITY\tRUN ID")
	for i, traj := range results {
		fmt.Println(viz.RenderTrajectory(instances[i].Name, traj))
		runID, err := saveRun(cfgs[i], traj)
		if err != nil {
			return err
		}
		final := traj.Final()
		fmt.Fprintf(w, "%s\t%s\t%.6g\t%.6g\t%s\n",
			instances[i].Name, cfgs[i].System, final[0], final[1], runID)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tINTEGRATOR\tDURATION\tSAMPLES\tTIMESTAMP")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%d\t%s\n",
			run.ID, run.System, run.Integrator, run.Duration, run.Samples,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.LoadMeta(args[0])
	if err != nil {
		return err
	}
	traj, err := store.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.RenderTrajectory(meta.System, traj))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.LoadMeta(args[0])
	if err != nil {
		return err
	}
	traj, err := store.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	switch format {
	case "png":
		if outPath == "" {
			outPath = args[0] + ".png"
		}
		if err := export.SavePNG(outPath, meta.System, traj); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPath)
		return nil
	case "csv", "json":
		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		if format == "csv" {
			return export.WriteCSV(out, traj)
		}
		return export.WriteJSON(out, meta.System, traj)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func analyzeSystem(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	inst, err := buildInstance(cfg)
	if err != nil {
		return err
	}

	report, err := analysis.Linearize(inst.System, inst.X0, 0)
	if err != nil {
		return err
	}

	fmt.Printf("%s at x0=%v\n\n", cfg.System, []float64(inst.X0))
	rows, cols := report.Jacobian.Dims()
	fmt.Println("jacobian:")
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fmt.Printf("  %12.6g", report.Jacobian.At(i, j))
		}
		fmt.Println()
	}
	fmt.Println("\neigenvalues:")
	for _, e := range report.Eigenvalues {
		fmt.Printf("  %.6g%+.6gi\n", real(e), imag(e))
	}
	fmt.Printf("\nclassification: %s\n", viz.ValueStyle.Render(report.Class))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	inst, err := buildInstance(cfg)
	if err != nil {
		return err
	}
	solver, err := buildSolver(cfg)
	if err != nil {
		return err
	}
	traj, err := solver.Solve(inst)
	if err != nil {
		return err
	}
	return viz.Play(cfg.System, traj, frameRate)
}

func serveRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.LoadMeta(args[0])
	if err != nil {
		return err
	}
	traj, err := store.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("streaming %s on %s (websocket at /ws)\n", args[0], addr)
	return server.New(addr, meta.System, traj).ListenAndServe()
}

func saveRun(cfg *config.Config, traj *ode.Trajectory) (string, error) {
	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return "", err
	}
	return store.Save(storage.RunMetadata{
		System:     cfg.System,
		Integrator: cfg.Integrator,
		Duration:   cfg.Duration,
		Samples:    cfg.Span().Samples,
		Params:     cfg.Params,
		InitState:  cfg.InitState,
	}, traj)
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func parseParam(arg string) (string, float64, error) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		return "", 0, fmt.Errorf("bad --param %q, want name=value", arg)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad --param %q: %w", arg, err)
	}
	return strings.TrimSpace(name), v, nil
}
