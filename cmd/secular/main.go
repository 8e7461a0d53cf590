package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/secularlab/secular/internal/analysis"
	"github.com/secularlab/secular/internal/config"
	"github.com/secularlab/secular/internal/export"
	"github.com/secularlab/secular/internal/orbit"
	"github.com/secularlab/secular/internal/secular"
	"github.com/secularlab/secular/internal/tui"
	"github.com/secularlab/secular/internal/viz"
)

var (
	preset     string
	configFile string
	spanYears  float64
	samples    int
	field      string
	bodyName   string
	outPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "secular",
		Short: "Laplace-Lagrange secular theory lab",
		Long: "Builds the linearized secular model for a planetary system, solves its\n" +
			"normal modes, and evaluates the long-term evolution of eccentricity and\n" +
			"inclination vectors.",
	}

	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "built-in system (see 'secular presets')")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "system file (yaml)")
	rootCmd.PersistentFlags().Float64Var(&spanYears, "span", 0, "evaluation span in years (overrides system)")
	rootCmd.PersistentFlags().IntVar(&samples, "samples", 0, "evaluation samples (overrides system)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "build the secular model and summarize its solution",
		RunE:  runSolution,
	}

	modesCmd := &cobra.Command{
		Use:   "modes",
		Short: "print the normal-mode table",
		RunE:  printModes,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot element histories in the terminal",
		RunE:  plotTrajectory,
	}
	plotCmd.Flags().StringVar(&field, "field", "ecc", "series to plot: ecc, inc, h, k, p, q")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animated sweep of the (k,h) eccentricity plane",
		RunE:  runLive,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "check eigenfrequencies against the evaluated spectrum",
		RunE:  analyzeSpectrum,
	}
	analyzeCmd.Flags().StringVar(&field, "field", "h", "series to analyze: h, k, p, q")
	analyzeCmd.Flags().StringVar(&bodyName, "body", "", "body to analyze (default: first)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export the evaluated trajectory as CSV",
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export the evaluated trajectory as JSON",
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in systems",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-8s %d bodies, %.3g yr\n", name, len(cfg.Bodies), cfg.SpanYears)
			}
		},
	}

	rootCmd.AddCommand(runCmd, modesCmd, plotCmd, liveCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSystem resolves the system from --preset or --config, with --span
// and --samples overriding the file's evaluation window.
func loadSystem(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case preset != "" && configFile != "":
		return nil, fmt.Errorf("use either --preset or --config, not both")
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load system: %w", err)
		}
		cfg = loaded
	default:
		return nil, fmt.Errorf("specify a system with --preset or --config")
	}

	if cmd.Flags().Changed("span") {
		cfg.SpanYears = spanYears
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	return cfg, cfg.Validate()
}

func solve(cmd *cobra.Command) (*config.Config, *secular.Solution, error) {
	cfg, err := loadSystem(cmd)
	if err != nil {
		return nil, nil, err
	}
	sol, err := secular.New(cfg.CentralMass, cfg.ToBodies())
	if err != nil {
		return nil, nil, err
	}
	return cfg, sol, nil
}

func runSolution(cmd *cobra.Command, args []string) error {
	cfg, sol, err := solve(cmd)
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(fmt.Sprintf("secular solution: %s", cfg.Name)))
	fmt.Printf("%s %d bodies around %.4g M☉\n",
		viz.Label.Render("system:"), len(sol.Bodies()), cfg.CentralMass)
	fmt.Printf("%s %d eccentricity modes, %d inclination modes (%d null)\n",
		viz.Label.Render("modes:"),
		len(sol.EccModes().Modes), len(sol.IncModes().Modes), sol.IncModes().ZeroModes())

	traj := sol.Evaluate(cfg.Times())
	for _, bs := range traj.Bodies {
		minE, maxE := bounds(bs.Ecc)
		minI, maxI := bounds(bs.Inc)
		fmt.Printf("  %-10s e ∈ [%.4f, %.4f]   I ∈ [%.2f°, %.2f°]\n",
			bs.Name, minE, maxE, minI*180/math.Pi, maxI*180/math.Pi)
	}
	return nil
}

func bounds(xs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

func printModes(cmd *cobra.Command, args []string) error {
	cfg, sol, err := solve(cmd)
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(fmt.Sprintf("normal modes: %s", cfg.Name)))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "system\tmode\tfreq (\"/yr)\tperiod (yr)\tamplitude\tphase (°)")
	writeModes(w, "ecc", sol.EccModes(), sol.EccAmplitudes())
	writeModes(w, "inc", sol.IncModes(), sol.IncAmplitudes())
	return w.Flush()
}

func writeModes(w *tabwriter.Writer, system string, modes *secular.EigenSolution, amps []secular.Amplitude) {
	for i, m := range modes.Modes {
		period := "-"
		if math.Abs(m.Freq) >= secular.ZeroFreqTol {
			period = fmt.Sprintf("%.4g", 2*math.Pi/math.Abs(m.Freq))
		}
		fmt.Fprintf(w, "%s\t%d\t%.4f\t%s\t%.5f\t%.1f\n",
			system, i,
			m.Freq*orbit.RadPerYrToArcsecPerYr,
			period,
			amps[i].T,
			amps[i].Phase*180/math.Pi)
	}
}

func plotTrajectory(cmd *cobra.Command, args []string) error {
	cfg, sol, err := solve(cmd)
	if err != nil {
		return err
	}
	f, err := viz.ParseField(field)
	if err != nil {
		return err
	}

	traj := sol.Evaluate(cfg.Times())
	fmt.Print(viz.Plot(traj, f))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, sol, err := solve(cmd)
	if err != nil {
		return err
	}
	return tui.Run(sol, cfg.SpanYears)
}

func analyzeSpectrum(cmd *cobra.Command, args []string) error {
	cfg, sol, err := solve(cmd)
	if err != nil {
		return err
	}
	f, err := viz.ParseField(field)
	if err != nil {
		return err
	}

	traj := sol.Evaluate(cfg.Times())
	idx := 0
	if bodyName != "" {
		idx = -1
		for i, bs := range traj.Bodies {
			if bs.Name == bodyName {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("unknown body %q", bodyName)
		}
	}

	series := viz.Series(traj.Bodies[idx], f)
	dt := cfg.SpanYears / float64(cfg.Samples-1)
	peak := analysis.DominantFrequency(series, dt)

	fmt.Println(viz.Title.Render(fmt.Sprintf("spectrum: %s of %s", field, traj.Bodies[idx].Name)))
	fmt.Printf("%s %.4f \"/yr\n", viz.Label.Render("dominant peak:"),
		peak*orbit.RadPerYrToArcsecPerYr)

	modes := sol.EccModes()
	if f == viz.FieldP || f == viz.FieldQ || f == viz.FieldInc {
		modes = sol.IncModes()
	}
	fmt.Println(viz.Label.Render("eigenfrequencies (\"/yr):"))
	for i, freq := range modes.Frequencies() {
		marker := " "
		if nearestMode(peak, modes.Frequencies()) == i {
			marker = viz.Value.Render("◄ matches peak")
		}
		fmt.Printf("  mode %d: %9.4f %s\n", i, freq*orbit.RadPerYrToArcsecPerYr, marker)
	}
	return nil
}

func nearestMode(peak float64, freqs []float64) int {
	best, bestGap := 0, math.Inf(1)
	for i, f := range freqs {
		if gap := math.Abs(math.Abs(f) - peak); gap < bestGap {
			best, bestGap = i, gap
		}
	}
	return best
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, sol, err := solve(cmd)
	if err != nil {
		return err
	}
	traj := sol.Evaluate(cfg.Times())
	if outPath == "" {
		return export.WriteCSV(os.Stdout, traj)
	}
	return export.ExportCSV(outPath, traj)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, sol, err := solve(cmd)
	if err != nil {
		return err
	}
	traj := sol.Evaluate(cfg.Times())
	if outPath == "" {
		return export.WriteJSON(os.Stdout, cfg.Name, sol, traj)
	}
	return export.ExportJSON(outPath, cfg.Name, sol, traj)
}
