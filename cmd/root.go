package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sortbench/sortbench/bench"
	"github.com/sortbench/sortbench/bench/export"
)

var (
	// CLI flags for the run subcommand
	n            int      // Number of elements to sort
	dist         string   // Dataset distribution name
	elemType     string   // Element type name
	repeats      int      // Timed trials per algorithm
	warmup       int      // Discarded warm-up trials per algorithm
	seed         uint64   // RNG seed for dataset generation
	logLevel     string   // Log verbosity level
	algos        []string // Exact algorithm names to include
	algoRegex    []string // Regex include filters
	exclude      []string // Exact algorithm names to exclude
	excludeRegex []string // Regex exclude filters
	partialPct   int      // Shuffled percentage for partial datasets
	dupsK        int      // Distinct value count for dups/zipf datasets
	zipfS        float64  // Zipf skew parameter
	runsAlpha    float64  // Heavy-tail alpha for runs_ht datasets
	staggerBlock int      // Block size for staggered datasets
	verify       bool     // Verify each algorithm against a reference sort
	assertSorted bool     // Assert sortedness after every trial
	threads      int      // Thread-budget hint for parallel algorithms
	plugins      []string // Plugin library paths
	baseline     string   // Baseline algorithm for speedup column
	format       string   // Output format (table, csv, json, jsonl)
	noHeader     bool     // Suppress the CSV header row
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "Sorting algorithm benchmark engine",
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

func buildConfig(cmd *cobra.Command) bench.Config {
	cfg := bench.DefaultConfig()
	cfg.N = n
	cfg.Repeats = repeats
	cfg.Warmup = warmup

	d, err := bench.ParseDist(dist)
	if err != nil {
		logrus.Warnf("%v; using %q", err, d)
	}
	cfg.Dist = d

	t, err := bench.ParseElemType(elemType)
	if err != nil {
		logrus.Warnf("%v; using %q", err, t)
	}
	cfg.Type = t

	if cmd.Flags().Changed("seed") {
		s := seed
		cfg.Seed = &s
	}

	cfg.Algos = lowerNames(algos)
	cfg.ExcludeAlgos = lowerNames(exclude)
	if cfg.AlgoRegex, err = bench.CompileRegexList(algoRegex); err != nil {
		logrus.Fatalf("%v", err)
	}
	if cfg.ExcludeRegex, err = bench.CompileRegexList(excludeRegex); err != nil {
		logrus.Fatalf("%v", err)
	}

	cfg.PartialShufflePct = partialPct
	cfg.DupValues = dupsK
	cfg.ZipfS = zipfS
	cfg.RunsAlpha = runsAlpha
	cfg.StaggerBlock = staggerBlock
	cfg.Verify = verify
	cfg.AssertSorted = assertSorted
	cfg.Threads = threads
	cfg.PluginPaths = plugins
	if baseline != "" {
		b := baseline
		cfg.Baseline = &b
	}
	return cfg
}

func emit(res *bench.RunResult) {
	var err error
	switch format {
	case "csv":
		err = export.CSV(os.Stdout, res, !noHeader)
	case "json":
		err = export.JSON(os.Stdout, res, true)
	case "jsonl":
		err = export.JSONL(os.Stdout, res)
	case "table":
		err = export.Table(os.Stdout, res)
	default:
		logrus.Fatalf("Unknown output format: %s", format)
	}
	if err != nil {
		logrus.Fatalf("Failed to write results: %v", err)
	}
}

// runCmd executes one benchmark using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a sorting benchmark",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg := buildConfig(cmd)

		res, err := bench.Run(cfg)
		if err != nil {
			logrus.Fatalf("Benchmark failed: %v", err)
		}
		emit(res)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func lowerNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, s := range names {
		if s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}

// addRunFlags registers the flags shared by commands that execute benchmarks
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&n, "n", 100000, "Number of elements to sort")
	cmd.Flags().StringVar(&dist, "dist", "random", "Dataset distribution (random, partial, dups, reverse, sorted, saw, runs, gauss, exp, zipf, organpipe, staggered, runs_ht)")
	cmd.Flags().StringVar(&elemType, "type", "i32", "Element type (i32, u32, i64, u64, f32, f64, str)")
	cmd.Flags().IntVar(&repeats, "repeats", 5, "Timed trials per algorithm")
	cmd.Flags().IntVar(&warmup, "warmup", 0, "Discarded warm-up trials per algorithm")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "RNG seed for dataset generation (fixed default when unset)")
	cmd.Flags().StringVar(&logLevel, "log", "warning", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Algorithm selection
	cmd.Flags().StringSliceVar(&algos, "algos", nil, "Comma-separated algorithm names to include (empty = all)")
	cmd.Flags().StringSliceVar(&algoRegex, "algo-regex", nil, "Regex filters for algorithms to include")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Comma-separated algorithm names to exclude")
	cmd.Flags().StringSliceVar(&excludeRegex, "exclude-regex", nil, "Regex filters for algorithms to exclude")

	// Distribution parameters
	cmd.Flags().IntVar(&partialPct, "partial-pct", 10, "Shuffled percentage for the partial distribution")
	cmd.Flags().IntVar(&dupsK, "dups-k", 100, "Distinct value count for the dups and zipf distributions")
	cmd.Flags().Float64Var(&zipfS, "zipf-s", 1.2, "Zipf skew parameter")
	cmd.Flags().Float64Var(&runsAlpha, "runs-alpha", 1.5, "Heavy-tail alpha for the runs_ht distribution")
	cmd.Flags().IntVar(&staggerBlock, "stagger-block", 32, "Block size for the staggered distribution")

	// Correctness and execution
	cmd.Flags().BoolVar(&verify, "verify", false, "Verify each algorithm against a reference sort before timing")
	cmd.Flags().BoolVar(&assertSorted, "assert-sorted", false, "Assert sortedness after every trial")
	cmd.Flags().IntVar(&threads, "threads", 0, "Thread-budget hint for internally-parallel algorithms (0 = runtime default)")
	cmd.Flags().StringSliceVar(&plugins, "plugin", nil, "Algorithm plugin library paths")
	cmd.Flags().StringVar(&baseline, "baseline", "", "Baseline algorithm for the speedup column")

	// Output
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table, csv, json, jsonl)")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "Suppress the CSV header row")
}

// init sets up CLI flags and subcommands
func init() {
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}
