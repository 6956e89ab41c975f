package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sortbench/sortbench/bench"
	"github.com/sortbench/sortbench/bench/export"
)

var (
	sweepSpecPath string // Path to the sweep spec YAML
	sweepFormat   string // Output format for sweep results
	sweepLog      string // Log verbosity level
)

// sweepCmd runs every benchmark described by a YAML sweep spec
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a sequence of benchmarks from a YAML spec",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(sweepLog)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", sweepLog)
		}
		logrus.SetLevel(level)

		spec, err := bench.LoadSweepSpec(sweepSpecPath)
		if err != nil {
			logrus.Fatalf("Failed to load sweep spec: %v", err)
		}
		cfgs, err := spec.Configs()
		if err != nil {
			logrus.Fatalf("Invalid sweep spec: %v", err)
		}

		for i, cfg := range cfgs {
			logrus.Infof("sweep run %d/%d: type=%s dist=%s n=%d", i+1, len(cfgs), cfg.Type, cfg.Dist, cfg.N)
			res, err := bench.Run(cfg)
			if err != nil {
				logrus.Fatalf("Sweep run %d failed: %v", i+1, err)
			}
			switch sweepFormat {
			case "csv":
				err = export.CSV(os.Stdout, res, i == 0)
			case "jsonl":
				err = export.JSONL(os.Stdout, res)
			case "json":
				err = export.JSON(os.Stdout, res, true)
			case "table":
				err = export.Table(os.Stdout, res)
			default:
				logrus.Fatalf("Unknown output format: %s", sweepFormat)
			}
			if err != nil {
				logrus.Fatalf("Failed to write results: %v", err)
			}
		}
	},
}

func init() {
	sweepCmd.Flags().StringVar(&sweepSpecPath, "spec", "sweep.yaml", "Path to the sweep spec YAML")
	sweepCmd.Flags().StringVar(&sweepFormat, "format", "csv", "Output format (table, csv, json, jsonl)")
	sweepCmd.Flags().StringVar(&sweepLog, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.AddCommand(sweepCmd)
}
