package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sortbench/sortbench/bench/api"
)

var (
	serveAddr    string   // HTTP listen address
	serveLog     string   // Log verbosity level
	servePlugins []string // Plugin libraries available to API runs
)

// serveCmd exposes the benchmark engine over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the benchmark engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(serveLog)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", serveLog)
		}
		logrus.SetLevel(level)

		if err := api.Serve(serveAddr, servePlugins); err != nil {
			logrus.Fatalf("Server failed: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "HTTP listen address")
	serveCmd.Flags().StringVar(&serveLog, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	serveCmd.Flags().StringSliceVar(&servePlugins, "plugin", nil, "Algorithm plugin library paths")
	rootCmd.AddCommand(serveCmd)
}
