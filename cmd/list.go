package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sortbench/sortbench/bench"
)

var (
	listType    string   // Element type to list algorithms for
	listPlugins []string // Plugin libraries to include in the listing
	listAll     bool     // List every element type
)

// listCmd prints the available algorithms, distributions, and element types
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available algorithms, distributions, and element types",
	Run: func(cmd *cobra.Command, args []string) {
		if listAll {
			for _, t := range bench.SupportedTypes() {
				fmt.Printf("%s:\n", t)
				for _, name := range bench.ListAlgorithmsWithPlugins(t, listPlugins) {
					fmt.Printf("  %s\n", name)
				}
			}
		} else {
			t, err := bench.ParseElemType(listType)
			if err != nil {
				logrus.Warnf("%v; using %q", err, t)
			}
			for _, name := range bench.ListAlgorithmsWithPlugins(t, listPlugins) {
				fmt.Println(name)
			}
		}

		fmt.Println("\ndistributions:")
		for _, name := range bench.AllDistNames() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("\ntypes:")
		for _, t := range bench.SupportedTypes() {
			fmt.Printf("  %s\n", t)
		}
	},
}

func init() {
	listCmd.Flags().StringVar(&listType, "type", "i32", "Element type to list algorithms for")
	listCmd.Flags().StringSliceVar(&listPlugins, "plugin", nil, "Algorithm plugin library paths")
	listCmd.Flags().BoolVar(&listAll, "all", false, "List algorithms for every element type")
	rootCmd.AddCommand(listCmd)
}
