package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seeksim/seeksim/scheduler"
)

var (
	compareCSV    string
	compareOutput string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all four policies side by side over the workload",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadScenario()
		comparison := scheduler.CompareAll(cfg.Requests, cfg.Head, cfg.DiskSize)

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ALGORITHM\tTOTAL SEEK\tAVG SEEK\tTHROUGHPUT\tORDER")
		for _, p := range scheduler.AllPolicies {
			result := comparison[p.String()]
			if result.Metrics != nil {
				fmt.Fprintf(w, "%s\t%d\t%.2f\t%.4f\t%v\n",
					p, result.SeekCost, result.Metrics.AverageSeekTime, result.Metrics.Throughput, result.Order)
			} else {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%v\n", p, result.SeekCost, "n/a", "n/a", result.Order)
			}
		}
		if err := w.Flush(); err != nil {
			logrus.Fatalf("Failed to render table: %v", err)
		}

		if compareCSV != "" {
			f, err := os.Create(compareCSV)
			if err != nil {
				logrus.Fatalf("Failed to create %s: %v", compareCSV, err)
			}
			defer f.Close()
			if err := scheduler.WriteComparisonCSV(f, comparison); err != nil {
				logrus.Fatalf("Failed to write CSV: %v", err)
			}
			logrus.Infof("Comparison CSV written to %s", compareCSV)
		}

		if compareOutput != "" {
			writeJSON(compareOutput, map[string]interface{}{
				"config":     cfg,
				"comparison": comparison,
			})
		}
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareCSV, "csv", "", "Path to output CSV file (optional)")
	compareCmd.Flags().StringVar(&compareOutput, "output", "", "Path to output JSON file (optional)")

	rootCmd.AddCommand(compareCmd)
}
