package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seeksim/seeksim/scheduler"
)

var (
	runAlgorithm string
	runOutput    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Schedule the workload under a single policy",
	Run: func(cmd *cobra.Command, args []string) {
		policy, err := scheduler.ParsePolicy(runAlgorithm)
		if err != nil {
			logrus.Fatalf("Unknown algorithm: %v", err)
		}

		cfg := loadScenario()
		order, total := scheduler.Schedule(policy, cfg.Requests, cfg.Head, cfg.DiskSize)

		fmt.Printf("Algorithm: %s\n", policy)
		fmt.Printf("Sequence:  %v\n", order)
		fmt.Printf("Total Seek Time: %d\n", total)

		metrics, err := scheduler.ComputeMetrics(total, len(cfg.Requests))
		if err != nil {
			fmt.Printf("Average Seek Time: n/a (%v)\n", err)
			fmt.Printf("Throughput: n/a\n")
		} else {
			fmt.Printf("Average Seek Time: %.2f\n", metrics.AverageSeekTime)
			fmt.Printf("Throughput: %.4f requests/unit seek\n", metrics.Throughput)
		}

		if runOutput != "" {
			result := scheduler.PolicyResult{
				Policy:   policy,
				Order:    order,
				SeekCost: total,
			}
			if err == nil {
				result.Metrics = &metrics
			} else {
				result.Err = err.Error()
			}
			writeJSON(runOutput, map[string]interface{}{
				"config": cfg,
				"result": result,
			})
		}
	},
}

// writeJSON marshals results the way the batch runner reports them
func writeJSON(path string, v interface{}) {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logrus.Fatalf("Failed to marshal results: %v", err)
	}
	if err := os.WriteFile(path, output, 0644); err != nil {
		logrus.Fatalf("Failed to write %s: %v", path, err)
	}
	logrus.Infof("Results written to %s", path)
}

func init() {
	runCmd.Flags().StringVar(&runAlgorithm, "algorithm", "FCFS", "Scheduling policy: FCFS, SSTF, SCAN, or C-SCAN")
	runCmd.Flags().StringVar(&runOutput, "output", "", "Path to output JSON file (optional)")

	rootCmd.AddCommand(runCmd)
}
