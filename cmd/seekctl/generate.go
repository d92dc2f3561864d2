package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seeksim/seeksim/scheduler"
)

var (
	generateCount        int
	generateDistribution string
	generateSeed         int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic request workload",
	Long:  "Print a comma-separated request list sampled over [0, disk-size), suitable for --requests.",
	Run: func(cmd *cobra.Command, args []string) {
		dist, err := scheduler.ParseDistributionType(generateDistribution)
		if err != nil {
			logrus.Fatalf("Unknown distribution: %v", err)
		}

		requests, err := scheduler.GenerateRequests(scheduler.WorkloadConfig{
			Count:        generateCount,
			DiskSize:     diskSizeFlag,
			Distribution: dist,
			Seed:         generateSeed,
		})
		if err != nil {
			logrus.Fatalf("Failed to generate workload: %v", err)
		}

		tokens := make([]string, len(requests))
		for i, r := range requests {
			tokens[i] = strconv.Itoa(r)
		}
		fmt.Println(strings.Join(tokens, ", "))
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateCount, "count", 8, "Number of requests to generate")
	generateCmd.Flags().StringVar(&generateDistribution, "distribution", "uniform", "Cylinder spread: uniform, exponential, or geometric")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed for reproducibility (0 = random)")

	rootCmd.AddCommand(generateCmd)
}
