package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/seeksim/seeksim/scheduler"
)

var (
	requestsFlag string
	headFlag     int
	diskSizeFlag int
	scenarioPath string
)

var rootCmd = &cobra.Command{
	Use:   "seekctl",
	Short: "Disk-head scheduling playground",
	Long:  "Run FCFS, SSTF, SCAN, and C-SCAN disk-head scheduling over a request workload and report seek costs.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&requestsFlag, "requests", "", "Comma-separated cylinder requests, e.g. '82,170,43'")
	rootCmd.PersistentFlags().IntVar(&headFlag, "head", 50, "Starting head cylinder")
	rootCmd.PersistentFlags().IntVar(&diskSizeFlag, "disk-size", 200, "Disk size in cylinders (exclusive upper bound)")
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario file (overrides the other flags)")
}

// loadScenario builds the run configuration from the scenario file if given,
// otherwise from the flags. Missing --requests falls back to the default
// textbook workload.
func loadScenario() scheduler.RunConfig {
	if scenarioPath != "" {
		data, err := os.ReadFile(scenarioPath)
		if err != nil {
			logrus.Fatalf("Failed to read scenario %s: %v", scenarioPath, err)
		}
		var cfg scheduler.RunConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			logrus.Fatalf("Failed to parse scenario %s: %v", scenarioPath, err)
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}
		return cfg
	}

	if requestsFlag == "" {
		return scheduler.RunConfig{
			Requests: scheduler.DefaultConfig().Requests,
			Head:     headFlag,
			DiskSize: diskSizeFlag,
		}
	}

	requests, err := scheduler.ParseRequestList(requestsFlag)
	if err != nil {
		logrus.Fatalf("Failed to parse requests: %v", err)
	}
	cfg := scheduler.RunConfig{
		Requests: requests,
		Head:     headFlag,
		DiskSize: diskSizeFlag,
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid scenario: %v", err)
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
