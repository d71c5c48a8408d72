package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/teller-sim/teller-sim/sim"
)

var (
	// CLI flags for the bank model
	configPath string  // Path to a YAML configuration file
	mode       string  // Run a single discipline instead of comparing both
	rate       float64 // Customer arrivals per hour
	tellers    int     // Number of tellers
	horizon    float64 // Simulation horizon in seconds
	seed       int64   // Seed for random variate generation
	logLevel   string  // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "teller-sim",
	Short: "Discrete-event simulator for bank teller queueing disciplines",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bank simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.DefaultConfig()
		if configPath != "" {
			cfg, err = sim.LoadConfig(configPath)
			if err != nil {
				logrus.Fatalf("unable to read configuration: %v", err)
			}
		}

		// CLI flags override file values only when explicitly set
		if cmd.Flags().Changed("rate") {
			cfg.ArrivalRatePerHour = rate
		}
		if cmd.Flags().Changed("tellers") {
			cfg.TellerCount = tellers
		}
		if cmd.Flags().Changed("horizon") {
			cfg.HorizonSeconds = horizon
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}

		if cmd.Flags().Changed("mode") {
			cfg.Mode = sim.Mode(mode)
			printReport(runOne(cfg))
			return
		}

		// Default invocation: compare both disciplines with the same seed
		cfg.Mode = sim.ModeSharedQueue
		shared := runOne(cfg)
		cfg.Mode = sim.ModeSeparateQueues
		separate := runOne(cfg)
		printReport(shared, separate)
	},
}

// runOne builds a Driver for cfg, runs it, and returns the summary.
func runOne(cfg sim.Config) sim.Summary {
	d, err := sim.NewDriver(cfg)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	d.Run()
	return d.Summary()
}

// printReport displays the comparative results table.
func printReport(results ...sim.Summary) {
	fmt.Println("=== Bank Teller Simulation ===")
	fmt.Printf("%-20s%-12s%-18s%-18s\n", "Mode", "Customers", "Mean wait (s)", "Max wait (s)")
	fmt.Println(strings.Repeat("-", 68))
	for _, r := range results {
		fmt.Printf("%-20s%-12d%-18.2f%-18.2f\n", r.Mode, r.CustomerCount, r.MeanWait, r.MaxWait)
	}
	fmt.Println(strings.Repeat("-", 68))
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	runCmd.Flags().StringVar(&mode, "mode", "", "Run a single discipline: shared_queue or separate_queues (default: compare both)")
	runCmd.Flags().Float64Var(&rate, "rate", 180, "Customer arrivals per hour")
	runCmd.Flags().IntVar(&tellers, "tellers", 6, "Number of tellers")
	runCmd.Flags().Float64Var(&horizon, "horizon", 28800, "Simulation horizon in seconds")
	runCmd.Flags().Int64Var(&seed, "seed", 12345, "Seed for random variate generation")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
