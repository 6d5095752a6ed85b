package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/busstop-sim/busstop-sim/sim"
	"github.com/busstop-sim/busstop-sim/sim/assess"
	"github.com/busstop-sim/busstop-sim/sim/narrative"
	"github.com/busstop-sim/busstop-sim/sim/stats"
)

var (
	// CLI flags for the stop and its service
	durationMinutes    int     // Simulated minutes per run
	numRuns            int     // Number of Monte Carlo runs
	arrivalRate        float64 // Mean passenger arrivals per minute
	busIntervalMinutes int     // Minutes between buses
	busCapacity        int     // Seats per bus
	startTime          string  // Wall-clock start, HH:MM
	seed               int64   // Base seed for all runs
	workers            int     // Concurrent runs (0 = GOMAXPROCS)
	logLevel           string  // Log verbosity level

	// Presets and output
	scenarioName  string // Named preset from the scenarios file
	scenariosFile string // Path to the scenarios YAML
	outputDir     string // Directory for CSV/JSON exports (empty = none)

	// Narrative commentary
	narrate        bool   // Request narrative commentary after the run
	apiKey         string // Provider credential (falls back to env / .env)
	envFile        string // dotenv file consulted for the credential
	narrativeModel string // Provider model name
	narrateTimeout int    // Seconds before the narrative call is abandoned
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "busstop-sim",
	Short: "Monte Carlo queueing simulator for a bus stop",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Monte Carlo bus stop simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if scenarioName != "" {
			file, err := LoadScenarioFile(scenariosFile)
			if err != nil {
				logrus.Fatalf("unable to load scenarios: %v", err)
			}
			sc, err := file.Lookup(scenarioName)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			applyScenario(cmd, sc)
			logrus.Infof("Using scenario %q from %s", scenarioName, scenariosFile)
		}

		start, err := sim.ParseTimeOfDay(startTime)
		if err != nil {
			logrus.Fatalf("Invalid --start: %v", err)
		}
		cfg := sim.SimulationConfig{
			DurationMinutes:    durationMinutes,
			NumRuns:            numRuns,
			ArrivalRate:        arrivalRate,
			BusIntervalMinutes: busIntervalMinutes,
			BusCapacity:        busCapacity,
			StartTimeOfDay:     start,
			Seed:               seed,
			Workers:            workers,
		}
		if err := ValidateInputBounds(cfg); err != nil {
			logrus.Fatalf("%v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		results, err := sim.RunMonteCarlo(ctx, cfg, sim.WithProgress(newProgressLogger()))
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		band := stats.QueueBand(results.QueueLengths)
		agg := stats.Summarize(results.Summaries)
		assessment := assess.Assess(agg, cfg.BusIntervalMinutes)

		PrintReport(os.Stdout, cfg, agg, band, assessment)

		if outputDir != "" {
			if err := WriteOutputs(outputDir, results, band, agg, assessment); err != nil {
				logrus.Fatalf("export failed: %v", err)
			}
			logrus.Infof("Wrote output tables to %s", outputDir)
		}

		if narrate {
			PrintNarrative(os.Stdout, narrative.Advise(ctx, buildNarrator(), narrativeInput(cfg, agg), secondsToDuration(narrateTimeout)))
		}

		logrus.Info("Simulation complete.")
	},
}

// buildNarrator returns nil (with a warning) when no credential is available,
// which Advise reports as disabled commentary.
func buildNarrator() narrative.Narrator {
	key := narrative.ResolveAPIKey(apiKey, envFile)
	client, err := narrative.NewClient(key, narrativeModel)
	if err != nil {
		logrus.Warnf("narrative commentary skipped: %v", err)
		return nil
	}
	return client
}

func narrativeInput(cfg sim.SimulationConfig, agg *stats.Aggregate) narrative.Input {
	return narrative.Input{
		AvgWaitTime:        agg.AvgWaitTime,
		AvgQueueLength:     agg.AvgQueueLength,
		Utilization:        agg.Utilization,
		ProbBusFull:        agg.ProbBusFull,
		ArrivalRate:        cfg.ArrivalRate,
		BusIntervalMinutes: cfg.BusIntervalMinutes,
		BusCapacity:        cfg.BusCapacity,
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Base seed; run i uses a stream derived from (seed, i)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent runs (0 = GOMAXPROCS)")

	// Stop and service configuration
	runCmd.Flags().IntVar(&durationMinutes, "duration", 120, "Simulated minutes per run (60-1440)")
	runCmd.Flags().IntVar(&numRuns, "runs", 50, "Number of Monte Carlo runs (10-500)")
	runCmd.Flags().Float64Var(&arrivalRate, "rate", 2.0, "Mean passenger arrivals per minute")
	runCmd.Flags().IntVar(&busIntervalMinutes, "bus-interval", 10, "Minutes between bus arrivals")
	runCmd.Flags().IntVar(&busCapacity, "bus-capacity", 25, "Seats per bus")
	runCmd.Flags().StringVar(&startTime, "start", "17:00", "Wall-clock time of minute 0 (HH:MM)")

	// Presets and output
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario preset; explicit flags override it")
	runCmd.Flags().StringVar(&scenariosFile, "scenarios-file", "scenarios.yaml", "Path to scenario presets")
	runCmd.Flags().StringVar(&outputDir, "output-dir", "", "Write summary/events/queue tables and report.json here")

	// Narrative commentary
	runCmd.Flags().BoolVar(&narrate, "narrate", false, "Request narrative commentary from the model provider")
	runCmd.Flags().StringVar(&apiKey, "api-key", "", "Provider API key (default: $"+narrative.APIKeyEnv+" or --env-file)")
	runCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file consulted for the API key")
	runCmd.Flags().StringVar(&narrativeModel, "model", narrative.DefaultModel, "Provider model name")
	runCmd.Flags().IntVar(&narrateTimeout, "narrate-timeout", 30, "Seconds before narrative generation is abandoned")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
