package cmd

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/fuel-sim/sim"
	"github.com/inference-sim/fuel-sim/sim/observability"
	"github.com/inference-sim/fuel-sim/sim/report"
	"github.com/inference-sim/fuel-sim/sim/station"
	"github.com/inference-sim/fuel-sim/sim/trace"
)

var (
	// CLI flags for the run command
	seed            int64  // Seed for service-duration perturbation
	logLevel        string // Log verbosity level
	pumpsPath       string // Pump setup file
	arrivalsPath    string // Arrival list file
	pricesPath      string // Price table YAML (empty = built-in prices)
	outputPath      string // Event log, appended to (empty = stdout)
	allocatorName   string // Pump allocation policy
	traceLevel      string // Decision trace level
	metricsTextfile string // Prometheus textfile destination (empty = disabled)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "fuel-sim",
	Short:         "Discrete-event simulator for a fuel station's day",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// runOptions carries everything runSimulation needs, so tests can call it without flags.
type runOptions struct {
	Seed            int64
	PumpsPath       string
	ArrivalsPath    string
	PricesPath      string
	Allocator       string
	TraceLevel      string
	MetricsTextfile string
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one day of arrivals against the configured pumps",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		logrus.SetLevel(level)

		opts := runOptions{
			Seed:            seed,
			PumpsPath:       pumpsPath,
			ArrivalsPath:    arrivalsPath,
			PricesPath:      pricesPath,
			Allocator:       allocatorName,
			TraceLevel:      traceLevel,
			MetricsTextfile: metricsTextfile,
		}

		startTime := time.Now()
		var summary sim.Summary
		simulate := func(out io.Writer) error {
			var err error
			summary, err = runSimulation(opts, out)
			return err
		}
		if outputPath == "" {
			err = simulate(cmd.OutOrStdout())
		} else {
			f, openErr := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if openErr != nil {
				return fmt.Errorf("opening event log: %w", openErr)
			}
			err = writeAndClose(f, simulate)
		}
		if err != nil {
			return err
		}
		if outputPath != "" {
			stdout := report.NewLogWriter(cmd.OutOrStdout())
			stdout.WriteReport(summary)
			if err := stdout.Err(); err != nil {
				return err
			}
		}
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
		return nil
	},
}

// runSimulation loads the inputs, runs one day and writes the event log to out.
// Nothing is simulated if any input is malformed.
func runSimulation(opts runOptions, out io.Writer) (sim.Summary, error) {
	if !sim.IsValidAllocator(opts.Allocator) {
		return sim.Summary{}, fmt.Errorf("unknown allocator %q; valid: least-occupied, first-available", opts.Allocator)
	}
	if !trace.IsValidTraceLevel(opts.TraceLevel) {
		return sim.Summary{}, fmt.Errorf("unknown trace level %q; valid: none, decisions", opts.TraceLevel)
	}

	stationCfg, err := station.LoadStation(opts.PumpsPath, opts.PricesPath)
	if err != nil {
		return sim.Summary{}, err
	}
	records, err := station.LoadArrivals(opts.ArrivalsPath)
	if err != nil {
		return sim.Summary{}, err
	}
	logrus.Infof("Starting simulation with %d pumps, %d arrivals, allocator=%s, seed=%d",
		len(stationCfg.Pumps), len(records), opts.Allocator, opts.Seed)

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(opts.Seed))
	customers := sim.PrepareCustomers(records, rng.ForSubsystem(sim.SubsystemService))

	logWriter := report.NewLogWriter(out)
	observers := []sim.Observer{logWriter}

	var collector *observability.Collector
	if opts.MetricsTextfile != "" {
		collector, err = observability.NewCollector(prometheus.NewRegistry(), stationCfg.Prices)
		if err != nil {
			return sim.Summary{}, err
		}
		observers = append(observers, collector)
	}

	logWriter.WriteSetup(stationCfg)
	s := sim.NewSimulator(sim.SimConfig{
		Station:   stationCfg,
		Allocator: opts.Allocator,
		Observers: observers,
		Trace:     trace.TraceConfig{Level: trace.TraceLevel(opts.TraceLevel)},
	}, customers)
	summary := s.Run()
	logWriter.WriteReport(summary)
	if err := logWriter.Err(); err != nil {
		return summary, fmt.Errorf("writing event log: %w", err)
	}

	if s.Trace != nil {
		ts := trace.Summarize(s.Trace)
		logrus.Infof("Allocation trace: %d decisions, %d allocated, %d rejected, mean regret %.2f, max regret %d",
			ts.TotalDecisions, ts.AllocatedCount, ts.RejectedCount, ts.MeanRegret, ts.MaxRegret)
		for _, pumpID := range slices.Sorted(maps.Keys(ts.PumpDistribution)) {
			logrus.Infof("  pump %d: %d vehicles", pumpID, ts.PumpDistribution[pumpID])
		}
	}
	if collector != nil {
		if err := collector.WriteTextfile(opts.MetricsTextfile); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// writeAndClose runs write against wc and then closes it. A close failure is
// reported when write itself succeeded, since buffered log lines may be lost.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	if err := write(wc); err != nil {
		wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("closing event log: %w", err)
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for service-duration perturbation")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Input and output files
	runCmd.Flags().StringVar(&pumpsPath, "pumps", "setup.txt", "Pump setup file: <id> <capacity> <grade>... per line")
	runCmd.Flags().StringVar(&arrivalsPath, "arrivals", "input.txt", "Arrival list: <HH:MM> <liters> <grade> per line")
	runCmd.Flags().StringVar(&pricesPath, "prices", "", "Price table YAML (default: built-in prices)")
	runCmd.Flags().StringVar(&outputPath, "output", "output.txt", "Event log file, appended to (empty for stdout)")

	// Policy and diagnostics
	runCmd.Flags().StringVar(&allocatorName, "allocator", "least-occupied", "Pump allocation policy (least-occupied, first-available)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Decision trace level (none, decisions)")
	runCmd.Flags().StringVar(&metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file after the run")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
}
