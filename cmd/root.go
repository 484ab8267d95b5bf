package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	sim "github.com/bank-sim/bank-sim/sim"
	"github.com/bank-sim/bank-sim/sim/trace"
	"github.com/bank-sim/bank-sim/sim/workload"
)

var (
	// CLI flags for the bank simulation
	inputPath   string // Arrival pairs file, "-" for stdin
	configPath  string // Optional YAML run configuration
	capacity    int    // Event queue bound, 0 = growable
	traceLevel  string // Event trace verbosity
	resultsPath string // Optional JSON results file
	logLevel    string // Log verbosity level
	logFile     string // Rotating log file, empty = stderr
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "bank-sim",
	Short: "Discrete-event simulator for a single-teller bank queue",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bank simulation",
	Long: "Reads whitespace-separated (arrival time, transaction length) integer pairs " +
		"until end of input, simulates a single teller, and reports the average wait.",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		if err := configureLogging(logLevel, logFile); err != nil {
			logrus.Fatalf("%v", err)
		}

		cfg := sim.DefaultConfig()
		if configPath != "" {
			loaded, err := sim.LoadConfig(configPath)
			if err != nil {
				logrus.Fatalf("Failed to load config: %v", err)
			}
			cfg = *loaded
		}
		// Flags override the config file only when given explicitly
		applyFlagOverrides(cmd.Flags(), &cfg)
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		arrivals, err := readInput(inputPath, cmd.InOrStdin())
		if err != nil {
			logrus.Fatalf("Failed to read arrivals: %v", err)
		}

		logrus.Infof("Starting simulation with %d arrivals, capacity=%d, trace=%q",
			len(arrivals), cfg.Capacity, cfg.TraceLevel)

		if err := runSimulation(cfg, arrivals, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		logrus.Info("Simulation complete.")
	},
}

// applyFlagOverrides copies explicitly set flags onto cfg.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *sim.Config) {
	if flags.Changed("capacity") {
		cfg.Capacity = capacity
	}
	if flags.Changed("trace-level") {
		cfg.TraceLevel = traceLevel
	}
	if flags.Changed("results-path") {
		cfg.ResultsPath = resultsPath
	}
}

// readInput reads arrivals from path, or from stdin when path is "" or "-".
func readInput(path string, stdin io.Reader) ([]workload.Arrival, error) {
	if path == "" || path == "-" {
		return workload.ReadArrivals(stdin)
	}
	return workload.LoadArrivals(path)
}

// runSimulation injects arrivals, drains the event queue, and writes the report to out.
func runSimulation(cfg sim.Config, arrivals []workload.Arrival, out io.Writer) error {
	s := sim.NewSimulator(cfg, out)
	for _, a := range arrivals {
		if err := s.InjectArrival(a.Time, a.Length); err != nil {
			return err
		}
	}
	if err := s.Run(); err != nil {
		return err
	}
	s.Metrics.Print(out)

	if s.Trace != nil {
		printTraceSummary(out, trace.Summarize(s.Trace))
	}

	if cfg.ResultsPath != "" {
		runID := uuid.NewString()
		if err := s.Metrics.SaveResults(runID, cfg.ResultsPath); err != nil {
			return err
		}
		logrus.Infof("Run %s results saved to %s", runID, cfg.ResultsPath)
	}
	return nil
}

func printTraceSummary(w io.Writer, summary *trace.TraceSummary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Event Trace Summary ===")
	fmt.Fprintf(w, "Events processed     : %d (%d arrivals, %d departures)\n",
		summary.TotalEvents, summary.Arrivals, summary.Departures)
	fmt.Fprintf(w, "Served immediately   : %d\n", summary.ImmediateServices)
	fmt.Fprintf(w, "Served from line     : %d\n", summary.QueuedServices)
	fmt.Fprintf(w, "Max wait line length : %d\n", summary.MaxWaitLineLen)
	fmt.Fprintf(w, "Mean time in line    : %.2f ticks\n", summary.MeanWait)
	fmt.Fprintf(w, "Max time in line     : %d ticks\n", summary.MaxWait)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {

	runCmd.Flags().StringVar(&inputPath, "input", "-", "File of arrival time / transaction length pairs (\"-\" reads stdin)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML run configuration file")
	runCmd.Flags().IntVar(&capacity, "capacity", 0, "Event queue capacity (0 = grow on demand)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelNone), "Event trace level (none, events)")
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "Write metrics as JSON to this file")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this rotating file instead of stderr")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
