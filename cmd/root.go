package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	sim "github.com/banksim/banksim/sim"
	"github.com/banksim/banksim/sim/trace"
)

// envPrefix is prepended to every flag name to form its environment variable,
// e.g. --trace-level is BANKSIM_TRACE_LEVEL.
const envPrefix = "BANKSIM"

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "banksim",
	Short: "Discrete-event simulator for bank teller queues",
}

// runCmd executes the simulations using positional parameters and flags
var runCmd = &cobra.Command{
	Use:   "run <customers> <tellers> <horizon-minutes> <avg-service-minutes>",
	Short: "Run the separate-queue and single-queue bank simulations",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := parseRunArgs(args)
		if err != nil {
			return err
		}

		opts, err := resolveRunOptions(cmd.Flags())
		if err != nil {
			return err
		}
		base.Bounds = opts.bounds
		if err := base.Validate(); err != nil {
			return err
		}

		level, err := logrus.ParseLevel(opts.logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
		}
		logrus.SetLevel(level)

		return runSimulations(cmd.OutOrStdout(), base, opts)
	},
}

// runOptions are the flag, environment and scenario settings after precedence
// has been applied.
type runOptions struct {
	key         sim.SimulationKey
	logLevel    string
	modes       []sim.QueueMode
	traceLevel  trace.TraceLevel
	resultsPath string
	bounds      sim.VariateBounds
}

// parseRunArgs converts the four positional parameters into a SimConfig.
func parseRunArgs(args []string) (sim.SimConfig, error) {
	customers, err := strconv.Atoi(args[0])
	if err != nil {
		return sim.SimConfig{}, fmt.Errorf("%w: customers must be an integer, got %q", sim.ErrInvalidConfig, args[0])
	}
	tellers, err := strconv.Atoi(args[1])
	if err != nil {
		return sim.SimConfig{}, fmt.Errorf("%w: tellers must be an integer, got %q", sim.ErrInvalidConfig, args[1])
	}
	horizon, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return sim.SimConfig{}, fmt.Errorf("%w: simulation time must be a number of minutes, got %q", sim.ErrInvalidConfig, args[2])
	}
	avgService, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return sim.SimConfig{}, fmt.Errorf("%w: average service time must be a number of minutes, got %q", sim.ErrInvalidConfig, args[3])
	}
	cfg := sim.NewSimConfig(customers, tellers, horizon, avgService, sim.SeparateQueues)
	if err := cfg.Validate(); err != nil {
		return sim.SimConfig{}, err
	}
	return cfg, nil
}

// resolveRunOptions applies precedence: explicit flag > BANKSIM_* environment
// variable > scenario file > flag default.
func resolveRunOptions(flags *pflag.FlagSet) (*runOptions, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	var sc *Scenario
	if scenarioPath := v.GetString("config"); scenarioPath != "" {
		var err error
		if sc, err = loadScenario(scenarioPath); err != nil {
			return nil, err
		}
		if sc.Seed != 0 {
			v.SetDefault("seed", sc.Seed)
		}
		if len(sc.Modes) > 0 {
			v.SetDefault("modes", sc.Modes)
		}
		if sc.LogLevel != "" {
			v.SetDefault("log", sc.LogLevel)
		}
		if sc.TraceLevel != "" {
			v.SetDefault("trace-level", sc.TraceLevel)
		}
		if sc.ResultsPath != "" {
			v.SetDefault("results-path", sc.ResultsPath)
		}
	}

	opts := &runOptions{
		key:         sim.NewSimulationKey(v.GetInt64("seed")),
		logLevel:    v.GetString("log"),
		resultsPath: v.GetString("results-path"),
		bounds:      sc.VariateBounds(),
	}

	tl := v.GetString("trace-level")
	if !trace.IsValidTraceLevel(tl) {
		return nil, fmt.Errorf("%w: unknown trace level %q (valid: none, decisions)", sim.ErrInvalidConfig, tl)
	}
	opts.traceLevel = trace.TraceLevel(tl)

	for _, raw := range v.GetStringSlice("modes") {
		// env values arrive as one comma-separated string
		for _, name := range strings.Split(raw, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			mode, err := sim.ParseQueueMode(name)
			if err != nil {
				return nil, err
			}
			opts.modes = append(opts.modes, mode)
		}
	}
	if len(opts.modes) == 0 {
		return nil, fmt.Errorf("%w: at least one queue mode is required", sim.ErrInvalidConfig)
	}
	return opts, nil
}

// runSimulations runs every requested mode and reports to w.
func runSimulations(w io.Writer, base sim.SimConfig, opts *runOptions) error {
	printParameters(w, base)
	logrus.Infof("Random stream key: %d", int64(opts.key))

	startTime := time.Now()
	rng := sim.NewStream(opts.key)
	results := make([]*sim.RunResult, 0, len(opts.modes))
	for _, mode := range opts.modes {
		printModeBanner(w, mode)
		fmt.Fprintln(w, "\nInitial events scheduled. Starting simulation...")
		res, err := sim.RunComparison(base, rng, opts.traceLevel, mode)
		if err != nil {
			return err
		}
		r := res[0]
		r.Metrics.Print(w, mode)
		if r.Trace != nil {
			printTraceSummary(w, trace.Summarize(r.Trace))
		}
		results = append(results, r)
	}
	logrus.Infof("Simulations completed in %s", time.Since(startTime))

	if opts.resultsPath != "" {
		if err := sim.SaveResults(opts.resultsPath, sim.NewResultsFile(opts.key, base, results)); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addRunFlags registers the run command's flags on fs. Values are read back
// through viper in resolveRunOptions, so no package variables are bound.
func addRunFlags(fs *pflag.FlagSet) {
	fs.Int64("seed", 0, "Seed for the random stream shared by all runs (0 = wall clock)")
	fs.String("log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	fs.StringSlice("modes", []string{"separate", "single"}, "Comma-separated queue modes to run, in order (separate, single)")
	fs.String("trace-level", string(trace.TraceLevelNone), "Decision trace level (none, decisions)")
	fs.String("results-path", "", "Write per-run statistics as YAML to this file")
	fs.String("config", "", "Scenario YAML file (seed, modes, log_level, trace_level, results_path, idle)")
}

// init sets up CLI flags and subcommands
func init() {
	addRunFlags(runCmd.Flags())

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
