package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"advent/internal/days"
	"advent/internal/manifest"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "advent - daily puzzle runner",
	Long: `advent bundles every daily puzzle behind one binary.

Each puzzle reads its input on stdin and prints two labelled answer
lines on stdout; diagnostics go to stderr. The per-day binaries under
cmd/ do the same one day at a time.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// runCmd solves one day over stdin/stdout
var runCmd = &cobra.Command{
	Use:   "run [day]",
	Short: "Solve one day, reading the puzzle input from stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, ok := days.Find(args[0])
		if !ok {
			return fmt.Errorf("unknown day %q, try 'advent list'", args[0])
		}
		logger.Debug("running puzzle", zap.String("day", day.DayName()))
		if err := day.Run(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			logger.Error("run failed", zap.String("day", day.DayName()), zap.Error(err))
			return err
		}
		return nil
	},
}

// listCmd prints the registered days
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every registered day",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range days.All() {
			fmt.Fprintln(cmd.OutOrStdout(), d.DayName())
		}
		return nil
	},
}

// checkCmd verifies recorded answers against real inputs
var checkCmd = &cobra.Command{
	Use:   "check [manifest]",
	Short: "Check every day listed in an answers manifest",
	Long: `Loads a YAML manifest mapping days to puzzle input files and their
expected answers, runs each listed day, and reports mismatches.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		failures := 0
		for _, name := range m.Names() {
			entry := m.Days[name]
			if err := checkDay(cmd, name, entry); err != nil {
				logger.Error("check failed", zap.String("day", name), zap.Error(err))
				failures++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
		}
		if failures > 0 {
			return fmt.Errorf("%d of %d days failed", failures, len(m.Days))
		}
		return nil
	},
}

func checkDay(cmd *cobra.Command, name string, entry manifest.Entry) error {
	day, ok := days.Find(name)
	if !ok {
		return fmt.Errorf("unknown day")
	}
	input, err := os.ReadFile(entry.Input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	one, two, err := day.Answers(string(input))
	if err != nil {
		return err
	}
	if one != entry.One || two != entry.Two {
		return fmt.Errorf("got %d/%d, want %d/%d", one, two, entry.One, entry.Two)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
