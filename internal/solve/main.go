package solve

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the console logger the daily programs use for
// diagnostics. It writes to stderr only, keeping stdout clean for the
// two answer lines.
func NewLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		// The static config above cannot fail to build.
		panic(err)
	}
	return logger
}

// Main is the whole body of a per-day binary: run the pipeline over the
// process streams and exit non-zero on any failure. The programs take no
// arguments and no configuration.
func Main(day Runner) {
	logger := NewLogger(false)
	defer func() { _ = logger.Sync() }()

	if err := day.Run(os.Stdin, os.Stdout); err != nil {
		logger.Error("run failed", zap.String("day", day.DayName()), zap.Error(err))
		os.Exit(1)
	}
}
