// Package cli holds the command tree of the hugeint tool.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/govalues/hugeint"
)

var (
	logLevel  = "warn"
	logFormat = "text"

	// Root is the entry point of the hugeint tool.
	Root = &cobra.Command{
		Use:   "hugeint",
		Short: "hugeint performs arithmetic on unsigned decimal integers of fixed width.",
		Long: fmt.Sprintf("`hugeint` performs arithmetic on unsigned decimal integers of up to %v digits.\n\n", hugeint.Digits) +
			"Addition, subtraction and multiplication wrap around silently when a result does not fit,\n" +
			"division truncates, and division by zero is reported as an error.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}
)

func init() {
	registerLogFlags(Root.PersistentFlags())

	Root.AddCommand(Demo)
	Root.AddCommand(Calc)
	Root.AddCommand(Cmp)
}

func registerLogFlags(fs *pflag.FlagSet) {
	fs.StringVar(&logLevel, "log-level", logLevel, "Minimum level of log messages: debug, info, warn or error.")
	fs.StringVar(&logFormat, "log-format", logFormat, "Format of log messages: text or json.")
}

// newLogger builds a logger writing to the command's error stream,
// configured by the log flags.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := slogLevel(logLevel)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(logFormat)) {
	case "json":
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case "text":
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	default:
		return nil, fmt.Errorf("invalid log-format %q: expected text or json", logFormat)
	}
	return slog.New(handler), nil
}

// slogLevel maps the log-level flag value to a slog.Level.
func slogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", level)
	}
}
