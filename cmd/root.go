package cmd

import (
	"errors"
	"fmt"
	"os"

	"devserver/core/logger"
	"devserver/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Static file server for local development",
	Long: `devserver serves the directory it lives in over HTTP with permissive
CORS headers and opens it in the default browser.
It runs until interrupted with Ctrl+C.`,
	Args:          cobra.NoArgs,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		var reported *reportedError
		if errors.As(err, &reported) {
			os.Exit(1)
		}

		// Console format with debug level gives readable timestamps for a CLI tool
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
			Output: "stdout",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			reportError(l, err)
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// reportError turns a startup failure into a human-readable console message.
func reportError(l *zap.Logger, err error) {
	var se *server.StartupError
	switch {
	case errors.Is(err, server.ErrPortInUse) && errors.As(err, &se):
		l.Error("Port is already in use", zap.String("addr", se.Addr))
		l.Info("Stop the other server or choose another port with --port")
	case errors.Is(err, server.ErrUnexpectedStartup):
		l.Error("Server failed to start", zap.Error(err))
	default:
		l.Error("command failed", zap.Error(err))
	}
}
