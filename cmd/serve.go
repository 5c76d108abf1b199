package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"devserver/core/browser"
	"devserver/core/config"
	"devserver/core/logger"
	"devserver/core/server"
	"devserver/feature/static"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newOpener builds the browser launcher used when --open is set.
var newOpener = browser.System

// reportedError marks a failure that was already logged with the configured logger.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".", cmd.Flags())
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// From here on failures go through the user's log settings.
	if err := serve(cmd, cfg, logg); err != nil {
		reportError(logg, err)
		return &reportedError{err: err}
	}
	return nil
}

func serve(cmd *cobra.Command, cfg *config.Config, logg *zap.Logger) error {
	// 3. Resolve the document root and serve relative to it
	root, err := server.ResolveRoot(cfg.Server.Root)
	if err != nil {
		return err
	}
	if err := os.Chdir(root); err != nil {
		return &server.StartupError{Kind: server.ErrUnexpectedStartup, Err: err}
	}
	cfg.Server.Root = root

	// 4. Browser launcher
	var opener browser.Opener
	if cfg.Server.OpenBrowser {
		opener = newOpener()
	}

	// 5. Serve until interrupted
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg.Server, logg, opener,
		static.NewFeature(static.Config{
			Root:   root,
			Index:  cfg.Server.Index,
			Browse: cfg.Server.Browse,
		}, logg),
	)
}

func init() {
	flags := RootCmd.Flags()
	flags.String("host", "", "interface to bind (empty for all interfaces)")
	flags.IntP("port", "p", server.DefaultPort, "port to listen on")
	flags.StringP("root", "r", "", "document root (defaults to the executable's directory)")
	flags.Bool("open", true, "open the default browser once listening")
	flags.Bool("browse", true, "list directories without an index file")
	flags.String("index", "index.html", "file served for directory requests")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
}
