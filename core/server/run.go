package server

import (
	"context"

	"devserver/core/browser"
	"devserver/core/loader"

	"go.uber.org/zap"
)

// Run assembles the application, binds the port, announces the server, opens
// the browser and serves until ctx is cancelled. A nil opener never launches a
// browser.
func Run(ctx context.Context, cfg Config, log *zap.Logger, opener browser.Opener, features ...loader.Feature) error {
	app, err := NewApp(log, features...)
	if err != nil {
		return err
	}

	srv := New(cfg, app, log)
	if err := srv.Listen(); err != nil {
		return err
	}
	defer srv.Close()

	url := srv.URL()
	log.Info("Starting static file server",
		zap.String("url", url),
		zap.String("root", cfg.Root),
		zap.String("addr", srv.Addr().String()),
	)
	log.Info("Press Ctrl+C to stop the server")

	if cfg.OpenBrowser && opener != nil {
		browser.Launch(opener, url, log)
	}

	return srv.Serve(ctx)
}
