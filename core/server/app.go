package server

import (
	"devserver/core/loader"
	"devserver/core/middleware/cors"
	"devserver/core/middleware/rayid"
	"devserver/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp builds the fiber application with the middleware chain and the
// given features mounted in order.
func NewApp(log *zap.Logger, features ...loader.Feature) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own banner
		AppName:               "devserver",
	})

	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())
	// 2. Request logging, tagged with the ray id
	app.Use(requestlog.New(log))
	// 3. CORS headers on every response
	app.Use(cors.New())

	mgr := loader.NewManager()
	for _, f := range features {
		mgr.Register(f)
	}

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, &StartupError{Kind: ErrUnexpectedStartup, Err: err}
	}
	log.Debug("Features loaded", zap.Strings("features", loaded))

	return app, nil
}
