package static

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	cfg    Config
	logger *zap.Logger
}

// NewFeature creates the static file feature.
func NewFeature(cfg Config, logger *zap.Logger) *Feature {
	if cfg.Index == "" {
		cfg.Index = "index.html"
	}
	return &Feature{cfg: cfg, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load mounts the document root at "/". It answers every GET and HEAD path
// that resolves to a file, so it must be the last feature registered.
func (f *Feature) Load(app fiber.Router) error {
	info, err := os.Stat(f.cfg.Root)
	if err != nil {
		return fmt.Errorf("document root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("document root %s is not a directory", f.cfg.Root)
	}

	app.Use(f.handler())

	f.logger.Debug("Serving static files",
		zap.String("root", f.cfg.Root),
		zap.String("index", f.cfg.Index),
		zap.Bool("browse", f.cfg.Browse),
	)
	return nil
}

func (f *Feature) handler() fiber.Handler {
	fs := &fasthttp.FS{
		Root:               f.cfg.Root,
		IndexNames:         []string{f.cfg.Index},
		GenerateIndexPages: f.cfg.Browse,
		AcceptByteRange:    true,
		Compress:           false,
		// Files are edited while the server runs; every request reopens them.
		SkipCache: true,
	}
	serve := fs.NewRequestHandler()

	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
			return c.Next()
		}

		serve(c.Context())

		switch c.Response().StatusCode() {
		case fiber.StatusNotFound, fiber.StatusForbidden:
			// Misses and unlisted directories fall through to the 404 handler.
			c.Context().SetContentType("")
			c.Response().SetStatusCode(fiber.StatusOK)
			c.Response().SetBodyString("")
			return c.Next()
		}
		return nil
	}
}
