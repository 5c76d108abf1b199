// Package cors attaches permissive Cross-Origin Resource Sharing headers to
// every response, including error responses and misses from the file server.
package cors

import (
	"github.com/gofiber/fiber/v2"
)

// Config defines the header values written on each response.
type Config struct {
	// Next skips the middleware when it returns true.
	Next func(c *fiber.Ctx) bool
	// AllowOrigin is the Access-Control-Allow-Origin value.
	AllowOrigin string
	// AllowMethods is the Access-Control-Allow-Methods value.
	AllowMethods string
	// AllowHeaders is the Access-Control-Allow-Headers value.
	AllowHeaders string
}

// ConfigDefault allows any origin and header for GET, POST and OPTIONS.
var ConfigDefault = Config{
	AllowOrigin:  "*",
	AllowMethods: "GET, POST, OPTIONS",
	AllowHeaders: "*",
}

// New creates the CORS middleware.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
		if cfg.AllowOrigin == "" {
			cfg.AllowOrigin = ConfigDefault.AllowOrigin
		}
		if cfg.AllowMethods == "" {
			cfg.AllowMethods = ConfigDefault.AllowMethods
		}
		if cfg.AllowHeaders == "" {
			cfg.AllowHeaders = ConfigDefault.AllowHeaders
		}
	}

	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		// Preflight requests never reach the file server.
		if c.Method() == fiber.MethodOptions {
			apply(c, cfg)
			return c.SendStatus(fiber.StatusNoContent)
		}

		err := c.Next()
		// The file handler resets the response on a miss, so the headers
		// are written once the rest of the chain has finished.
		apply(c, cfg)
		return err
	}
}

func apply(c *fiber.Ctx, cfg Config) {
	c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowOrigin)
	c.Set(fiber.HeaderAccessControlAllowMethods, cfg.AllowMethods)
	c.Set(fiber.HeaderAccessControlAllowHeaders, cfg.AllowHeaders)
}
