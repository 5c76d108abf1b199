// Package logger provides a structured logging facility based on Zap.
//
// The console encoding is the default because the server is usually run from a
// terminal; json is available for piping into other tools. Debug level switches
// to zap's development configuration.
//
// # Request correlation
//
// WithRayID attaches the request's ray id (see core/middleware/rayid) to a
// logger so every line logged while handling a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Warn("File not found", zap.String("path", c.Path()))
package logger
