// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and is registered with a
// Manager, which mounts the enabled ones on the fiber application in
// registration order.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Order matters for catch-all features such as feature/static, which must be
// registered last so it does not shadow more specific routes.
package loader
