// Package server runs the static file server.
//
// It resolves the document root, assembles the fiber application (ray id,
// request logging and CORS middleware followed by the registered features)
// and drives the listener through its lifecycle:
//
//	Starting -> Listening -> Serving -> Stopped
//	Starting -> Failed                  (bind error)
//
// # Startup errors
//
// Failures before the serve loop are returned as *StartupError. Its kind is
// ErrPortInUse when another process holds the port and ErrUnexpectedStartup
// otherwise; both match with errors.Is.
//
// # Configuration
//
// Config carries the bind host and port (default 8000 on all interfaces), the
// document root, whether to open a browser, directory listing and the
// graceful shutdown timeout. It is embedded in core/config.
package server
