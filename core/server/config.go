package server

import (
	"net"
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface to bind. Empty means all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port int `mapstructure:"port" default:"8000"`
	// Root is the document root. Empty means the directory of the executable.
	Root string `mapstructure:"root" default:""`
	// OpenBrowser opens the default browser once the server is listening.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
	// Browse enables directory listings for directories without an index file.
	Browse bool `mapstructure:"browse" default:"true"`
	// Index is the file served for directory requests.
	Index string `mapstructure:"index" default:"index.html"`
	// ShutdownTimeoutSeconds bounds the graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"5"`
}

const (
	DefaultPort            = 8000
	DefaultShutdownTimeout = 5 * time.Second
)

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ShutdownTimeout returns the graceful shutdown bound, falling back to the default.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return DefaultShutdownTimeout
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
