package server

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrPortInUse reports that another process already holds the port.
	ErrPortInUse = errors.New("port already in use")
	// ErrUnexpectedStartup covers every other failure while preparing to serve.
	ErrUnexpectedStartup = errors.New("unexpected startup error")
)

// StartupError is returned for terminal failures before the serve loop starts.
type StartupError struct {
	Kind error
	Addr string
	Err  error
}

func (e *StartupError) Error() string {
	if e.Addr == "" {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%v on %s: %v", e.Kind, e.Addr, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *StartupError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// classifyListenError maps a bind failure to its startup error kind.
func classifyListenError(addr string, err error) error {
	kind := ErrUnexpectedStartup
	if errors.Is(err, syscall.EADDRINUSE) {
		kind = ErrPortInUse
	}
	return &StartupError{Kind: kind, Addr: addr, Err: err}
}
