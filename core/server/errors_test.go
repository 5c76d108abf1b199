package server

import (
	"errors"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyListenError(t *testing.T) {
	t.Run("AddressInUse", func(t *testing.T) {
		cause := &net.OpError{Op: "listen", Net: "tcp", Err: os.NewSyscallError("bind", syscall.EADDRINUSE)}

		err := classifyListenError(":8000", cause)

		assert.ErrorIs(t, err, ErrPortInUse)
		assert.NotErrorIs(t, err, ErrUnexpectedStartup)
		assert.ErrorIs(t, err, syscall.EADDRINUSE)

		var se *StartupError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, ":8000", se.Addr)
	})

	t.Run("PermissionDenied", func(t *testing.T) {
		cause := &net.OpError{Op: "listen", Net: "tcp", Err: os.NewSyscallError("bind", syscall.EACCES)}

		err := classifyListenError(":80", cause)

		assert.ErrorIs(t, err, ErrUnexpectedStartup)
		assert.NotErrorIs(t, err, ErrPortInUse)
	})
}

func TestStartupError_Error(t *testing.T) {
	err := &StartupError{Kind: ErrPortInUse, Addr: ":8000", Err: errors.New("bind: address already in use")}
	assert.Equal(t, "port already in use on :8000: bind: address already in use", err.Error())

	err = &StartupError{Kind: ErrUnexpectedStartup, Err: errors.New("boom")}
	assert.Equal(t, "unexpected startup error: boom", err.Error())
}
