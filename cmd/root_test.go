package cmd

import (
	"errors"
	"net"
	"os"
	"syscall"
	"testing"

	"devserver/core/config"
	"devserver/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReportError(t *testing.T) {
	t.Run("PortInUse", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		err := &server.StartupError{
			Kind: server.ErrPortInUse,
			Addr: ":8000",
			Err:  &net.OpError{Op: "listen", Net: "tcp", Err: os.NewSyscallError("bind", syscall.EADDRINUSE)},
		}

		reportError(zap.New(core), err)

		entries := logs.All()
		require.Len(t, entries, 2)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Equal(t, "Port is already in use", entries[0].Message)
		assert.Equal(t, ":8000", entries[0].ContextMap()["addr"])
		assert.Contains(t, entries[1].Message, "--port")
	})

	t.Run("UnexpectedStartup", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)

		reportError(zap.New(core), &server.StartupError{Kind: server.ErrUnexpectedStartup, Err: errors.New("permission denied")})

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "Server failed to start", logs.All()[0].Message)
	})

	t.Run("Other", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)

		reportError(zap.New(core), errors.New(`unknown flag: --prot`))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "command failed", logs.All()[0].Message)
	})
}

func TestRootCmd_Flags(t *testing.T) {
	for name := range config.FlagKeys {
		assert.NotNil(t, RootCmd.Flags().Lookup(name), "flag %s", name)
	}

	port := RootCmd.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "8000", port.DefValue)
}
