package server_test

import (
	"testing"

	"devserver/core/server"

	"github.com/stretchr/testify/assert"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state server.State
		want  string
	}{
		{server.StateStarting, "starting"},
		{server.StateListening, "listening"},
		{server.StateServing, "serving"},
		{server.StateFailed, "failed"},
		{server.StateStopped, "stopped"},
		{server.State(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}
