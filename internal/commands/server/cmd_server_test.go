package server

import (
	"github.com/stretchr/testify/require"
	"net"
	"testing"
)

func Test_StartupShutdown(t *testing.T) {
	cmd := NewCommand()
	cmd.Listen = []string{"127.0.0.1:0", "127.0.0.1:0"}

	require.NoError(t, cmd.Startup())
	require.Len(t, cmd.servers, 2)
	require.NoError(t, cmd.Shutdown())
}

func Test_StartupFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cmd := NewCommand()
	cmd.Listen = []string{"127.0.0.1:0", ln.Addr().String(), "not an address"}

	err = cmd.Startup()
	require.Error(t, err)
}
