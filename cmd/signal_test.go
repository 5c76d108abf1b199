//go:build unix

package cmd

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"os"
	"syscall"
	"testing"
	"time"

	"devserver/core/browser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunServe_Interrupt(t *testing.T) {
	root := newSiteRoot(t)

	opened := make(chan string, 1)
	orig := newOpener
	newOpener = func() browser.Opener {
		return browser.OpenerFunc(func(u string) error {
			opened <- u
			return nil
		})
	}
	t.Cleanup(func() { newOpener = orig })

	isolateRootCmd(t)
	RootCmd.SetArgs([]string{
		"--root", root, "--host", "127.0.0.1", "--port", "0",
		"--open=true", "--log-level", "warn", "--log-format", "console",
	})

	done := make(chan error, 1)
	go func() {
		done <- RootCmd.ExecuteContext(context.Background())
	}()

	var rawURL string
	select {
	case rawURL = <-opened:
	case err := <-done:
		t.Fatalf("command returned before serving: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	target := "http://127.0.0.1:" + u.Port() + "/index.html"

	client := &http.Client{Timeout: 5 * time.Second}
	require.Eventually(t, func() bool {
		resp, err := client.Get(target)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK && resp.Header.Get("Access-Control-Allow-Origin") == "*"
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop on interrupt")
	}

	// The port is free again after the interrupt.
	ln, err := net.Listen("tcp", "127.0.0.1:"+u.Port())
	require.NoError(t, err)
	assert.NoError(t, ln.Close())
}
