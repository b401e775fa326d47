package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	port := getFreePort(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, Opts{
			Config: "testdata/config.yml",
			Listen: fmt.Sprintf("127.0.0.1:%d", port),
		})
	}()

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	waitForServerStart(t, baseURL+"/ping")

	resp, err := http.Get(baseURL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"status":"ok"`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after context cancellation")
	}
}

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := run(ctx, Opts{Config: "testdata/no-such-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_MissingDataset(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := run(ctx, Opts{Config: "testdata/config-bad-dataset.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load dataset")
}

func TestSetupLog(t *testing.T) {
	// exercises both log setups, no assertions beyond not panicking
	setupLog(false)
	setupLog(true)
	setupLog(true, "secret")
}

// getFreePort reserves a port by binding and releasing it
func getFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}

// waitForServerStart polls the ping endpoint until the server responds
func waitForServerStart(t *testing.T, url string) {
	t.Helper()
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:gosec // test url built locally
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond, "server did not start")
}
