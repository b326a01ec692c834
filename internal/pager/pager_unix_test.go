//go:build unix

package pager

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startPager runs script as a pager whose stdout is a pipe and waits until
// the script prints "ready". The returned reader yields the rest of its output.
func startPager(t *testing.T, ctx context.Context, script string) (<-chan error, *os.File, *bufio.Reader) {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { r.Close(); w.Close() })

	c := &Command{Argv: []string{sh, "-c", script}, Stdout: w, Stderr: io.Discard}
	done := make(chan error, 1)
	go func() { done <- c.Page(ctx, "text") }()

	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "ready\n", line)
	return done, w, reader
}

func TestCommand_InterruptLeavesPagerRunning(t *testing.T) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	done, w, out := startPager(t, ctx, `trap "" INT; echo ready; sleep 1; echo pager-finished-normally`)
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	require.NoError(t, <-done)
	w.Close()
	rest, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, "pager-finished-normally\n", string(rest))
}

func TestCommand_CancelTerminatesPager(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done, w, out := startPager(t, ctx, `trap "echo terminated; exit 0" TERM; echo ready; sleep 5 >/dev/null 2>&1 & wait`)
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	w.Close()
	rest, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, "terminated\n", string(rest))
}
