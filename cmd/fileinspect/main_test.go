package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runMainEnv makes the test binary behave as the fileinspect command.
const runMainEnv = "FILEINSPECT_RUN_MAIN"

func TestMain(m *testing.M) {
	if os.Getenv(runMainEnv) == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestMissingArgumentIsUsageError(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
	assert.Contains(t, stdout+stderr, "Usage:")
}

func TestTooManyArguments(t *testing.T) {
	_, _, err := execute(t, "a", "b")
	require.Error(t, err)
}

func TestInspectsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "x.pdf"), []byte("%PDF-1.4\n"), 0o644))

	stdout, stderr, err := execute(t, root)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Detected Type: application/pdf (pdf)\n")
	assert.NotContains(t, stdout, "Usage:")
}

func TestMissingPathExitsCleanly(t *testing.T) {
	stdout, stderr, err := execute(t, filepath.Join(t.TempDir(), "nowhere"))
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "path not found")
}

func TestInvalidFlagValue(t *testing.T) {
	_, _, err := execute(t, "--workers", "-1", t.TempDir())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "workers"))
}

func TestZeroWorkersRejected(t *testing.T) {
	_, _, err := execute(t, "--workers", "0", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestMalformedExcludeRejected(t *testing.T) {
	_, _, err := execute(t, "--exclude", "[", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, filepath.ErrBadPattern)
}

func TestInterruptStopsHashInProgress(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("os.Interrupt cannot be sent to a process on windows")
	}
	root := t.TempDir()
	img := filepath.Join(root, "disk.img")
	f, err := os.Create(img)
	require.NoError(t, err)
	if err := f.Truncate(64 << 30); err != nil {
		f.Close()
		t.Skipf("sparse files unsupported: %v", err)
	}
	require.NoError(t, f.Close())

	cmd := exec.Command(os.Args[0], root)
	cmd.Env = append(os.Environ(), runMainEnv+"=1")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	require.NoError(t, cmd.Start())

	time.Sleep(500 * time.Millisecond)
	require.NoError(t, cmd.Process.Signal(os.Interrupt))

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case err := <-done:
		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr), "expected a failed exit, got %v", err)
		assert.NotZero(t, exitErr.ExitCode())
		if exitErr.ExitCode() == 1 {
			assert.Contains(t, stderr.String(), "context canceled")
		}
		assert.Empty(t, stdout.String())
	case <-time.After(10 * time.Second):
		_ = cmd.Process.Kill()
		<-done
		t.Fatalf("still running 10s after SIGINT; stderr: %s", stderr.String())
	}
}

func TestFlagDefaults(t *testing.T) {
	cmd := newRootCmd()
	workers, err := cmd.Flags().GetInt("workers")
	require.NoError(t, err)
	assert.Equal(t, 1, workers)
	level, err := cmd.Flags().GetString("log-level")
	require.NoError(t, err)
	assert.Equal(t, "info", level)
	progress, err := cmd.Flags().GetBool("progress")
	require.NoError(t, err)
	assert.False(t, progress)
}
