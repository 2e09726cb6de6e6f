package cmdexec

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/npub/pkg/errors"
)

// TestRunCapturesStdout tests the behavior of Run with a succeeding command.
//
// It verifies:
//   - Stdout is buffered in the result
//   - Stdout is also streamed to the configured writer
func TestRunCapturesStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping shell test on Windows")
	}

	var out, errOut bytes.Buffer
	restore := SetWriters(&out, &errOut)
	defer restore()

	res, err := Run("echo hello", false)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", res.Stdout)
	assert.Empty(t, res.Stderr)
	assert.Contains(t, out.String(), "hello")
}

// TestRunCapturesStderr tests the behavior of Run with stderr output.
//
// It verifies:
//   - Stderr is buffered separately from stdout
func TestRunCapturesStderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping shell test on Windows")
	}

	var out, errOut bytes.Buffer
	restore := SetWriters(&out, &errOut)
	defer restore()

	res, err := Run("echo oops 1>&2", false)
	require.NoError(t, err)
	assert.Empty(t, res.Stdout)
	assert.Equal(t, "oops\n", res.Stderr)
	assert.Contains(t, errOut.String(), "oops")
}

// TestRunFailure tests the behavior of Run with failing commands.
//
// It verifies:
//   - Non-zero exits and unstartable commands both collapse into a
//     CommandExecutionError
func TestRunFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping shell test on Windows")
	}

	var out, errOut bytes.Buffer
	restore := SetWriters(&out, &errOut)
	defer restore()

	t.Run("non-zero exit", func(t *testing.T) {
		_, err := Run("exit 3", false)
		require.Error(t, err)
		cmdErr, ok := errors.IsCommandExecutionError(err)
		require.True(t, ok)
		assert.Equal(t, "exit 3", cmdErr.Command)
	})

	t.Run("command not found", func(t *testing.T) {
		_, err := Run("definitely-not-a-command-12345", false)
		require.Error(t, err)
		_, ok := errors.IsCommandExecutionError(err)
		assert.True(t, ok)
	})

	t.Run("empty command", func(t *testing.T) {
		_, err := Run("   ", false)
		require.Error(t, err)
		_, ok := errors.IsCommandExecutionError(err)
		assert.True(t, ok)
	})
}

// TestRunDryRun tests the behavior of Run in dry-run mode.
//
// It verifies:
//   - The command line is printed prefixed as a comment
//   - Nothing is executed
//   - The result is empty and successful
func TestRunDryRun(t *testing.T) {
	var out, errOut bytes.Buffer
	restore := SetWriters(&out, &errOut)
	defer restore()

	marker := filepath.Join(t.TempDir(), "marker")
	res, err := Run("touch "+marker, true)
	require.NoError(t, err)
	assert.Empty(t, res.Stdout)
	assert.Empty(t, res.Stderr)
	assert.Equal(t, "# touch "+marker+"\n", out.String())

	_, statErr := os.Stat(marker)
	assert.True(t, os.IsNotExist(statErr), "dry-run must not execute the command")
}

// TestGetShell tests the behavior of getShell.
//
// It verifies:
//   - SHELL environment variable is used when set
//   - Falls back to sh when SHELL is not set
func TestGetShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping Unix-specific test on Windows")
	}

	t.Run("uses SHELL env var when set", func(t *testing.T) {
		t.Setenv("SHELL", "/bin/bash")
		shell, args := getShell()
		assert.Equal(t, "/bin/bash", shell)
		assert.Equal(t, []string{"-c"}, args)
	})

	t.Run("falls back to sh when SHELL not set", func(t *testing.T) {
		t.Setenv("SHELL", "")
		shell, args := getShell()
		assert.Equal(t, "sh", shell)
		assert.Equal(t, []string{"-c"}, args)
	})
}

// TestEscapeDoubleQuoted tests the behavior of EscapeDoubleQuoted.
//
// It verifies:
//   - Quote and expansion-trigger characters are escaped
//   - Plain text passes through unchanged
func TestEscapeDoubleQuoted(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "release version 1.0.1", "release version 1.0.1"},
		{"double quotes", `say "hi"`, `say \"hi\"`},
		{"dollar sign", "cost $5", `cost \$5`},
		{"backtick", "run `date`", "run \\`date\\`"},
		{"backslash", `a\b`, `a\\b`},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeDoubleQuoted(tt.input))
		})
	}
}
