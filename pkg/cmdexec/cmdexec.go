// Package cmdexec provides shell command execution for the release workflow.
// Commands run through the user's shell so aliases and shell configuration are
// available; their output is streamed live to the operator and buffered for
// programmatic inspection by the caller.
package cmdexec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/ajxudir/npub/pkg/constants"
	"github.com/ajxudir/npub/pkg/errors"
	"github.com/ajxudir/npub/pkg/verbose"
)

// Result holds the buffered output of an executed command.
//
// Fields:
//   - Stdout: Full standard output text of the command
//   - Stderr: Full standard error text of the command
type Result struct {
	// Stdout is the buffered standard output of the command.
	Stdout string

	// Stderr is the buffered standard error of the command.
	Stderr string
}

// RunFunc is the function signature for command execution.
//
// Parameters:
//   - commandLine: Shell command line to execute
//   - dryRun: If true, the command is displayed but never executed
//
// Returns:
//   - Result: Buffered stdout/stderr of the command (empty in dry-run)
//   - error: A CommandExecutionError when the process cannot start or exits non-zero
type RunFunc func(commandLine string, dryRun bool) (Result, error)

// Run is the default command execution function.
//
// This variable holds the implementation used for command execution throughout
// the application. It can be replaced with a mock implementation for testing.
var Run RunFunc = runCommand

var (
	mu        sync.RWMutex
	outWriter io.Writer = os.Stdout
	errWriter io.Writer = os.Stderr
)

// SetWriters swaps the stream targets and returns a restore function.
//
// Commands stream their stdout/stderr to these writers; tests use this seam
// to capture output. A nil writer leaves the corresponding target unchanged.
//
// Parameters:
//   - out: Writer for command stdout and dry-run annotations
//   - err: Writer for command stderr
//
// Returns:
//   - func(): Function that restores the previous writers when called
func SetWriters(out, err io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()
	prevOut, prevErr := outWriter, errWriter
	if out != nil {
		outWriter = out
	}
	if err != nil {
		errWriter = err
	}
	return func() {
		mu.Lock()
		defer mu.Unlock()
		outWriter = prevOut
		errWriter = prevErr
	}
}

// writers returns the current stream targets with proper locking.
func writers() (io.Writer, io.Writer) {
	mu.RLock()
	defer mu.RUnlock()
	return outWriter, errWriter
}

// runCommand executes a single shell command line.
//
// It performs the following operations:
//   - In dry-run mode, prints the command prefixed as a comment and returns
//     an empty successful result without executing anything
//   - Otherwise runs the command through the user's shell in the current
//     working directory with the inherited environment
//   - Streams the child's stdout and stderr live to the process streams
//     while buffering both for the caller
//
// Spawn failures and non-zero exits are collapsed into a single
// CommandExecutionError; no structured detail is preserved.
//
// Parameters:
//   - commandLine: Shell command line to execute
//   - dryRun: If true, the command is displayed but never executed
//
// Returns:
//   - Result: Buffered stdout/stderr of the command
//   - error: CommandExecutionError on spawn failure or non-zero exit, nil on success
func runCommand(commandLine string, dryRun bool) (Result, error) {
	out, errOut := writers()

	if strings.TrimSpace(commandLine) == "" {
		return Result{}, errors.NewCommandExecutionError(commandLine, fmt.Errorf("empty command"))
	}

	verbose.CommandExec(commandLine, dryRun)

	if dryRun {
		_, _ = fmt.Fprintf(out, "%s%s\n", constants.DryRunPrefix, commandLine)
		return Result{}, nil
	}

	shell, shellArgs := getShell()
	cmd := exec.Command(shell, append(shellArgs, commandLine)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = io.MultiWriter(out, &stdout)
	cmd.Stderr = io.MultiWriter(errOut, &stderr)

	err := cmd.Run()
	verbose.CommandResult(commandLine, err)
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		return result, errors.NewCommandExecutionError(commandLine, err)
	}

	return result, nil
}
