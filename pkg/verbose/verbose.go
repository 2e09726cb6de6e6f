// Package verbose provides debug logging for the release workflow.
//
// Logging is disabled by default and enabled with the --verbose flag.
// Messages are rendered through a tinted slog handler so debug output is
// readable next to the streamed output of external commands.
package verbose

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/lmittmann/tint"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  = newLogger(os.Stderr)
)

// newLogger builds the slog logger used for debug output.
//
// Parameters:
//   - w: The writer debug records are rendered to
//
// Returns:
//   - *slog.Logger: Logger with a tint handler at debug level
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
	}))
}

// Enable turns on verbose logging and allows debug messages to be printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		logger = newLogger(w)
	}
}

// getLogger returns the current logger with proper locking for internal use.
func getLogger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debugf logs a formatted debug message if verbose logging is enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Debugf(format string, args ...any) {
	if IsEnabled() {
		getLogger().Debug(fmt.Sprintf(format, args...))
	}
}

// Infof logs a formatted informational message if verbose logging is enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Infof(format string, args ...any) {
	if IsEnabled() {
		getLogger().Info(fmt.Sprintf(format, args...))
	}
}

// CommandExec logs command execution details if enabled.
//
// Parameters:
//   - cmd: The command string being executed
//   - dryRun: Whether the command is suppressed by dry-run mode
func CommandExec(cmd string, dryRun bool) {
	if IsEnabled() {
		getLogger().Debug("executing command", "cmd", cmd, "dry_run", dryRun)
	}
}

// CommandResult logs command execution results if enabled.
//
// Parameters:
//   - cmd: The command string that was executed
//   - err: The execution error, nil on success
func CommandResult(cmd string, err error) {
	if !IsEnabled() {
		return
	}
	if err != nil {
		getLogger().Debug("command failed", "cmd", cmd, "err", err)
		return
	}
	getLogger().Debug("command succeeded", "cmd", cmd)
}
