package cmdexec

import (
	"os"
	"strings"
)

// getShell returns the user's shell and args to run a command.
//
// This function checks the SHELL environment variable first (Unix systems),
// and falls back to a POSIX sh if not set. Using the user's shell ensures
// that aliases and shell configurations are available during command
// execution.
//
// Returns:
//   - shell: The path to the shell executable
//   - args: The shell arguments needed to execute a command string
func getShell() (shell string, args []string) {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh, []string{"-c"}
	}

	return "sh", []string{"-c"}
}

// EscapeDoubleQuoted escapes a string for safe interpolation inside a
// double-quoted shell argument.
//
// Backslash, double quote, dollar sign, and backtick trigger quote
// termination or expansion inside double quotes and are backslash-escaped.
// The commit step builds `git commit -m "<message>" package.json`, so any
// operator-supplied message has to pass through here first.
//
// Parameters:
//   - s: String to escape
//
// Returns:
//   - string: Escaped string safe between double quotes
func EscapeDoubleQuoted(s string) string {
	var escaped strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '"', '$', '`':
			escaped.WriteRune('\\')
		}
		escaped.WriteRune(r)
	}
	return escaped.String()
}
