package errors

// Exit codes for scripting integration.
// These codes allow scripts to distinguish between different failure modes.
const (
	// ExitSuccess indicates the release completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure aborted the release.
	// This covers every workflow error: dirty working copy, version
	// mismatch, failed external commands, manifest problems.
	ExitFailure = 1

	// ExitUsageError indicates invalid command-line usage.
	ExitUsageError = 2
)

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess.
// If err is an InvalidArgumentError, returns ExitUsageError.
// Otherwise returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
//
// Example:
//
//	code := errors.GetExitCode(err)
//	os.Exit(code)
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if _, ok := IsInvalidArgumentError(err); ok {
		return ExitUsageError
	}

	return ExitFailure
}
