// Package errors provides unified error types and exit-code mapping for npub.
//
// This package consolidates all error handling into a single location:
//   - ManifestNotFoundError: package.json is absent from the working directory
//   - ManifestInvalidError: package.json cannot be parsed as a key-value structure
//   - WorkingCopyNotCleanError: git reports uncommitted modifications
//   - CommandExecutionError: an external command failed to start or exited non-zero
//   - VersionMismatchError: manifest version differs from the published version
//   - ManifestRewriteError: the version substitution matched nothing
//   - InvalidArgumentError: bad CLI usage
//
// All errors are terminal for a release run: nothing is retried, and each is
// surfaced to the operator as a single line on standard error.
//
// Error Checking:
//
// Use the Is* functions to check error types:
//
//	if _, ok := errors.IsVersionMismatchError(err); ok {
//	    // manifest and registry disagree
//	}
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): The release completed successfully
//   - ExitFailure (1): Any runtime failure aborted the release
//   - ExitUsageError (2): Invalid command-line usage
package errors
