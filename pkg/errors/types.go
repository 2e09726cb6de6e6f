package errors

import (
	"errors"
	"fmt"
)

// ManifestNotFoundError indicates that no package.json exists in the working directory.
//
// Fields:
//   - Path: The manifest path that was checked
//   - Err: Underlying filesystem error, may be nil
type ManifestNotFoundError struct {
	// Path is the manifest location that could not be read.
	Path string

	// Err is the underlying error from the filesystem.
	Err error
}

// Error implements the error interface.
//
// Returns:
//   - string: A message naming the missing manifest path
func (e *ManifestNotFoundError) Error() string {
	return fmt.Sprintf("manifest not found: %s", e.Path)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ManifestNotFoundError) Unwrap() error {
	return e.Err
}

// NewManifestNotFoundError creates a ManifestNotFoundError for the given path.
//
// Parameters:
//   - path: The manifest path that was checked
//   - err: Underlying filesystem error, may be nil
//
// Returns:
//   - *ManifestNotFoundError: New manifest-not-found error
func NewManifestNotFoundError(path string, err error) *ManifestNotFoundError {
	return &ManifestNotFoundError{Path: path, Err: err}
}

// IsManifestNotFoundError checks if err is a ManifestNotFoundError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ManifestNotFoundError: The error if err is one, nil otherwise
//   - bool: true if err is a ManifestNotFoundError
func IsManifestNotFoundError(err error) (*ManifestNotFoundError, bool) {
	var e *ManifestNotFoundError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ManifestInvalidError indicates that package.json could not be parsed
// as a key-value structure.
//
// Fields:
//   - Path: The manifest path that was parsed
//   - Err: The underlying parse error
type ManifestInvalidError struct {
	// Path is the manifest location that failed to parse.
	Path string

	// Err is the underlying parse error.
	Err error
}

// Error implements the error interface.
func (e *ManifestInvalidError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid manifest %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid manifest %s", e.Path)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ManifestInvalidError) Unwrap() error {
	return e.Err
}

// NewManifestInvalidError creates a ManifestInvalidError for the given path.
//
// Parameters:
//   - path: The manifest path that failed to parse
//   - err: The underlying parse error
//
// Returns:
//   - *ManifestInvalidError: New invalid-manifest error
func NewManifestInvalidError(path string, err error) *ManifestInvalidError {
	return &ManifestInvalidError{Path: path, Err: err}
}

// IsManifestInvalidError checks if err is a ManifestInvalidError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ManifestInvalidError: The error if err is one, nil otherwise
//   - bool: true if err is a ManifestInvalidError
func IsManifestInvalidError(err error) (*ManifestInvalidError, bool) {
	var e *ManifestInvalidError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WorkingCopyNotCleanError indicates the version-control working copy has
// uncommitted modifications and the release cannot proceed.
//
// Fields:
//   - Output: The status output listing the modifications
type WorkingCopyNotCleanError struct {
	// Output is the porcelain status output reported by the version-control tool.
	Output string
}

// Error implements the error interface.
func (e *WorkingCopyNotCleanError) Error() string {
	return "working copy has uncommitted changes, commit or stash them first"
}

// NewWorkingCopyNotCleanError creates a WorkingCopyNotCleanError with the status output.
//
// Parameters:
//   - output: The porcelain status output listing uncommitted changes
//
// Returns:
//   - *WorkingCopyNotCleanError: New working-copy-not-clean error
func NewWorkingCopyNotCleanError(output string) *WorkingCopyNotCleanError {
	return &WorkingCopyNotCleanError{Output: output}
}

// IsWorkingCopyNotCleanError checks if err is a WorkingCopyNotCleanError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *WorkingCopyNotCleanError: The error if err is one, nil otherwise
//   - bool: true if err is a WorkingCopyNotCleanError
func IsWorkingCopyNotCleanError(err error) (*WorkingCopyNotCleanError, bool) {
	var e *WorkingCopyNotCleanError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CommandExecutionError indicates an external command failed.
//
// Spawn failures and non-zero exits are deliberately collapsed into this
// single type: callers must not assume structured diagnostic detail.
//
// Fields:
//   - Command: The command line that was executed
//   - Err: The underlying execution error, may be nil
type CommandExecutionError struct {
	// Command is the shell command line that failed.
	Command string

	// Err is the underlying error from the process layer.
	Err error
}

// Error implements the error interface.
func (e *CommandExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command failed: %s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("command failed: %s", e.Command)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *CommandExecutionError) Unwrap() error {
	return e.Err
}

// NewCommandExecutionError creates a CommandExecutionError for the given command.
//
// Parameters:
//   - command: The shell command line that failed
//   - err: The underlying execution error, may be nil
//
// Returns:
//   - *CommandExecutionError: New command execution error
func NewCommandExecutionError(command string, err error) *CommandExecutionError {
	return &CommandExecutionError{Command: command, Err: err}
}

// IsCommandExecutionError checks if err is a CommandExecutionError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *CommandExecutionError: The error if err is one, nil otherwise
//   - bool: true if err is a CommandExecutionError
func IsCommandExecutionError(err error) (*CommandExecutionError, bool) {
	var e *CommandExecutionError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// VersionMismatchError indicates the manifest version differs semantically
// from the version published in the registry.
//
// Fields:
//   - Manifest: The version declared in package.json
//   - Published: The version the registry reports as published
type VersionMismatchError struct {
	// Manifest is the version declared in package.json.
	Manifest string

	// Published is the latest version reported by the registry.
	Published string
}

// Error implements the error interface.
func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("manifest version %s does not match published version %s", e.Manifest, e.Published)
}

// NewVersionMismatchError creates a VersionMismatchError with both versions.
//
// Parameters:
//   - manifest: The version declared in package.json
//   - published: The version reported by the registry
//
// Returns:
//   - *VersionMismatchError: New version mismatch error
func NewVersionMismatchError(manifest, published string) *VersionMismatchError {
	return &VersionMismatchError{Manifest: manifest, Published: published}
}

// IsVersionMismatchError checks if err is a VersionMismatchError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *VersionMismatchError: The error if err is one, nil otherwise
//   - bool: true if err is a VersionMismatchError
func IsVersionMismatchError(err error) (*VersionMismatchError, bool) {
	var e *VersionMismatchError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ManifestRewriteError indicates the version substitution matched nothing
// in the manifest text. A substitution that silently matches zero
// occurrences is a detectable failure, never a no-op success.
//
// Fields:
//   - OldVersion: The version string that was searched for
type ManifestRewriteError struct {
	// OldVersion is the version string that could not be found in the manifest.
	OldVersion string
}

// Error implements the error interface.
func (e *ManifestRewriteError) Error() string {
	return fmt.Sprintf("could not find version %q in manifest, nothing was replaced", e.OldVersion)
}

// NewManifestRewriteError creates a ManifestRewriteError for the given version.
//
// Parameters:
//   - oldVersion: The version string that was searched for
//
// Returns:
//   - *ManifestRewriteError: New manifest rewrite error
func NewManifestRewriteError(oldVersion string) *ManifestRewriteError {
	return &ManifestRewriteError{OldVersion: oldVersion}
}

// IsManifestRewriteError checks if err is a ManifestRewriteError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ManifestRewriteError: The error if err is one, nil otherwise
//   - bool: true if err is a ManifestRewriteError
func IsManifestRewriteError(err error) (*ManifestRewriteError, bool) {
	var e *ManifestRewriteError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// InvalidArgumentError indicates invalid command-line usage.
//
// Fields:
//   - Message: Description of the usage problem
type InvalidArgumentError struct {
	// Message describes what was wrong with the arguments.
	Message string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// NewInvalidArgumentError creates an InvalidArgumentError with a formatted message.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *InvalidArgumentError: New invalid argument error
func NewInvalidArgumentError(format string, args ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

// IsInvalidArgumentError checks if err is an InvalidArgumentError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *InvalidArgumentError: The error if err is one, nil otherwise
//   - bool: true if err is an InvalidArgumentError
func IsInvalidArgumentError(err error) (*InvalidArgumentError, bool) {
	var e *InvalidArgumentError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
