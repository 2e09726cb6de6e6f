// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for status values.
package constants

// Step status constants represent the state of a workflow step after execution.
const (
	// StatusOK indicates the step completed successfully.
	StatusOK = "OK"

	// StatusPlanned indicates the step was displayed but not executed (dry-run mode).
	StatusPlanned = "Planned"

	// StatusSkipped indicates the step did not apply (e.g. no pre-publish script).
	StatusSkipped = "Skipped"

	// StatusFailed indicates the step failed and aborted the workflow.
	StatusFailed = "Failed"
)

// Comment prefix for commands displayed but not executed in dry-run mode.
const (
	// DryRunPrefix is prepended to command lines that would run outside dry-run.
	DryRunPrefix = "# "
)

// Icon constants for status display.
// These provide visual indicators for workflow states in CLI output.
const (
	// IconCheckmark indicates a passed step (checkmark).
	IconCheckmark = "✓"

	// IconCross indicates a failed step (cross).
	IconCross = "✗"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"
)
