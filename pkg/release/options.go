package release

// Options holds the parsed, validated inputs for one release run.
// It is immutable once constructed.
//
// Fields:
//   - Bump: major/minor/patch or an explicit X.Y.Z version string
//   - DryRun: Suppresses every state-mutating command
//   - Message: Operator-supplied commit message, empty for the default
//   - DistTag: Registry distribution tag override, empty for the configured default
//   - NoColor: Disables colored output
//   - Dir: Working directory of the release (the package checkout)
type Options struct {
	// Bump selects the strategy for deriving the new version.
	Bump string

	// DryRun displays state-mutating commands instead of executing them.
	// Read-only diagnostics still run for real.
	DryRun bool

	// Message is the commit message. Empty means the configured template
	// is rendered with the new version.
	Message string

	// DistTag overrides the registry distribution tag for npm publish.
	DistTag string

	// NoColor disables colored output.
	NoColor bool

	// Dir is the package working directory.
	Dir string
}
