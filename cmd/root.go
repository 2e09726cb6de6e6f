// Package cmd implements the command-line interface for npub.
// It exposes a single linear release workflow: validate, bump, rewrite,
// commit, tag, push, publish.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/npub/pkg/errors"
	"github.com/ajxudir/npub/pkg/release"
	"github.com/ajxudir/npub/pkg/verbose"
	"github.com/ajxudir/npub/pkg/versioning"
)

var exitFunc = os.Exit

// CLI flags
var (
	noopFlag    bool
	messageFlag string
	tagFlag     string
	noColorFlag bool
	verboseFlag bool
	versionFlag bool
)

// Testable function variables
var runWorkflowFunc = func(opts release.Options) error {
	return release.New(opts).Run()
}
var getwdFunc = os.Getwd

var rootCmd = &cobra.Command{
	Use:   "npub <major|minor|patch|version>",
	Short: "Bump, tag, and publish the npm package in the current directory",
	Long: `npub runs one linear release workflow for the package in the current directory:
it checks the working copy is clean, verifies the manifest version matches the
published version, computes the new version, rewrites package.json in place,
then commits, tags, pushes, and publishes. The first failure aborts the run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	RunE: runRelease,
}

func init() {
	// Flag parse failures are usage errors like any other: print usage and
	// map them to the usage exit code.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return errors.NewInvalidArgumentError("%s", err)
	})

	rootCmd.Flags().BoolVarP(&noopFlag, "noop", "n", false, "Dry-run: print state-mutating commands as comments instead of executing them")
	rootCmd.Flags().StringVarP(&messageFlag, "message", "m", "", "Custom commit message (default: rendered from the configured template)")
	rootCmd.Flags().StringVarP(&tagFlag, "tag", "t", "", "Registry distribution tag (default: latest)")
	rootCmd.Flags().BoolVarP(&noColorFlag, "noColor", "C", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version and package information")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
}

// runRelease validates the CLI arguments and runs the release workflow.
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Positional arguments; exactly one bump specifier is expected
//
// Returns:
//   - error: InvalidArgumentError for bad usage, or the first workflow failure
func runRelease(cmd *cobra.Command, args []string) error {
	if versionFlag {
		printVersionOutput(cmd.OutOrStdout())
		return nil
	}

	if len(args) != 1 {
		_ = cmd.Usage()
		return errors.NewInvalidArgumentError("expected exactly one argument: major, minor, patch, or an explicit X.Y.Z version")
	}

	bump := args[0]
	if !versioning.IsBumpKeyword(bump) && !versioning.IsExplicitVersion(bump) {
		_ = cmd.Usage()
		return errors.NewInvalidArgumentError("invalid version or bump keyword: %s", bump)
	}

	dir, err := getwdFunc()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	return runWorkflowFunc(release.Options{
		Bump:    bump,
		DryRun:  noopFlag,
		Message: messageFlag,
		DistTag: tagFlag,
		NoColor: noColorFlag,
		Dir:     dir,
	})
}

// Execute runs the root command and exits with the appropriate code:
//   - 0: Success
//   - 1: Runtime failure (any aborted workflow step)
//   - 2: Invalid command-line usage
//
// All failures are surfaced as a single ERROR line on standard error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		verbose.Debugf("exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}
