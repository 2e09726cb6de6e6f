// Package release implements the release orchestration workflow.
//
// The workflow is a strictly ordered list of fallible steps executed on one
// control-flow thread: validate the working copy and published state, compute
// the new version, patch package.json textually, then commit, tag, push, and
// publish. The first failing step aborts the run; no compensating rollback is
// attempted. External commands have no timeout, so a hung command hangs the
// workflow until the operator intervenes (documented limitation).
package release

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/ajxudir/npub/pkg/cmdexec"
	"github.com/ajxudir/npub/pkg/config"
	"github.com/ajxudir/npub/pkg/constants"
	"github.com/ajxudir/npub/pkg/display"
	"github.com/ajxudir/npub/pkg/errors"
	"github.com/ajxudir/npub/pkg/manifest"
	"github.com/ajxudir/npub/pkg/verbose"
	"github.com/ajxudir/npub/pkg/versioning"
	"github.com/ajxudir/npub/pkg/warnings"
)

// Pre-publish script names recognized in the manifest, in preference order.
var prePublishScripts = []string{"prepublish", "prepublishOnly"}

// StepResult records the outcome of one workflow step.
//
// Fields:
//   - Name: Step name
//   - Status: Final status (see pkg/constants)
//   - Detail: Optional short detail for the summary
type StepResult struct {
	// Name is the step name.
	Name string

	// Status is the step's final status.
	Status string

	// Detail is an optional annotation, e.g. the resolved version.
	Detail string
}

// stepFunc executes one workflow step.
//
// An empty status means StatusOK. A non-nil error aborts the workflow.
type stepFunc func() (status string, detail string, err error)

// Workflow sequences all release steps for one run.
//
// Fields: This type has no exported fields.
type Workflow struct {
	opts Options
	out  io.Writer

	cfg     *config.Config
	printer *display.Printer
	runID   string
	distTag string

	manifest   *manifest.Manifest
	published  string
	newVersion string

	results []StepResult
}

// New creates a Workflow for the given options.
//
// Parameters:
//   - opts: Parsed and validated release options
//
// Returns:
//   - *Workflow: Workflow ready to Run
func New(opts Options) *Workflow {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	return &Workflow{opts: opts, out: os.Stdout}
}

// SetOutput redirects workflow progress output, primarily for tests.
//
// Parameters:
//   - w: Destination writer; nil leaves the output unchanged
func (w *Workflow) SetOutput(out io.Writer) {
	if out != nil {
		w.out = out
	}
}

// Results returns the per-step outcomes recorded so far.
//
// Returns:
//   - []StepResult: Step results in execution order
func (w *Workflow) Results() []StepResult {
	return w.results
}

// NewVersion returns the resolved version, empty before resolution.
func (w *Workflow) NewVersion() string {
	return w.newVersion
}

// Run executes the release workflow from manifest load through publish.
//
// Steps run strictly in order; each completes (including waiting for its
// external process) before the next begins. The first failure makes the run
// terminal and is returned to the caller. Read-only diagnostics (git status,
// npm view) always execute for real, even in dry-run mode; only
// state-mutating steps honor dry-run.
//
// Returns:
//   - error: The first step failure, nil when every step succeeded
func (w *Workflow) Run() error {
	w.runID = uuid.NewString()
	verbose.Debugf("release run %s started (bump=%s dry_run=%v dir=%s)", w.runID, w.opts.Bump, w.opts.DryRun, w.opts.Dir)

	cfg, err := config.Load(w.opts.Dir)
	if err != nil {
		return err
	}
	w.cfg = cfg
	w.distTag = w.opts.DistTag
	if w.distTag == "" {
		w.distTag = cfg.DistTag
	}
	w.printer = display.NewPrinter(w.out, w.opts.NoColor || cfg.NoColor)

	steps := []struct {
		name string
		fn   stepFunc
	}{
		{"load manifest", w.loadManifest},
		{"check working copy", w.checkWorkingCopy},
		{"run pre-publish script", w.runPrePublishScript},
		{"query published version", w.queryPublishedVersion},
		{"resolve new version", w.resolveNewVersion},
		{"rewrite manifest", w.rewriteManifest},
		{"commit", w.commit},
		{"tag", w.tag},
		{"push", w.push},
		{"publish package", w.publishPackage},
	}

	defer func() {
		rows := make([]display.SummaryRow, 0, len(w.results))
		for _, r := range w.results {
			rows = append(rows, display.SummaryRow{Step: r.Name, Status: r.Status, Detail: r.Detail})
		}
		w.printer.Summary(rows)
	}()

	for _, s := range steps {
		w.printer.Step(s.name)
		verbose.Infof("step %q started", s.name)
		status, detail, err := s.fn()
		if err != nil {
			w.record(s.name, constants.StatusFailed, err.Error())
			w.printer.Failf("%s", err)
			verbose.Debugf("release run %s aborted at %q: %v", w.runID, s.name, err)
			return err
		}
		if status == "" {
			status = constants.StatusOK
		}
		w.record(s.name, status, detail)
	}

	if w.opts.DryRun {
		w.printer.Successf("dry-run complete, %s would become version %s", w.manifest.Name, w.newVersion)
	} else {
		w.printer.Successf("released %s version %s", w.manifest.Name, w.newVersion)
	}
	verbose.Debugf("release run %s finished", w.runID)
	return nil
}

// record appends a step outcome.
func (w *Workflow) record(name, status, detail string) {
	w.results = append(w.results, StepResult{Name: name, Status: status, Detail: detail})
}

// mutatingStatus returns the summary status for a state-mutating step.
func (w *Workflow) mutatingStatus() string {
	if w.opts.DryRun {
		return constants.StatusPlanned
	}
	return constants.StatusOK
}

// loadManifest reads package.json from the working directory.
//
// A manifest without a name or version cannot drive the registry query or
// the version resolution, so both fields are required here.
func (w *Workflow) loadManifest() (string, string, error) {
	m, err := manifest.Load(w.opts.Dir)
	if err != nil {
		return "", "", err
	}
	if strings.TrimSpace(m.Name) == "" {
		return "", "", errors.NewManifestInvalidError(m.Path, fmt.Errorf("missing name field"))
	}
	if strings.TrimSpace(m.Version) == "" {
		return "", "", errors.NewManifestInvalidError(m.Path, fmt.Errorf("missing version field"))
	}
	w.manifest = m
	return "", fmt.Sprintf("%s@%s", m.Name, m.Version), nil
}

// checkWorkingCopy verifies the version-control checkout has no uncommitted
// changes.
//
// This is a read-only diagnostic and always runs for real, never in
// dry-run. Classification follows the two output streams: both empty means
// clean; stdout only means uncommitted modifications; any stderr output or
// an execution failure is an error.
func (w *Workflow) checkWorkingCopy() (string, string, error) {
	const statusCmd = "git status --porcelain"
	res, err := cmdexec.Run(statusCmd, false)
	if err != nil {
		return "", "", err
	}
	if strings.TrimSpace(res.Stderr) != "" {
		return "", "", errors.NewCommandExecutionError(statusCmd, fmt.Errorf("%s", strings.TrimSpace(res.Stderr)))
	}
	if strings.TrimSpace(res.Stdout) != "" {
		return "", "", errors.NewWorkingCopyNotCleanError(res.Stdout)
	}
	return "", "clean", nil
}

// runPrePublishScript runs the manifest's pre-publish hook when declared,
// preferring prepublish over prepublishOnly. Honors dry-run.
func (w *Workflow) runPrePublishScript() (string, string, error) {
	for _, name := range prePublishScripts {
		if _, ok := w.manifest.Script(name); !ok {
			continue
		}
		if name == "prepublish" {
			warnings.Warnf("%s  The prepublish script is deprecated by npm, rename it to prepublishOnly\n", constants.IconWarn)
		}
		if _, err := cmdexec.Run("npm run "+name, w.opts.DryRun); err != nil {
			return "", "", err
		}
		return w.mutatingStatus(), name, nil
	}
	verbose.Debugf("no pre-publish script declared, skipping")
	return constants.StatusSkipped, "no script declared", nil
}

// queryPublishedVersion asks the registry for the package's latest published
// version. This is a read-only diagnostic and always runs for real.
func (w *Workflow) queryPublishedVersion() (string, string, error) {
	res, err := cmdexec.Run(fmt.Sprintf("npm view %s version", w.manifest.Name), false)
	if err != nil {
		return "", "", err
	}
	w.published = strings.TrimRight(res.Stdout, "\n")
	return "", w.published, nil
}

// resolveNewVersion computes the new version from the manifest version, the
// published version, and the bump specifier.
func (w *Workflow) resolveNewVersion() (string, string, error) {
	next, err := versioning.Resolve(w.manifest.Version, w.published, w.opts.Bump)
	if err != nil {
		return "", "", err
	}
	w.newVersion = next
	return "", fmt.Sprintf("%s -> %s", w.manifest.Version, next), nil
}

// rewriteManifest substitutes the new version into the manifest text and
// writes it back, unless dry-run. The substitution must change the text or
// the step fails; the file is never reformatted.
func (w *Workflow) rewriteManifest() (string, string, error) {
	rewritten, err := manifest.RewriteVersion(w.manifest.Raw, w.manifest.Version, w.newVersion)
	if err != nil {
		return "", "", err
	}
	if w.opts.DryRun {
		verbose.Debugf("dry-run: not writing %s", w.manifest.Path)
		return constants.StatusPlanned, w.newVersion, nil
	}
	if err := w.manifest.Write(rewritten); err != nil {
		return "", "", err
	}
	return constants.StatusOK, w.newVersion, nil
}

// commit commits the rewritten manifest, scoped to the manifest file only.
// The message is the operator's or the rendered default template; embedded
// quote and expansion-trigger characters are escaped for safe interpolation.
func (w *Workflow) commit() (string, string, error) {
	msg := w.opts.Message
	if msg == "" {
		rendered, err := w.cfg.RenderMessage(w.newVersion)
		if err != nil {
			return "", "", err
		}
		msg = rendered
	}

	cmd := fmt.Sprintf(`git commit -m "%s" %s`, cmdexec.EscapeDoubleQuoted(msg), manifest.FileName)
	if _, err := cmdexec.Run(cmd, w.opts.DryRun); err != nil {
		return "", "", err
	}
	return w.mutatingStatus(), msg, nil
}

// tag creates a version-control tag equal to the new version string.
func (w *Workflow) tag() (string, string, error) {
	if _, err := cmdexec.Run("git tag "+w.newVersion, w.opts.DryRun); err != nil {
		return "", "", err
	}
	return w.mutatingStatus(), w.newVersion, nil
}

// push publishes commits and tags to the remote.
func (w *Workflow) push() (string, string, error) {
	if _, err := cmdexec.Run("git push && git push --tags", w.opts.DryRun); err != nil {
		return "", "", err
	}
	return w.mutatingStatus(), "", nil
}

// publishPackage publishes the package to the registry with the configured
// distribution tag.
func (w *Workflow) publishPackage() (string, string, error) {
	if _, err := cmdexec.Run("npm publish --tag="+w.distTag, w.opts.DryRun); err != nil {
		return "", "", err
	}
	return w.mutatingStatus(), w.distTag, nil
}
