// Package display renders workflow progress and the final step summary.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/ajxudir/npub/pkg/constants"
)

// SummaryRow is one line of the final step summary table.
//
// Fields:
//   - Step: Step name
//   - Status: Step status (see pkg/constants)
//   - Detail: Optional short detail, e.g. the resolved version
type SummaryRow struct {
	// Step is the workflow step name.
	Step string

	// Status is the step's final status.
	Status string

	// Detail is an optional short annotation for the row.
	Detail string
}

// Printer writes workflow output to a single destination, optionally colored.
//
// Fields: This type has no exported fields.
type Printer struct {
	out    io.Writer
	header *color.Color
	ok     *color.Color
	fail   *color.Color
	plan   *color.Color
}

// NewPrinter creates a Printer writing to out.
//
// Parameters:
//   - out: Destination writer (typically os.Stdout)
//   - noColor: Disables all color escape codes
//
// Returns:
//   - *Printer: Configured printer
func NewPrinter(out io.Writer, noColor bool) *Printer {
	p := &Printer{
		out:    out,
		header: color.New(color.FgCyan, color.Bold),
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
		plan:   color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{p.header, p.ok, p.fail, p.plan} {
			c.DisableColor()
		}
	}
	return p
}

// Step prints a step banner before the step executes.
//
// Parameters:
//   - name: Step name
func (p *Printer) Step(name string) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.header.Sprint("==>"), name)
}

// Successf prints a green success line.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Format arguments
func (p *Printer) Successf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.ok.Sprint(constants.IconCheckmark), fmt.Sprintf(format, args...))
}

// Failf prints a red failure line.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Format arguments
func (p *Printer) Failf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.fail.Sprint(constants.IconCross), fmt.Sprintf(format, args...))
}

// Summary prints the final step summary table.
//
// Columns are padded with display-width-aware spacing so rows stay aligned
// even when details contain wide runes.
//
// Parameters:
//   - rows: Step results in execution order
func (p *Printer) Summary(rows []SummaryRow) {
	if len(rows) == 0 {
		return
	}

	stepWidth := runewidth.StringWidth("STEP")
	statusWidth := runewidth.StringWidth("STATUS")
	for _, row := range rows {
		if w := runewidth.StringWidth(row.Step); w > stepWidth {
			stepWidth = w
		}
		if w := runewidth.StringWidth(row.Status); w > statusWidth {
			statusWidth = w
		}
	}

	_, _ = fmt.Fprintln(p.out)
	_, _ = fmt.Fprintf(p.out, "%s  %s  %s\n", pad("STEP", stepWidth), pad("STATUS", statusWidth), "DETAIL")
	for _, row := range rows {
		status := p.colorStatus(row.Status)
		// Pad the uncolored text, then color it, so escape codes don't skew widths.
		padding := strings.Repeat(" ", statusWidth-runewidth.StringWidth(row.Status))
		_, _ = fmt.Fprintf(p.out, "%s  %s%s  %s\n", pad(row.Step, stepWidth), status, padding, row.Detail)
	}
}

// colorStatus returns the status string colored by its meaning.
func (p *Printer) colorStatus(status string) string {
	switch status {
	case constants.StatusOK:
		return p.ok.Sprint(status)
	case constants.StatusFailed:
		return p.fail.Sprint(status)
	case constants.StatusPlanned:
		return p.plan.Sprint(status)
	default:
		return status
	}
}

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
