package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/npub/pkg/constants"
)

// TestStep tests the behavior of Printer.Step.
//
// It verifies:
//   - The step banner carries the step name
//   - No escape codes appear with colors disabled
func TestStep(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	p.Step("check working copy")

	assert.Equal(t, "==> check working copy\n", buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

// TestSuccessfAndFailf tests the behavior of the result lines.
//
// It verifies:
//   - Success and failure lines carry their icons and message
func TestSuccessfAndFailf(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	p.Successf("released %s version %s", "demo-pkg", "1.0.1")
	p.Failf("command failed: %s", "git push")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, constants.IconCheckmark+" released demo-pkg version 1.0.1", lines[0])
	assert.Equal(t, constants.IconCross+" command failed: git push", lines[1])
}

// TestSummary tests the behavior of Printer.Summary.
//
// It verifies:
//   - Columns are padded to the widest cell
//   - Rows appear in order under the header
//   - An empty result list prints nothing
func TestSummary(t *testing.T) {
	t.Run("aligned table", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, true)
		p.Summary([]SummaryRow{
			{Step: "load manifest", Status: constants.StatusOK, Detail: "demo-pkg@1.0.0"},
			{Step: "check working copy", Status: constants.StatusOK, Detail: "clean"},
			{Step: "resolve new version", Status: constants.StatusFailed, Detail: "mismatch"},
		})

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 5) // blank line, header, three rows

		header := lines[1]
		assert.True(t, strings.HasPrefix(header, "STEP"))
		assert.Contains(t, header, "STATUS")
		assert.Contains(t, header, "DETAIL")

		// The status column starts at the same offset in every row.
		offset := strings.Index(lines[2], constants.StatusOK)
		require.Greater(t, offset, 0)
		assert.Equal(t, offset, strings.Index(lines[3], constants.StatusOK))
		assert.Equal(t, offset, strings.Index(lines[4], constants.StatusFailed))
	})

	t.Run("empty rows print nothing", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, true)
		p.Summary(nil)
		assert.Empty(t, buf.String())
	})
}

// TestColorOutput tests that colors are emitted when enabled.
//
// It verifies:
//   - Escape codes appear in the banner when color is not disabled
func TestColorOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	// Force color emission even without a TTY.
	p.header.EnableColor()
	p.Step("publish")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "publish")
}
