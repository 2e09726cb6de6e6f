package verbose

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEnableDisable tests the behavior of Enable and Disable.
//
// It verifies:
//   - Messages are only written while verbose logging is enabled
func TestEnableDisable(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	t.Cleanup(func() {
		Disable()
		SetWriter(nil)
	})

	Disable()
	Debugf("hidden %s", "message")
	assert.Empty(t, buf.String())

	Enable()
	assert.True(t, IsEnabled())
	Debugf("visible %s", "message")
	assert.Contains(t, buf.String(), "visible message")

	Disable()
	assert.False(t, IsEnabled())
	buf.Reset()
	Infof("also hidden")
	assert.Empty(t, buf.String())
}

// TestCommandLogging tests the behavior of the command log helpers.
//
// It verifies:
//   - Command execution and results include the command line
//   - Failures include the error text
func TestCommandLogging(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	Enable()
	t.Cleanup(func() {
		Disable()
		SetWriter(nil)
	})

	CommandExec("git status --porcelain", false)
	assert.Contains(t, buf.String(), "git status --porcelain")

	buf.Reset()
	CommandResult("git push", nil)
	assert.Contains(t, buf.String(), "command succeeded")

	buf.Reset()
	CommandResult("git push", assert.AnError)
	assert.Contains(t, buf.String(), "command failed")
}

// TestSetWriterNil tests the behavior of SetWriter with nil.
//
// It verifies:
//   - A nil writer leaves the current writer unchanged
func TestSetWriterNil(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	Enable()
	t.Cleanup(func() {
		Disable()
	})

	SetWriter(nil)
	Debugf("still captured")
	assert.Contains(t, buf.String(), "still captured")
}
