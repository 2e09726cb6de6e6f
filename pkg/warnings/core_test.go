package warnings

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSetWarningWriterRestoresAndCaptures tests the behavior of SetWarningWriter.
//
// It verifies:
//   - Warning messages are captured by the new writer
//   - The original writer is restored after calling the restore function
//   - A nil writer defaults to os.Stderr
func TestSetWarningWriterRestoresAndCaptures(t *testing.T) {
	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)

	Warnf("deprecated %s script\n", "prepublish")
	assert.Equal(t, "deprecated prepublish script\n", buf.String())

	restore()

	restoreNil := SetWarningWriter(nil)
	defer restoreNil()

	mu.RLock()
	current := warnWriter
	mu.RUnlock()
	assert.Equal(t, os.Stderr, current)
}
