package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_Contains(t *testing.T) {
	assert.True(t, Contains([]string{".png", ".bmp"}, ".bmp"))
	assert.False(t, Contains([]string{".png", ".bmp"}, ".gif"))
	assert.False(t, Contains(nil, 1))
}

func TestUtils_SpinnerStopMessage(t *testing.T) {
	out := &bytes.Buffer{}
	s := NewSpinner("rendering", time.Millisecond)
	s.writer = out
	s.hideCursor = false

	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.StopMsg = "done"
	s.Stop()

	assert.True(t, strings.HasSuffix(out.String(), "done"))

	// Stopping twice is a no-op.
	s.Stop()
	assert.True(t, strings.HasSuffix(out.String(), "done"))
}
