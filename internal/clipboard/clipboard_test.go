package clipboard_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/Makepad-fr/liser/internal/clipboard"
	"github.com/stretchr/testify/assert"
)

func TestCopy_BlankNeverWrites(t *testing.T) {
	calls := 0
	c := clipboard.New(func(string) error { calls++; return nil }, nil)

	copied, err := c.Copy("  ")
	assert.NoError(t, err)
	assert.False(t, copied)
	assert.Equal(t, 0, calls)
}

func TestCopy_WritesTrimmedText(t *testing.T) {
	var got []string
	c := clipboard.New(func(s string) error { got = append(got, s); return nil }, nil)

	copied, err := c.Copy("  echo hi\n")
	assert.NoError(t, err)
	assert.True(t, copied)
	assert.Equal(t, []string{"echo hi"}, got)
}

func TestCopy_FailureIsLogged(t *testing.T) {
	var logs bytes.Buffer
	c := clipboard.New(func(string) error { return errors.New("no clipboard utility") },
		slog.New(slog.NewTextHandler(&logs, nil)))

	copied, err := c.Copy("echo hi")
	assert.Error(t, err)
	assert.False(t, copied)
	assert.Contains(t, logs.String(), "no clipboard utility")
}

func TestConfirmationTiming(t *testing.T) {
	assert.Equal(t, time.Second, clipboard.RevertAfter)
	assert.Equal(t, "✔ Copied", clipboard.ConfirmLabel)
}
