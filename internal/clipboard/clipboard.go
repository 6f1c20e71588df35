// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

const (
	// ConfirmLabel replaces the copied label while the confirmation shows.
	ConfirmLabel = "✔ Copied"
	// RevertAfter is how long the confirmation stays before the label reverts.
	RevertAfter = 1000 * time.Millisecond
)

// Writer puts text on a clipboard.
type Writer func(string) error

type Copier struct {
	write Writer
	log   *slog.Logger
}

// New returns a Copier writing through w, or the system clipboard when w is nil.
func New(w Writer, log *slog.Logger) *Copier {
	if w == nil {
		w = clipboard.WriteAll
	}
	if log == nil {
		log = slog.Default()
	}
	return &Copier{write: w, log: log}
}

// Copy writes the trimmed text. Blank text is a no-op and reports false
// without touching the clipboard. Failures are logged and returned.
func (c *Copier) Copy(text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, nil
	}
	if err := c.write(text); err != nil {
		c.log.Error("copy to clipboard failed", "err", err)
		return false, err
	}
	return true, nil
}
