package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// sgr builds an ANSI "select graphic rendition" sequence.
func sgr(codes ...string) string { return "\033[" + strings.Join(codes, ";") + "m" }

var reset = sgr("0")

// ColorMode decides when Paint emits escape codes.
type ColorMode int

const (
	ColorAuto ColorMode = iota // only when stdout is a terminal
	ColorAlways
	ColorNever
)

var mode = ColorAuto

func SetColorMode(m ColorMode) { mode = m }

func colorEnabled() bool {
	switch {
	case mode == ColorNever || current.NoColor:
		return false
	case mode == ColorAlways:
		return true
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Paint wraps s in color when color output is enabled.
func Paint(color, s string) string {
	if color == "" || !colorEnabled() {
		return s
	}
	return color + s + reset
}

// Dim renders ids and hints with the theme's faint style.
func Dim(s string) string { return Paint(current.Faint, s) }

func status(w io.Writer, color, glyph, msg string) {
	fmt.Fprintln(w, Paint(color, glyph+" "+msg))
}

func OK(w io.Writer, msg string)   { status(w, current.Success, current.Check, msg) }
func Fail(w io.Writer, msg string) { status(w, current.Error, current.Cross, msg) }
func Warn(w io.Writer, msg string) { status(w, current.Warning, current.Bang, msg) }
