// Package confirm holds the single reusable yes/no confirmation used before
// every destructive or associating mutation.
//
// A Modal moves idle -> pending on Confirm and back to idle on Accept or
// Decline. The callback bound by Confirm is released on resolution, so a
// stale Accept can never run it twice. Only one confirmation may be pending;
// calling Confirm again before resolution replaces the pending one.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type State int

const (
	Idle State = iota
	Pending
	Confirmed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// Modal asks a question and runs onConfirm only if the user accepts. T is
// whatever the callback hands back: a tea.Cmd in the TUI, an error in the CLI.
type Modal[T any] struct {
	state     State
	last      State
	message   string
	onConfirm func() T
}

// Confirm shows message and binds onConfirm to the accept control.
func (m *Modal[T]) Confirm(message string, onConfirm func() T) {
	m.message = message
	m.onConfirm = onConfirm
	m.state = Pending
}

// Accept hides the modal, then runs the bound callback once. It reports
// false, and runs nothing, when no confirmation is pending.
func (m *Modal[T]) Accept() (T, bool) {
	var zero T
	if m.state != Pending {
		return zero, false
	}
	cb := m.release(Confirmed)
	if cb == nil {
		return zero, true
	}
	return cb(), true
}

// Decline hides the modal and drops the callback.
func (m *Modal[T]) Decline() bool {
	if m.state != Pending {
		return false
	}
	m.release(Cancelled)
	return true
}

func (m *Modal[T]) release(outcome State) func() T {
	cb := m.onConfirm
	m.onConfirm = nil
	m.state = Idle
	m.last = outcome
	return cb
}

func (m *Modal[T]) Pending() bool   { return m.state == Pending }
func (m *Modal[T]) Hidden() bool    { return m.state != Pending }
func (m *Modal[T]) Message() string { return m.message }

// Last is the outcome of the most recent resolution (Idle before any).
func (m *Modal[T]) Last() State { return m.last }

// Ask resolves a confirmation on a line-based terminal: it prints message,
// reads one answer from r and accepts on "y" or "yes".
func Ask[T any](m *Modal[T], r io.Reader, w io.Writer, message string, onConfirm func() T) (T, bool) {
	m.Confirm(message, onConfirm)
	fmt.Fprintf(w, "%s [y/N] ", message)
	line, _ := bufio.NewReader(r).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return m.Accept()
	}
	m.Decline()
	var zero T
	return zero, false
}
