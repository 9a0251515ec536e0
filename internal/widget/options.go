package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// ConfirmFunc asks the user a yes/no question and blocks until answered.
type ConfirmFunc func(prompt string) bool

// Accept is a ConfirmFunc that always answers yes.
func Accept(string) bool { return true }

// Decline is a ConfirmFunc that always answers no.
func Decline(string) bool { return false }

// CorruptPolicy decides what Mount does when the stored blob is malformed.
type CorruptPolicy int

const (
	// CorruptReset starts with an empty list and logs a warning. The bad
	// blob stays in storage until the next mutation overwrites it.
	CorruptReset CorruptPolicy = iota
	// CorruptFail makes Mount return the decode error.
	CorruptFail
)

func (p CorruptPolicy) String() string {
	switch p {
	case CorruptReset:
		return "reset"
	case CorruptFail:
		return "fail"
	default:
		return fmt.Sprintf("CorruptPolicy(%d)", int(p))
	}
}

// ParseCorruptPolicy parses "reset" or "fail".
func ParseCorruptPolicy(s string) (CorruptPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reset":
		return CorruptReset, nil
	case "fail":
		return CorruptFail, nil
	default:
		return CorruptReset, fmt.Errorf("unknown corrupt policy %q (want reset or fail)", s)
	}
}

// Option configures a Widget.
type Option func(*Widget)

// WithKey sets the storage key the list is saved under. Required.
func WithKey(key string) Option {
	return func(w *Widget) {
		w.key = key
	}
}

// WithTitle sets the heading text. Empty keeps the label set's title.
func WithTitle(title string) Option {
	return func(w *Widget) {
		w.title = title
	}
}

// WithLabels replaces the user-facing strings. Blank fields fall back to
// the English defaults.
func WithLabels(labels Labels) Option {
	return func(w *Widget) {
		w.labels = labels.withDefaults()
	}
}

// WithConfirm sets how delete confirmation is asked. The default declines
// every delete, so callers that want deletes must supply one.
func WithConfirm(fn ConfirmFunc) Option {
	return func(w *Widget) {
		if fn != nil {
			w.confirm = fn
		}
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithCorruptPolicy sets how a malformed stored blob is handled.
func WithCorruptPolicy(p CorruptPolicy) Option {
	return func(w *Widget) {
		w.policy = p
	}
}
