package internal

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/omarnabikhan/autotype/internal/config"
	"github.com/omarnabikhan/autotype/internal/input"
)

// ErrNotTerminal is returned when stdin is not attached to a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// KeySource delivers at most one key per call, waiting no longer than
// timeout. ok is false when no key arrived in time.
type KeySource interface {
	Poll(timeout time.Duration) (key input.Key, ok bool, err error)
}

// Terminal is both the key source and the render sink of a session. It
// holds global terminal state (raw mode, alternate screen) from the moment it
// is opened until Close, which must run on every exit path.
type Terminal interface {
	KeySource

	// Draw replaces the screen with text. A non-empty status is shown on the
	// last line; the cursor is left at the end of text.
	Draw(text, status string) error
	Close() error
}

// OpenTerminal takes over the controlling terminal with the named backend.
func OpenTerminal(backend string) (Terminal, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil, ErrNotTerminal
	}
	switch backend {
	case config.BACKEND_CURSES, "":
		return newCursesTerminal()
	case config.BACKEND_RAW:
		return newRawTerminal(cTTYPath)
	default:
		return nil, fmt.Errorf("unknown terminal backend %q", backend)
	}
}
