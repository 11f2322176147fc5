package internal

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/term"

	"github.com/omarnabikhan/autotype/internal/input"
)

const (
	cTTYPath = "/dev/tty"

	// ANSI sequences.
	ENTER_ALT_SCREEN = "\x1b[?1049h"
	LEAVE_ALT_SCREEN = "\x1b[?1049l"
	CLEAR_HOME       = "\x1b[2J\x1b[H"
	SAVE_CURSOR      = "\x1b7"
	RESTORE_CURSOR   = "\x1b8"
	LAST_LINE        = "\x1b[999;1H"
	DIM              = "\x1b[2m"
	RESET_ATTRS      = "\x1b[0m"
)

// tty is the part of *term.Term the raw backend uses.
type tty interface {
	io.ReadWriter
	SetReadTimeout(d time.Duration) error
	Restore() error
	Close() error
}

// rawTerminal drives the terminal directly: raw mode through pkg/term and
// plain ANSI escape sequences for the alternate screen and redraws.
type rawTerminal struct {
	tty     tty
	timeout time.Duration
	queued  []input.Key // Keys decoded from a read but not yet returned.
	partial []byte      // Start of a rune split across reads.
	readBuf []byte
	closed  bool
}

var _ Terminal = (*rawTerminal)(nil)

func newRawTerminal(path string) (*rawTerminal, error) {
	t, err := term.Open(path, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	rt, err := newRawTerminalWithTTY(t)
	if err != nil {
		t.Restore()
		t.Close()
		return nil, err
	}
	return rt, nil
}

func newRawTerminalWithTTY(t tty) (*rawTerminal, error) {
	if _, err := io.WriteString(t, ENTER_ALT_SCREEN+CLEAR_HOME); err != nil {
		return nil, fmt.Errorf("enter alternate screen: %w", err)
	}
	return &rawTerminal{tty: t, timeout: -1, readBuf: make([]byte, 64)}, nil
}

func (t *rawTerminal) Poll(timeout time.Duration) (input.Key, bool, error) {
	if len(t.queued) == 0 {
		if err := t.fill(timeout); err != nil {
			return input.Key{}, false, err
		}
		if len(t.queued) == 0 {
			return input.Key{}, false, nil
		}
	}
	key := t.queued[0]
	t.queued = t.queued[1:]
	return key, true, nil
}

func (t *rawTerminal) fill(timeout time.Duration) error {
	if timeout != t.timeout {
		if err := t.tty.SetReadTimeout(timeout); err != nil {
			return fmt.Errorf("set read timeout: %w", err)
		}
		t.timeout = timeout
	}
	n, err := t.tty.Read(t.readBuf)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read terminal: %w", err)
	}
	// A timed out read returns nothing, sometimes with io.EOF.
	data := append(t.partial, t.readBuf[:n]...)
	cut := len(data) - input.IncompleteSuffix(data)
	t.queued = input.Decode(data[:cut])
	t.partial = append(t.partial[:0], data[cut:]...)
	return nil
}

func (t *rawTerminal) Draw(text, status string) error {
	var frame strings.Builder
	frame.WriteString(CLEAR_HOME)
	frame.WriteString(text)
	if status != "" {
		frame.WriteString(SAVE_CURSOR)
		frame.WriteString(LAST_LINE + DIM)
		frame.WriteString(status)
		frame.WriteString(RESET_ATTRS + RESTORE_CURSOR)
	}
	// One write per frame, so the screen never shows a half-drawn state.
	if _, err := io.WriteString(t.tty, frame.String()); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

func (t *rawTerminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	_, werr := io.WriteString(t.tty, LEAVE_ALT_SCREEN)
	return errors.Join(werr, t.tty.Restore(), t.tty.Close())
}
