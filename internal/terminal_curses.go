package internal

import (
	"fmt"
	"time"
	"unicode/utf8"

	gc "github.com/gbin/goncurses"

	"github.com/omarnabikhan/autotype/internal/input"
)

const (
	// Colors.
	COLOR_DEFAULT = 100
	COLOR_DEBUG   = 101
	COLOR_BG      = 102

	// Color pairs.
	COLOR_PAIR_DEBUG   = 1
	COLOR_PAIR_DEFAULT = 2
)

type cursesTerminal struct {
	window  *gc.Window
	keys    cursesKeys
	timeout time.Duration
	colors  bool
	closed  bool
}

var _ Terminal = (*cursesTerminal)(nil)

func newCursesTerminal() (*cursesTerminal, error) {
	window, err := gc.Init()
	if err != nil {
		return nil, fmt.Errorf("init curses: %w", err)
	}
	t := &cursesTerminal{window: window, timeout: -1}
	if err := t.setup(); err != nil {
		t.Close()
		return nil, err
	}
	return t, nil
}

func (t *cursesTerminal) setup() error {
	// Raw rather than cbreak so that ctrl+q reaches us instead of being taken
	// as XON by the tty driver.
	gc.Raw(true)
	gc.Echo(false)
	if err := t.window.Keypad(true); err != nil {
		return fmt.Errorf("curses keypad: %w", err)
	}
	if gc.HasColors() && gc.StartColor() == nil {
		gc.InitColor(COLOR_DEFAULT, 900, 900, 900)
		gc.InitColor(COLOR_DEBUG, 887, 113, 63)
		gc.InitColor(COLOR_BG, 170, 170, 170)

		gc.InitPair(COLOR_PAIR_DEBUG, COLOR_DEBUG, COLOR_BG)
		gc.InitPair(COLOR_PAIR_DEFAULT, COLOR_DEFAULT, COLOR_BG)
		t.colors = true
	}
	return nil
}

func (t *cursesTerminal) Poll(timeout time.Duration) (input.Key, bool, error) {
	if timeout != t.timeout {
		t.window.Timeout(int(timeout / time.Millisecond))
		t.timeout = timeout
	}
	key, ok := t.keys.decode(t.window.GetChar())
	return key, ok, nil
}

// cursesKeys turns getch results into keys. Without the wide-character API
// curses hands UTF-8 input over one byte at a time, so lead and continuation
// bytes are held until the rune is complete.
type cursesKeys struct {
	partial []byte
}

func (d *cursesKeys) decode(key gc.Key) (input.Key, bool) {
	switch {
	case key <= 0:
		// Timed out.
		return input.Key{}, false
	case key == gc.KEY_BACKSPACE:
		d.partial = d.partial[:0]
		return input.Key{Kind: input.Backspace}, true
	case key >= utf8.RuneSelf && key <= 0xff:
		d.partial = append(d.partial, byte(key))
		if !utf8.FullRune(d.partial) {
			return input.Key{}, false
		}
		r, _ := utf8.DecodeRune(d.partial)
		d.partial = d.partial[:0]
		return input.FromRune(r), true
	}
	d.partial = d.partial[:0]
	return input.FromCursesName(gc.KeyString(key)), true
}

func (t *cursesTerminal) Draw(text, status string) error {
	t.window.Erase()
	if t.colors {
		t.window.SetBackground(gc.ColorPair(COLOR_PAIR_DEFAULT))
	}
	t.window.MovePrint(0, 0, text)
	cursorY, cursorX := t.window.CursorYX()

	if status != "" {
		maxY, _ := t.window.MaxYX()
		if t.colors {
			t.window.ColorOn(COLOR_PAIR_DEBUG)
		}
		t.window.MovePrint(maxY-1, 0, status)
		if t.colors {
			t.window.ColorOff(COLOR_PAIR_DEBUG)
		}
	}

	// Refresh before moving the cursor, otherwise it is drawn after the
	// status line.
	t.window.Refresh()
	t.window.Move(cursorY, cursorX)
	t.window.Refresh()
	return nil
}

func (t *cursesTerminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	gc.End()
	return nil
}
