package internal

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarnabikhan/autotype/internal/input"
)

// fakeTTY serves one scripted chunk per Read; an empty chunk is a timeout.
type fakeTTY struct {
	reads    [][]byte
	out      bytes.Buffer
	timeouts []time.Duration
	restored bool
	closed   bool
	readErr  error
}

func (f *fakeTTY) Read(p []byte) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	if len(f.reads) == 0 {
		return 0, io.EOF
	}
	chunk := f.reads[0]
	f.reads = f.reads[1:]
	if len(chunk) == 0 {
		return 0, io.EOF
	}
	return copy(p, chunk), nil
}

func (f *fakeTTY) Write(p []byte) (int, error) { return f.out.Write(p) }

func (f *fakeTTY) SetReadTimeout(d time.Duration) error {
	f.timeouts = append(f.timeouts, d)
	return nil
}

func (f *fakeTTY) Restore() error {
	f.restored = true
	return nil
}

func (f *fakeTTY) Close() error {
	f.closed = true
	return nil
}

func TestRawTerminalLifecycle(t *testing.T) {
	tty := &fakeTTY{}
	term, err := newRawTerminalWithTTY(tty)
	require.NoError(t, err)
	assert.Equal(t, ENTER_ALT_SCREEN+CLEAR_HOME, tty.out.String())

	tty.out.Reset()
	require.NoError(t, term.Close())
	require.NoError(t, term.Close())
	assert.Equal(t, LEAVE_ALT_SCREEN, tty.out.String())
	assert.True(t, tty.restored)
	assert.True(t, tty.closed)
}

func TestRawTerminalPoll(t *testing.T) {
	tty := &fakeTTY{reads: [][]byte{
		[]byte("ab"),
		{},
		[]byte("\x1b[A\x7f"),
	}}
	term, err := newRawTerminalWithTTY(tty)
	require.NoError(t, err)

	var got []input.Key
	var misses int
	for i := 0; i < 6; i++ {
		key, ok, err := term.Poll(100 * time.Millisecond)
		require.NoError(t, err)
		if !ok {
			misses++
			continue
		}
		got = append(got, key)
	}

	assert.Equal(t, []input.Key{
		{Kind: input.Char, Char: 'a'},
		{Kind: input.Char, Char: 'b'},
		{Kind: input.Unsupported},
		{Kind: input.Backspace},
	}, got)
	assert.Equal(t, 2, misses)
	// The timeout is only applied when it changes.
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, tty.timeouts)
}

func TestRawTerminalPollSplitRune(t *testing.T) {
	// "ö€" with both runes cut across reads, and a timeout in between.
	tty := &fakeTTY{reads: [][]byte{
		[]byte("a\xc3"),
		{},
		[]byte("\xb6\xe2\x82"),
		[]byte("\xacz"),
	}}
	term, err := newRawTerminalWithTTY(tty)
	require.NoError(t, err)

	var got []input.Key
	for i := 0; i < 8; i++ {
		key, ok, err := term.Poll(100 * time.Millisecond)
		require.NoError(t, err)
		if ok {
			got = append(got, key)
		}
	}

	assert.Equal(t, []input.Key{
		{Kind: input.Char, Char: 'a'},
		{Kind: input.Char, Char: 'ö'},
		{Kind: input.Char, Char: '€'},
		{Kind: input.Char, Char: 'z'},
	}, got)
}

func TestRawTerminalPollError(t *testing.T) {
	tty := &fakeTTY{readErr: errors.New("EIO")}
	term, err := newRawTerminalWithTTY(tty)
	require.NoError(t, err)

	_, _, err = term.Poll(time.Millisecond)
	assert.ErrorContains(t, err, "read terminal: EIO")
}

func TestRawTerminalDraw(t *testing.T) {
	tty := &fakeTTY{}
	term, err := newRawTerminalWithTTY(tty)
	require.NoError(t, err)

	tty.out.Reset()
	require.NoError(t, term.Draw("Hello wor", ""))
	assert.Equal(t, CLEAR_HOME+"Hello wor", tty.out.String())

	tty.out.Reset()
	require.NoError(t, term.Draw("Hi", "DEBUG"))
	assert.Equal(t, CLEAR_HOME+"Hi"+SAVE_CURSOR+LAST_LINE+DIM+"DEBUG"+RESET_ATTRS+RESTORE_CURSOR, tty.out.String())
}
