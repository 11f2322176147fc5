package internal

import (
	"testing"

	gc "github.com/gbin/goncurses"
	"github.com/stretchr/testify/assert"

	"github.com/omarnabikhan/autotype/internal/input"
)

func TestCursesKeysDecode(t *testing.T) {
	tests := []struct {
		name   string
		key    gc.Key
		want   input.Key
		wantOK bool
	}{
		{name: "timeout", key: -1},
		{name: "nul", key: 0},
		{name: "printable", key: 'a', want: input.Key{Kind: input.Char, Char: 'a'}, wantOK: true},
		{name: "space", key: ' ', want: input.Key{Kind: input.Char, Char: ' '}, wantOK: true},
		{name: "keypad backspace", key: gc.KEY_BACKSPACE, want: input.Key{Kind: input.Backspace}, wantOK: true},
		{name: "delete", key: 0x7f, want: input.Key{Kind: input.Backspace}, wantOK: true},
		{name: "ctrl+h", key: 0x08, want: input.Key{Kind: input.DeleteWord}, wantOK: true},
		{name: "ctrl+q", key: 0x11, want: input.Key{Kind: input.Quit}, wantOK: true},
		{name: "tab", key: gc.KEY_TAB, want: input.Key{Kind: input.Unsupported}, wantOK: true},
		{name: "arrow", key: gc.KEY_UP, want: input.Key{Kind: input.Unsupported}, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d cursesKeys
			got, ok := d.decode(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCursesKeysDecodeMultiByte(t *testing.T) {
	var d cursesKeys
	var got []input.Key
	for _, b := range []byte("öx€") {
		if key, ok := d.decode(gc.Key(b)); ok {
			got = append(got, key)
		}
	}
	assert.Equal(t, []input.Key{
		{Kind: input.Char, Char: 'ö'},
		{Kind: input.Char, Char: 'x'},
		{Kind: input.Char, Char: '€'},
	}, got)
}

func TestCursesKeysDecodeInvalidByte(t *testing.T) {
	var d cursesKeys
	key, ok := d.decode(0xff)
	assert.True(t, ok)
	assert.Equal(t, input.Key{Kind: input.Unsupported}, key)

	// A truncated sequence is dropped when an ASCII key follows.
	_, ok = d.decode(0xc3)
	assert.False(t, ok)
	key, ok = d.decode('a')
	assert.True(t, ok)
	assert.Equal(t, input.Key{Kind: input.Char, Char: 'a'}, key)
}
