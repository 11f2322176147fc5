// Package autocorrect implements the text buffer behind the editor: it
// collects the word being typed, corrects it against a dictionary once a
// delimiter ends it, and capitalizes the first word of every sentence.
package autocorrect

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Corrector returns the replacement for a completed, lowercased word.
type Corrector interface {
	Correct(word string) string
}

// Buffer is a single line of autocorrected text. The zero value is not
// usable; create one with New. A Buffer is not safe for concurrent use.
type Buffer struct {
	corrector Corrector

	committed string // Corrected words, each followed by its delimiter.
	pending   string // The word being typed. Never holds a delimiter.

	// Set at the start and after every sentence delimiter. Cleared once a word
	// longer than one rune has been capitalized.
	capitalizeNext bool
}

// New returns an empty buffer that corrects completed words with c.
func New(c Corrector) *Buffer {
	return &Buffer{corrector: c, capitalizeNext: true}
}

// IsWordDelimiter reports whether r ends a word without ending the sentence.
func IsWordDelimiter(r rune) bool {
	switch r {
	case ' ', ',', ':', ';':
		return true
	}
	return false
}

// IsSentenceDelimiter reports whether r ends a sentence.
func IsSentenceDelimiter(r rune) bool {
	switch r {
	case '.', '?', '!':
		return true
	}
	return false
}

// InsertChar types c. A delimiter commits the pending word, corrected, followed
// by the delimiter itself; any other rune extends the pending word.
func (b *Buffer) InsertChar(c rune) {
	switch {
	case IsWordDelimiter(c):
		word := b.correctPending()
		if b.capitalizeNext && utf8.RuneCountInString(b.pending) > 1 {
			word = upperFirst(word)
			b.capitalizeNext = false
		}
		b.commit(word, c)
	case IsSentenceDelimiter(c):
		// The capital belongs to the next sentence's first word.
		b.commit(b.correctPending(), c)
		b.capitalizeNext = true
	default:
		b.pending += string(c)
	}
}

// DeleteChar removes the last rune of the pending word or, when nothing is
// pending, the last rune of the committed text.
func (b *Buffer) DeleteChar() {
	if b.pending != "" {
		b.pending = dropLastRune(b.pending)
		return
	}
	b.committed = dropLastRune(b.committed)
}

// DeleteWord cancels the pending word. With nothing pending it erases
// committed text back to the second space from the end, then puts one space
// back. It counts spaces only, so other delimiters do not stop it.
func (b *Buffer) DeleteWord() {
	if b.pending != "" {
		b.pending = ""
		return
	}
	spaces := 0
	for b.committed != "" {
		r, size := utf8.DecodeLastRuneInString(b.committed)
		b.committed = b.committed[:len(b.committed)-size]
		if r == ' ' {
			spaces++
		}
		if spaces == 2 {
			b.committed += " "
			return
		}
	}
}

// Render returns the text as displayed: committed text followed by the
// pending word.
func (b *Buffer) Render() string {
	return b.committed + b.pending
}

// Committed returns the corrected text.
func (b *Buffer) Committed() string { return b.committed }

// Pending returns the word being typed.
func (b *Buffer) Pending() string { return b.pending }

// CapitalizeNext reports whether the next committed word will be capitalized.
func (b *Buffer) CapitalizeNext() bool { return b.capitalizeNext }

func (b *Buffer) correctPending() string {
	return b.corrector.Correct(strings.ToLower(b.pending))
}

func (b *Buffer) commit(word string, delim rune) {
	b.committed += word + string(delim)
	b.pending = ""
}

func dropLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
