// Package dictionary holds the ordered, read-only word list used for
// autocorrection and finds the closest known word to a typed one.
//
// Lookup is a linear scan in stored order. Correction runs at most once per
// completed word, so a scan over a few thousand entries is cheap enough and
// keeps the tie-break (first seen wins) trivially reproducible.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/omarnabikhan/autotype/internal/editdistance"
)

const (
	// Entries whose length differs from the typed word by more than this are
	// not scored.
	cMaxLengthDelta = 3

	// The pronoun is always capitalized, wherever it appears in a sentence.
	pronounLower = "i"
	pronounUpper = "I"
)

// ErrEmpty is returned when a word source holds no words.
var ErrEmpty = errors.New("dictionary: no words")

// Dictionary is an immutable ordered list of lowercase words. It is safe for
// concurrent use.
type Dictionary struct {
	words []string
}

// New builds a Dictionary from words, lowercasing each entry and keeping the
// given order. Blank entries are dropped.
func New(words []string) (*Dictionary, error) {
	d := &Dictionary{words: make([]string, 0, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		d.words = append(d.words, w)
	}
	if len(d.words) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Load reads whitespace-separated words from r.
func Load(r io.Reader) (*Dictionary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return New(words)
}

// LoadFile reads a whitespace-separated word list from path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return d, nil
}

// Len returns the number of entries, duplicates included.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns a copy of the entries in stored order.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}

// Correct returns the dictionary entry closest to word, compared in
// lowercase. The input itself (lowercased) is returned when no entry scores
// above zero. A result of "i" is returned as "I".
func (d *Dictionary) Correct(word string) string {
	word = strings.ToLower(word)
	if word == "" {
		return word
	}
	wordLen := utf8.RuneCountInString(word)

	closest, best := word, 0.0
	for _, entry := range d.words {
		entryLen := utf8.RuneCountInString(entry)
		if entryLen == 0 || abs(entryLen-wordLen) > cMaxLengthDelta {
			continue
		}
		// Strictly greater: on ties the earlier entry stays.
		if score := editdistance.Similarity(entry, word); score > best {
			closest, best = entry, score
		}
	}

	if closest == pronounLower {
		return pronounUpper
	}
	return closest
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
