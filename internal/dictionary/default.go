package dictionary

import (
	"bytes"
	_ "embed"
)

//go:embed words.txt
var defaultWords []byte

// Default returns the dictionary built from the word list compiled into the
// binary. It is used when no dictionary file is configured.
func Default() (*Dictionary, error) {
	return Load(bytes.NewReader(defaultWords))
}
