package autotype

import "github.com/omarnabikhan/autotype/internal/input"

// Editor - The main interface that represents the program. At any point there will be just one
// instantiation of Editor. The program passes keys that the user types (read from the terminal),
// and the editor updates its autocorrecting buffer and publishes the result by redrawing the
// screen. Handle returns io.EOF once the user asks to quit.
type Editor interface {
	Handle(key input.Key) error
	Close() error
}
