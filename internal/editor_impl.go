package internal

import (
	"fmt"
	"io"

	"github.com/omarnabikhan/autotype"
	"github.com/omarnabikhan/autotype/internal/autocorrect"
	"github.com/omarnabikhan/autotype/internal/build_version"
	"github.com/omarnabikhan/autotype/internal/dictionary"
	"github.com/omarnabikhan/autotype/internal/input"
	"github.com/omarnabikhan/autotype/internal/logging"
)

type Options struct {
	// Verbose shows a debug status line under the text.
	Verbose bool
	Logger  *logging.Logger
}

// NewEditor returns an editor that types into an empty autocorrecting buffer
// and draws it on term. The editor owns term and closes it in Close.
func NewEditor(term Terminal, dict *dictionary.Dictionary, opts Options) (autotype.Editor, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	e := &editorImpl{
		term:    term,
		buffer:  autocorrect.New(dict),
		logger:  logger,
		verbose: opts.Verbose,
	}
	logger.Info("editor started", "dictionary_words", dict.Len(), "verbose", opts.Verbose)

	// Initial update of window.
	if err := e.sync(); err != nil {
		return nil, err
	}
	return e, nil
}

type editorImpl struct {
	term   Terminal
	buffer *autocorrect.Buffer
	logger *logging.Logger

	verbose bool
	lastKey input.Key
	handled int // Keys handled so far, unsupported ones included.
}

var _ autotype.Editor = (*editorImpl)(nil)

func (e *editorImpl) Handle(key input.Key) error {
	e.lastKey = key
	e.handled++

	switch key.Kind {
	case input.Char:
		e.buffer.InsertChar(key.Char)
	case input.Backspace:
		e.buffer.DeleteChar()
	case input.DeleteWord:
		e.buffer.DeleteWord()
	case input.Quit:
		e.logger.Info("quit requested", "keys_handled", e.handled)
		return io.EOF
	default:
		e.logger.Debug("unsupported key ignored", "key", key.String())
	}
	return e.sync()
}

func (e *editorImpl) Close() error {
	return e.term.Close()
}

func (e *editorImpl) sync() error {
	if err := e.term.Draw(e.buffer.Render(), e.statusLine()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (e *editorImpl) statusLine() string {
	if !e.verbose {
		return ""
	}
	return fmt.Sprintf(
		"DEBUG: build=%s; committed=%dB; pending=%q; capitalize next=%t; last key=%s",
		build_version.GetVersion(),
		len(e.buffer.Committed()),
		e.buffer.Pending(),
		e.buffer.CapitalizeNext(),
		e.lastKey,
	)
}
