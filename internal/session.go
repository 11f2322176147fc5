package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/omarnabikhan/autotype"
)

// Run feeds keys from src to ed one at a time until the user quits or ctx is
// cancelled, both of which return nil. Cancellation is noticed between polls,
// so it takes at most pollTimeout.
func Run(ctx context.Context, ed autotype.Editor, src KeySource, pollTimeout time.Duration) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		key, ok, err := src.Poll(pollTimeout)
		if err != nil {
			return fmt.Errorf("poll input: %w", err)
		}
		if !ok {
			continue
		}
		if err := ed.Handle(key); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
