package engine

import (
	"context"
	"errors"
	"io"
)

// WalkLeaves drains src and calls fn with the JSON Pointer of every scalar
// token in document order. Several top-level values may follow each other;
// each one starts again at the root pointer. A non-nil error from fn stops the
// walk and is returned as is.
func WalkLeaves(ctx context.Context, src TokenSource, fn func(path string, tok Token) error) error {
	var track Tracker
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		tok, err := src.NextToken()
		if errors.Is(err, io.EOF) {
			if track.Depth() > 0 {
				return io.ErrUnexpectedEOF
			}
			return nil
		}
		if err != nil {
			return err
		}
		path := track.Advance(tok)
		if !tok.Kind.Scalar() {
			continue
		}
		if err := fn(path, tok); err != nil {
			return err
		}
	}
}
