package nestwalk

import (
	"context"
	"encoding/json"
	"errors"
	"io"
)

// Decode builds a value tree from src: objects become *OrderedMap, arrays
// []any, numbers json.Number. Only the first top-level value is read.
func Decode(ctx context.Context, src Source, opts ...WalkOpt) (any, error) {
	s := EnforceSource(src, lastOpt(opts))
	d := decoder{ctx: ctx, src: s}
	tok, err := d.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, singleIssue(CodeParseError, "/", "empty input")
		}
		return nil, toIssues(err, s.Location())
	}
	v, err := d.value(tok)
	if err != nil {
		return nil, toIssues(err, s.Location())
	}
	return v, nil
}

type decoder struct {
	ctx context.Context
	src Source
}

func (d *decoder) next() (Token, error) {
	if err := d.ctx.Err(); err != nil {
		return Token{}, err
	}
	return d.src.NextToken()
}

// nextIn reads a token inside a container where EOF is always premature.
func (d *decoder) nextIn() (Token, error) {
	tok, err := d.next()
	if errors.Is(err, io.EOF) {
		return Token{}, io.ErrUnexpectedEOF
	}
	return tok, err
}

func (d *decoder) value(tok Token) (any, error) {
	switch tok.Kind {
	case TokenBeginObject:
		m := NewOrderedMap()
		for {
			kt, err := d.nextIn()
			if err != nil {
				return nil, err
			}
			if kt.Kind == TokenEndObject {
				return m, nil
			}
			if kt.Kind != TokenKey {
				return nil, io.ErrUnexpectedEOF
			}
			vt, err := d.nextIn()
			if err != nil {
				return nil, err
			}
			v, err := d.value(vt)
			if err != nil {
				return nil, err
			}
			m.Set(kt.String, v)
		}
	case TokenBeginArray:
		arr := []any{}
		for {
			t, err := d.nextIn()
			if err != nil {
				return nil, err
			}
			if t.Kind == TokenEndArray {
				return arr, nil
			}
			v, err := d.value(t)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
	}
	return scalarValue(tok), nil
}

// scalarValue converts a scalar token into its Go value.
func scalarValue(tok Token) any {
	switch tok.Kind {
	case TokenString:
		return tok.String
	case TokenNumber:
		return json.Number(tok.Number)
	case TokenBool:
		return tok.Bool
	}
	return nil
}
