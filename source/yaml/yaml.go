// Package yaml exposes YAML documents as a JSON-shaped token stream.
//
// Documents are decoded into yaml.Node trees and replayed in document order,
// so mapping keys keep the order they were written in. A stream with more than
// one document is presented as a top-level array of documents.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/nestwalk/internal/engine"
)

type nodeSource struct {
	r      io.Reader
	loaded bool
	tokens []eng.Token
	idx    int
	err    error
}

// NewReader wraps an io.Reader into an engine.TokenSource for YAML. The input
// is read and parsed on the first NextToken call.
func NewReader(r io.Reader) eng.TokenSource { return &nodeSource{r: r} }

// NewBytes wraps a byte slice into an engine.TokenSource for YAML.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *nodeSource) NextToken() (eng.Token, error) {
	if !s.loaded {
		s.loaded = true
		s.tokens, s.err = tokenize(s.r)
	}
	if s.err != nil {
		return eng.Token{}, s.err
	}
	if s.idx >= len(s.tokens) {
		return eng.Token{}, io.EOF
	}
	t := s.tokens[s.idx]
	s.idx++
	return t, nil
}

// Location is always -1: yaml.v3 reports lines and columns, not byte offsets.
func (s *nodeSource) Location() int64 { return -1 }

func tokenize(r io.Reader) ([]eng.Token, error) {
	dec := yaml.NewDecoder(r)
	var docs []*yaml.Node
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("yaml: %w", err)
		}
		docs = append(docs, &doc)
	}

	var x expander
	if len(docs) > 1 {
		x.emit(eng.KindBeginArray)
	}
	for _, d := range docs {
		if err := x.node(d, 0); err != nil {
			return nil, err
		}
	}
	if len(docs) > 1 {
		x.emit(eng.KindEndArray)
	}
	return x.out, nil
}

// maxAliasDepth bounds alias expansion so self-referencing anchors terminate.
const maxAliasDepth = 64

// expander replays node trees as tokens. It counts the nodes it visits and
// those reached through an alias so nested anchors cannot fan out without
// bound.
type expander struct {
	out     []eng.Token
	visited int
	aliased int
}

func (x *expander) emit(k eng.Kind) {
	x.out = append(x.out, eng.Token{Kind: k, Offset: -1})
}

// aliasRatio is the share of alias-reached nodes tolerated for a document of
// n visited nodes. It tightens from 0.99 to 0.10 between 400k and 4M nodes,
// the same curve yaml.v3 applies when decoding into Go values.
func aliasRatio(n int) float64 {
	switch {
	case n <= 400000:
		return 0.99
	case n >= 4000000:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(n-400000)/3600000)
	}
}

func (x *expander) count(n *yaml.Node, aliasDepth int) error {
	x.visited++
	if aliasDepth > 0 {
		x.aliased++
	}
	if x.aliased > 100 && x.visited > 1000 && float64(x.aliased)/float64(x.visited) > aliasRatio(x.visited) {
		return fmt.Errorf("yaml: line %d: document contains excessive aliasing", n.Line)
	}
	return nil
}

func (x *expander) node(n *yaml.Node, aliasDepth int) error {
	if err := x.count(n, aliasDepth); err != nil {
		return err
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			x.emit(eng.KindNull)
			return nil
		}
		return x.node(n.Content[0], aliasDepth)
	case yaml.MappingNode:
		x.emit(eng.KindBeginObject)
		for i := 0; i+1 < len(n.Content); i += 2 {
			x.out = append(x.out, eng.Token{Kind: eng.KindKey, String: keyText(n.Content[i]), Offset: -1})
			if err := x.node(n.Content[i+1], aliasDepth); err != nil {
				return err
			}
		}
		x.emit(eng.KindEndObject)
		return nil
	case yaml.SequenceNode:
		x.emit(eng.KindBeginArray)
		for _, c := range n.Content {
			if err := x.node(c, aliasDepth); err != nil {
				return err
			}
		}
		x.emit(eng.KindEndArray)
		return nil
	case yaml.AliasNode:
		if n.Alias == nil || aliasDepth >= maxAliasDepth {
			return fmt.Errorf("yaml: unresolvable alias %q at line %d", n.Value, n.Line)
		}
		return x.node(n.Alias, aliasDepth+1)
	case yaml.ScalarNode:
		t, err := scalarToken(n)
		if err != nil {
			return err
		}
		x.out = append(x.out, t)
		return nil
	}
	return fmt.Errorf("yaml: unsupported node kind %d at line %d", n.Kind, n.Line)
}

func keyText(n *yaml.Node) string {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return n.Value
	}
	return fmt.Sprint(v)
}

func scalarToken(n *yaml.Node) (eng.Token, error) {
	switch n.ShortTag() {
	case "!!null":
		return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return eng.Token{}, fmt.Errorf("yaml: line %d: %w", n.Line, err)
		}
		return eng.Token{Kind: eng.KindBool, Bool: b, Offset: -1}, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// Out of int64 range: keep the literal text.
			return eng.Token{Kind: eng.KindNumber, Number: n.Value, Offset: -1}, nil
		}
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(i, 10), Offset: -1}, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return eng.Token{}, fmt.Errorf("yaml: line %d: %w", n.Line, err)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1}, nil
		}
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64), Offset: -1}, nil
	}
	return eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1}, nil
}
