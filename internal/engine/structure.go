package engine

// Structure classifies decoder tokens for tokenizers that only see delimiters
// and raw strings: a string is a key when the innermost container is an object
// waiting for one.
type Structure struct {
	stack []structFrame
}

type structFrame struct {
	object       bool
	expectingKey bool
}

// Open pushes a container.
func (s *Structure) Open(object bool) {
	s.stack = append(s.stack, structFrame{object: object, expectingKey: object})
}

// Close pops a container; the closed container counts as a value of its parent.
func (s *Structure) Close() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.Value()
}

// Value marks the pending member of the innermost object as consumed.
func (s *Structure) Value() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.object {
			top.expectingKey = true
		}
	}
}

// StringToken returns a key or string token for v.
func (s *Structure) StringToken(v string, off int64) Token {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.object && top.expectingKey {
			top.expectingKey = false
			return Token{Kind: KindKey, String: v, Offset: off}
		}
	}
	s.Value()
	return Token{Kind: KindString, String: v, Offset: off}
}
