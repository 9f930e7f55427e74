package engine

import (
	"strconv"
	"strings"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	path         string
	expectingKey bool
	key          string
	next         int
	keys         map[string]struct{}
}

// Tracker follows container nesting in a token stream and yields the JSON
// Pointer of every value. The zero value is ready to use.
type Tracker struct {
	stack []frame
}

// Depth returns the number of open containers.
func (t *Tracker) Depth() int { return len(t.stack) }

// Advance records tok and returns its path. Values get their own pointer,
// keys get the pointer of the member they introduce, and end tokens get the
// pointer of the container they close.
func (t *Tracker) Advance(tok Token) string {
	var path string
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		switch tok.Kind {
		case KindKey:
			top.key = tok.String
			top.expectingKey = false
			return JoinPointer(top.path, tok.String)
		case KindEndObject, KindEndArray:
			path = top.path
			t.stack = t.stack[:n-1]
			t.valueDone()
			return path
		}
		if top.kind == kindArray {
			path = JoinPointer(top.path, strconv.Itoa(top.next))
			top.next++
		} else {
			path = JoinPointer(top.path, top.key)
		}
	}
	switch tok.Kind {
	case KindBeginObject:
		t.stack = append(t.stack, frame{kind: kindObject, path: path, expectingKey: true})
	case KindBeginArray:
		t.stack = append(t.stack, frame{kind: kindArray, path: path})
	default:
		t.valueDone()
	}
	return path
}

// NoteKey records key in the innermost object and reports whether it was
// already present. It must be called before Advance for the same token.
func (t *Tracker) NoteKey(key string) bool {
	n := len(t.stack)
	if n == 0 || t.stack[n-1].kind != kindObject {
		return false
	}
	top := &t.stack[n-1]
	if top.keys == nil {
		top.keys = make(map[string]struct{})
	}
	if _, ok := top.keys[key]; ok {
		return true
	}
	top.keys[key] = struct{}{}
	return false
}

func (t *Tracker) valueDone() {
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		if top.kind == kindObject {
			top.expectingKey = true
			top.key = ""
		}
	}
}

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// JoinPointer appends an escaped reference token to a JSON Pointer.
func JoinPointer(base, token string) string {
	return base + "/" + jsonPointerEscaper.Replace(token)
}

// DisplayPath renders the root pointer as "/" for messages.
func DisplayPath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
