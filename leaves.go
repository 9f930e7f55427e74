package nestwalk

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strconv"

	eng "github.com/reoring/nestwalk/internal/engine"
)

// Leaf is a scalar found while walking a document.
type Leaf struct {
	Path  string // JSON Pointer; "" for a scalar document.
	Value any    // string, json.Number, bool or nil.
}

// Leaves yields every leaf of v depth-first. Maps are descended into their
// values, slices and arrays into their elements. Strings and byte slices are
// leaves, never sequences of characters; every other value is a leaf as well.
//
// Go maps are visited in sorted key order; *OrderedMap keeps insertion order.
func Leaves(v any) iter.Seq[any] {
	return func(yield func(any) bool) {
		walkValue(v, "", false, func(_ string, leaf any) bool { return yield(leaf) })
	}
}

// LeafPaths is Leaves with the JSON Pointer of each leaf.
func LeafPaths(v any) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		walkValue(v, "", true, yield)
	}
}

// LeavesFrom walks a token Source and returns its leaves in document order.
func LeavesFrom(ctx context.Context, src Source, opts ...WalkOpt) ([]Leaf, error) {
	s := EnforceSource(src, lastOpt(opts))
	var out []Leaf
	err := eng.WalkLeaves(ctx, s, func(path string, tok Token) error {
		out = append(out, Leaf{Path: path, Value: scalarValue(tok)})
		return nil
	})
	if err != nil {
		return out, toIssues(err, s.Location())
	}
	return out, nil
}

// walkValue reports false when the consumer stopped early.
func walkValue(v any, path string, withPath bool, yield func(string, any) bool) bool {
	join := func(tok string) string {
		if !withPath {
			return ""
		}
		return eng.JoinPointer(path, tok)
	}
	switch t := v.(type) {
	case nil, string, []byte:
		return yield(path, v)
	case *OrderedMap:
		if t == nil {
			return yield(path, v)
		}
		for k, vv := range t.All() {
			if !walkValue(vv, join(k), withPath, yield) {
				return false
			}
		}
		return true
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if !walkValue(t[k], join(k), withPath, yield) {
				return false
			}
		}
		return true
	case []any:
		for i, vv := range t {
			if !walkValue(vv, join(strconv.Itoa(i)), withPath, yield) {
				return false
			}
		}
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, compareKeys)
		for _, k := range keys {
			if !walkValue(rv.MapIndex(k).Interface(), join(fmt.Sprint(k.Interface())), withPath, yield) {
				return false
			}
		}
		return true
	case reflect.Slice, reflect.Array:
		if isBytes(rv) {
			return yield(path, v)
		}
		for i := 0; i < rv.Len(); i++ {
			if !walkValue(rv.Index(i).Interface(), join(strconv.Itoa(i)), withPath, yield) {
				return false
			}
		}
		return true
	}
	return yield(path, v)
}

// isSequence reports whether v is a slice or array other than a string or a
// byte slice.
func isSequence(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return !isBytes(rv)
	}
	return false
}

func isBytes(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface && !a.IsNil() {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface && !b.IsNil() {
		b = b.Elem()
	}
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.String:
			return cmp.Compare(a.String(), b.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		}
	}
	return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}
