package nestwalk

import (
	"fmt"
	"reflect"
	"strconv"

	eng "github.com/reoring/nestwalk/internal/engine"
)

// Flatten returns the non-sequence elements of v in order, descending into
// nested slices and arrays of any depth. When v is not a sequence, including
// when it is a string, the result holds v alone. Strings, byte slices and maps
// found inside v are kept whole. A nil v yields an empty slice.
func Flatten(v any) []any {
	return FlattenDepth(v, -1)
}

// FlattenDepth flattens at most depth levels of nesting below v. A negative
// depth is unlimited; zero returns the elements of v as they are.
func FlattenDepth(v any, depth int) []any {
	out := []any{}
	if v == nil {
		return out
	}
	rv := reflect.ValueOf(v)
	if !isSequence(rv) {
		return append(out, v)
	}
	return flattenInto(out, v, rv, depth)
}

func flattenInto(out []any, v any, rv reflect.Value, depth int) []any {
	if items, ok := v.([]any); ok {
		for _, e := range items {
			out = flattenElem(out, e, depth)
		}
		return out
	}
	for i := 0; i < rv.Len(); i++ {
		out = flattenElem(out, rv.Index(i).Interface(), depth)
	}
	return out
}

func flattenElem(out []any, e any, depth int) []any {
	if e == nil || depth == 0 {
		return append(out, e)
	}
	erv := reflect.ValueOf(e)
	if !isSequence(erv) {
		return append(out, e)
	}
	return flattenInto(out, e, erv, depth-1)
}

// FlattenOf flattens v and asserts every element to T. Elements of another
// type are reported as invalid_type issues carrying their JSON Pointer in v;
// all of them are collected before returning.
func FlattenOf[T any](v any) ([]T, error) {
	out := []T{}
	if v == nil {
		return out, nil
	}
	var iss Issues
	acceptNil := reflect.TypeFor[T]().Kind() == reflect.Interface
	var visit func(e any, path string)
	visit = func(e any, path string) {
		if e != nil {
			if rv := reflect.ValueOf(e); isSequence(rv) {
				for i := 0; i < rv.Len(); i++ {
					visit(rv.Index(i).Interface(), eng.JoinPointer(path, strconv.Itoa(i)))
				}
				return
			}
		}
		if e == nil && acceptNil {
			var zero T
			out = append(out, zero)
			return
		}
		t, ok := e.(T)
		if !ok {
			iss = append(iss, Issue{
				Path:    eng.DisplayPath(path),
				Code:    CodeInvalidType,
				Message: fmt.Sprintf("expected %s, got %T", reflect.TypeFor[T](), e),
				Offset:  -1,
			})
			return
		}
		out = append(out, t)
	}
	visit(v, "")
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}
