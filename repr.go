package nestwalk

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Field is one labelled attribute rendered by Repr.
type Field struct {
	Name  string
	Value any
}

// ReprFields returns the exported fields of the struct behind v in
// declaration order, after applying `repr` tags. Pointers are followed; a
// non-struct v has no fields.
func ReprFields(v any) []Field {
	rv := indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil
	}
	var out []Field
	eachField(rv, func(label string, fv reflect.Value) {
		out = append(out, Field{Name: label, Value: fv.Interface()})
	})
	return out
}

// Repr renders v as "TypeName(a = 1, b = 2)" listing only the exported fields
// of the struct behind v, in declaration order. Methods and unexported fields
// never appear. Field values print as text with strings unquoted; nested
// structs render recursively, nil pointers as "nil" and a pointer, map or
// slice that contains itself as "<cycle>". Values that are not structs fall
// back to fmt.Sprint.
//
// Types can implement fmt.Stringer with it:
//
//	func (f Foo) String() string { return nestwalk.Repr(f) }
func Repr(v any) string {
	rv := reflect.ValueOf(v)
	sv := indirect(rv)
	if sv.Kind() != reflect.Struct {
		return fmt.Sprint(v)
	}
	p := reprPrinter{seen: make(map[visit]bool)}
	for rv.Kind() == reflect.Pointer {
		p.seen[visit{rv.Pointer(), rv.Type()}] = true
		rv = rv.Elem()
	}
	// The root is always expanded here, never through fmt, so a String
	// method that calls Repr cannot recurse.
	p.structValue(sv)
	return p.b.String()
}

type reprPrinter struct {
	b    strings.Builder
	seen map[visit]bool
}

// visit identifies a reference on the current path. The type is part of the
// key because a slice and a pointer to its first element share an address.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

// enter marks the reference rv as being rendered. It reports false, after
// writing "<cycle>", when rv is already on the current path.
func (p *reprPrinter) enter(rv reflect.Value) (visit, bool) {
	key := visit{rv.Pointer(), rv.Type()}
	if p.seen[key] {
		p.b.WriteString("<cycle>")
		return key, false
	}
	p.seen[key] = true
	return key, true
}

// value writes rv; quoted selects repr-style quoting for strings found inside
// containers.
func (p *reprPrinter) value(rv reflect.Value, quoted bool) {
	switch rv.Kind() {
	case reflect.Invalid:
		p.b.WriteString("nil")
	case reflect.Pointer:
		if rv.IsNil() {
			p.b.WriteString("nil")
			return
		}
		key, ok := p.enter(rv)
		if !ok {
			return
		}
		p.value(rv.Elem(), quoted)
		delete(p.seen, key)
	case reflect.Interface:
		if rv.IsNil() {
			p.b.WriteString("nil")
			return
		}
		p.value(rv.Elem(), quoted)
	case reflect.Struct:
		if !hasExportedFields(rv.Type()) {
			p.b.WriteString(fmt.Sprint(rv.Interface()))
			return
		}
		p.structValue(rv)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			p.b.WriteString("[]")
			return
		}
		if isBytes(rv) {
			p.b.WriteString(strconv.Quote(string(rv.Bytes())))
			return
		}
		if rv.Kind() == reflect.Slice && rv.Len() > 0 {
			key, ok := p.enter(rv)
			if !ok {
				return
			}
			defer delete(p.seen, key)
		}
		p.b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				p.b.WriteString(", ")
			}
			p.value(rv.Index(i), true)
		}
		p.b.WriteByte(']')
	case reflect.Map:
		if rv.IsNil() {
			p.b.WriteString("{}")
			return
		}
		key, ok := p.enter(rv)
		if !ok {
			return
		}
		defer delete(p.seen, key)
		keys := rv.MapKeys()
		slices.SortFunc(keys, compareKeys)
		p.b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				p.b.WriteString(", ")
			}
			p.value(k, true)
			p.b.WriteString(": ")
			p.value(rv.MapIndex(k), true)
		}
		p.b.WriteByte('}')
	case reflect.String:
		if quoted {
			p.b.WriteString(strconv.Quote(rv.String()))
			return
		}
		p.b.WriteString(fmt.Sprint(rv.Interface()))
	default:
		p.b.WriteString(fmt.Sprint(rv.Interface()))
	}
}

func (p *reprPrinter) structValue(rv reflect.Value) {
	name := rv.Type().Name()
	if name == "" {
		name = "struct"
	}
	p.b.WriteString(name)
	p.b.WriteByte('(')
	first := true
	eachField(rv, func(label string, fv reflect.Value) {
		if !first {
			p.b.WriteString(", ")
		}
		first = false
		p.b.WriteString(label)
		p.b.WriteString(" = ")
		p.value(fv, false)
	})
	p.b.WriteByte(')')
}

func eachField(rv reflect.Value, fn func(label string, fv reflect.Value)) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		ft := resolveField(sf)
		if ft.skip {
			continue
		}
		fv := rv.Field(i)
		if ft.omitZero && fv.IsZero() {
			continue
		}
		fn(ft.label, fv)
	}
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}
