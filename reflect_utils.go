package nestwalk

import (
	"reflect"
	"strings"
)

// fieldTag is the parsed form of a `repr:"..."` struct tag.
type fieldTag struct {
	label    string
	skip     bool
	omitZero bool
}

// resolveField applies the repr tag rule to a struct field.
// Priority: repr:"label" > field name; repr:"-" hides the field.
// The "omitzero" option drops the field while it holds its zero value.
func resolveField(sf reflect.StructField) fieldTag {
	ft := fieldTag{label: sf.Name}
	rt, ok := sf.Tag.Lookup("repr")
	if !ok {
		return ft
	}
	if rt == "-" {
		ft.skip = true
		return ft
	}
	parts := strings.Split(rt, ",")
	if name := strings.TrimSpace(parts[0]); name != "" {
		ft.label = name
	}
	for _, p := range parts[1:] {
		if strings.TrimSpace(p) == "omitzero" {
			ft.omitZero = true
		}
	}
	return ft
}

// hasExportedFields reports whether t declares at least one exported field.
func hasExportedFields(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}
