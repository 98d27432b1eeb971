package odata

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// UnknownFieldPolicy decides what happens to selected paths missing from the
// schema.
type UnknownFieldPolicy int

const (
	// RejectUnknown fails the mapping with an UnknownFieldError.
	RejectUnknown UnknownFieldPolicy = iota
	// PassThrough maps the path as-is and logs a warning.
	PassThrough
)

// String returns the config spelling of the policy.
func (p UnknownFieldPolicy) String() string {
	switch p {
	case RejectUnknown:
		return "reject"
	case PassThrough:
		return "pass_through"
	default:
		return fmt.Sprintf("UnknownFieldPolicy(%d)", int(p))
	}
}

// ParseUnknownFieldPolicy parses "reject" or "pass_through".
func ParseUnknownFieldPolicy(s string) (UnknownFieldPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return RejectUnknown, nil
	case "pass_through", "passthrough":
		return PassThrough, nil
	default:
		return 0, NewConfigError("unknown_fields", s, "expected reject or pass_through")
	}
}

// Schema lists the properties and navigations of an entity.
type Schema struct {
	fields []string
	props  map[string]bool
	navs   map[string]*Schema
}

// NewSchema returns a schema with the given scalar properties.
func NewSchema(fields ...string) *Schema {
	s := &Schema{props: make(map[string]bool), navs: make(map[string]*Schema)}
	for _, f := range fields {
		s.addField(f)
	}
	return s
}

// Navigation adds a navigation to child and returns s.
func (s *Schema) Navigation(name string, child *Schema) *Schema {
	s.navs[name] = child
	return s
}

// HasField reports whether name is a scalar property.
func (s *Schema) HasField(name string) bool {
	return s.props[name]
}

// Nav returns the schema of the named navigation.
func (s *Schema) Nav(name string) (*Schema, bool) {
	child, ok := s.navs[name]
	return child, ok
}

// Fields returns the scalar properties in declaration order.
func (s *Schema) Fields() []string {
	return append([]string(nil), s.fields...)
}

func (s *Schema) addField(name string) {
	if !s.props[name] {
		s.props[name] = true
		s.fields = append(s.fields, name)
	}
}

// SchemaOf derives a schema from a struct value or pointer. Exported fields
// become properties, named by their `odata` tag when present ("-" skips the
// field). Struct, pointer-to-struct and slice-of-struct fields become
// navigations, except types that marshal to text such as time.Time.
func SchemaOf(v any) (*Schema, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("odata: schema of %T: expected a struct", v)
	}
	return schemaOf(t, make(map[reflect.Type]*Schema)), nil
}

var (
	textMarshaler = reflect.TypeFor[encoding.TextMarshaler]()
	timeType      = reflect.TypeFor[time.Time]()
)

func schemaOf(t reflect.Type, seen map[reflect.Type]*Schema) *Schema {
	if s, ok := seen[t]; ok {
		return s
	}
	s := NewSchema()
	seen[t] = s
	for f := range fieldsOf(t) {
		name := f.Name
		if tag, ok := f.Tag.Lookup("odata"); ok {
			if tag == "-" {
				continue
			}
			if tag = strings.Split(tag, ",")[0]; tag != "" {
				name = tag
			}
		}
		if nav := navigationType(f.Type); nav != nil {
			s.Navigation(name, schemaOf(nav, seen))
			continue
		}
		s.addField(name)
	}
	return s
}

// fieldsOf yields the exported fields of t, flattening embedded structs.
func fieldsOf(t reflect.Type) func(yield func(reflect.StructField) bool) {
	return func(yield func(reflect.StructField) bool) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				for inner := range fieldsOf(f.Type) {
					if !yield(inner) {
						return
					}
				}
				continue
			}
			if !f.IsExported() {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// navigationType returns the struct type behind a navigation field, or nil
// for scalar fields.
func navigationType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t == timeType {
		return nil
	}
	if t.Implements(textMarshaler) || reflect.PointerTo(t).Implements(textMarshaler) {
		return nil
	}
	return t
}
