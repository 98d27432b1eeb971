package sql

import "strings"

// indent prefixes every line inside a clause block.
const indent = "    "

// Builder accumulates rendered SQL text.
type Builder struct {
	sb strings.Builder
}

// WriteString appends s.
func (b *Builder) WriteString(s string) *Builder {
	b.sb.WriteString(s)
	return b
}

// WriteLine appends s followed by a newline.
func (b *Builder) WriteLine(s string) *Builder {
	b.sb.WriteString(s)
	b.sb.WriteByte('\n')
	return b
}

// Indent appends one level of indentation.
func (b *Builder) Indent() *Builder {
	b.sb.WriteString(indent)
	return b
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int { return b.sb.Len() }

// String returns the accumulated text.
func (b *Builder) String() string { return b.sb.String() }

// Fragment is implemented by every value that renders to SQL.
type Fragment interface {
	// BuildSQL appends the fragment to b using r.
	BuildSQL(b *Builder, r Renderer) error
}

// ToSQL renders f with r, or with the default renderer when r is nil.
// Leading and trailing whitespace is trimmed; inner newlines are kept.
func ToSQL(f Fragment, r Renderer) (string, error) {
	if r == nil {
		r = NewRenderer()
	}
	var b Builder
	if err := f.BuildSQL(&b, r); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}
