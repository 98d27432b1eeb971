package sql

import "fmt"

// FromClause is anything that can appear in a FROM list: a table, a join
// of two FromClauses, a sub-select or a set operation.
//
// The set of implementations is closed: *TableClause, *JoinClause,
// *SelectStatement and *SetOperation.
type FromClause interface {
	Fragment
	// Alias returns the alias used when the clause appears in a FROM list.
	Alias() string
	// IsComplex reports whether the clause is wrapped in parentheses
	// inside a FROM list.
	IsComplex() bool

	fromClause()
}

// CloneFrom returns a deep copy of the given clause. Nested joins, sub-selects
// and set operations are copied recursively. Nil clauses, typed or not, are
// returned as is.
func CloneFrom(c FromClause) FromClause {
	switch c := c.(type) {
	case nil:
		return nil
	case *TableClause:
		if c == nil {
			return c
		}
		return c.Clone()
	case *JoinClause:
		if c == nil {
			return c
		}
		return c.Clone()
	case *SelectStatement:
		if c == nil {
			return c
		}
		return c.Clone()
	case *SetOperation:
		if c == nil {
			return c
		}
		return c.Clone()
	default:
		panic(fmt.Sprintf("sql: unexpected from clause %T", c))
	}
}

// cloneFromList deep copies a list of from clauses.
func cloneFromList(list []FromClause) []FromClause {
	if list == nil {
		return nil
	}
	out := make([]FromClause, len(list))
	for i, c := range list {
		out[i] = CloneFrom(c)
	}
	return out
}

// TableClause is a plain table reference, optionally aliased.
type TableClause struct {
	name  string
	alias string
}

// Table returns a table reference. The name is used verbatim, so
// Table("Users u") and Table("Users").As("u") render the same.
func Table(name string) *TableClause {
	return &TableClause{name: name}
}

// As sets the table alias.
func (t *TableClause) As(alias string) *TableClause {
	t.alias = alias
	return t
}

// Name returns the table name.
func (t *TableClause) Name() string { return t.name }

// Alias implements FromClause.
func (t *TableClause) Alias() string { return t.alias }

// IsComplex implements FromClause. Tables are never parenthesized.
func (t *TableClause) IsComplex() bool { return false }

// Equal reports whether both clauses reference the same table name.
// Aliases are not compared.
func (t *TableClause) Equal(other *TableClause) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.name == other.name
}

// Clone returns a copy of the table clause, alias included.
func (t *TableClause) Clone() *TableClause {
	return &TableClause{name: t.name, alias: t.alias}
}

// BuildSQL implements Fragment.
func (t *TableClause) BuildSQL(b *Builder, r Renderer) error {
	return r.AppendSource(b, t)
}

// String returns the rendered table reference.
func (t *TableClause) String() string {
	s, _ := ToSQL(t, nil)
	return s
}

func (*TableClause) fromClause() {}
