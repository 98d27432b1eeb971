package sql

import "fmt"

// SetQuery is a query usable on either side of UNION, INTERSECT or EXCEPT:
// a *SelectStatement or another *SetOperation.
type SetQuery interface {
	FromClause
	setQuery()
}

// SetOpKind selects the set operator.
type SetOpKind int

// Supported set operators.
const (
	SetUnion SetOpKind = iota
	SetIntersect
	SetExcept
)

// String implements fmt.Stringer.
func (k SetOpKind) String() string {
	switch k {
	case SetUnion:
		return "UNION"
	case SetIntersect:
		return "INTERSECT"
	case SetExcept:
		return "EXCEPT"
	default:
		return fmt.Sprintf("SetOpKind(%d)", int(k))
	}
}

// SetOperation combines two set queries. Operations chain left-associatively:
// a.Union(b).Intersect(c) is (a UNION b) INTERSECT c.
type SetOperation struct {
	Kind  SetOpKind
	All   bool
	Left  SetQuery
	Right SetQuery
	alias string
}

// NewSetOperation returns a set operation over left and right.
func NewSetOperation(kind SetOpKind, left, right SetQuery, all bool) *SetOperation {
	return &SetOperation{Kind: kind, All: all, Left: left, Right: right}
}

// Operator returns the rendered operator, e.g. "UNION ALL".
func (s *SetOperation) Operator() string {
	if s.All {
		return s.Kind.String() + " ALL"
	}
	return s.Kind.String()
}

// Union returns s UNION other.
func (s *SetOperation) Union(other SetQuery) *SetOperation {
	return NewSetOperation(SetUnion, s, other, false)
}

// UnionAll returns s UNION ALL other.
func (s *SetOperation) UnionAll(other SetQuery) *SetOperation {
	return NewSetOperation(SetUnion, s, other, true)
}

// Intersect returns s INTERSECT other.
func (s *SetOperation) Intersect(other SetQuery) *SetOperation {
	return NewSetOperation(SetIntersect, s, other, false)
}

// IntersectAll returns s INTERSECT ALL other.
func (s *SetOperation) IntersectAll(other SetQuery) *SetOperation {
	return NewSetOperation(SetIntersect, s, other, true)
}

// Except returns s EXCEPT other.
func (s *SetOperation) Except(other SetQuery) *SetOperation {
	return NewSetOperation(SetExcept, s, other, false)
}

// ExceptAll returns s EXCEPT ALL other.
func (s *SetOperation) ExceptAll(other SetQuery) *SetOperation {
	return NewSetOperation(SetExcept, s, other, true)
}

// As sets the alias used when the operation is a FROM source.
func (s *SetOperation) As(alias string) *SetOperation {
	s.alias = alias
	return s
}

// Alias implements FromClause.
func (s *SetOperation) Alias() string { return s.alias }

// IsComplex implements FromClause. Set operations are always parenthesized
// inside a FROM list.
func (s *SetOperation) IsComplex() bool { return true }

// Clone returns a deep copy of the operation and both operands.
func (s *SetOperation) Clone() *SetOperation {
	return &SetOperation{
		Kind:  s.Kind,
		All:   s.All,
		Left:  cloneSetQuery(s.Left),
		Right: cloneSetQuery(s.Right),
		alias: s.alias,
	}
}

// BuildSQL implements Fragment.
func (s *SetOperation) BuildSQL(b *Builder, r Renderer) error {
	return r.AppendSource(b, s)
}

// ToSQL renders the operation with r, or the default renderer when r is nil.
func (s *SetOperation) ToSQL(r Renderer) (string, error) {
	return ToSQL(s, r)
}

// String returns the operation rendered with the default renderer.
func (s *SetOperation) String() string {
	q, _ := s.ToSQL(nil)
	return q
}

func (*SetOperation) fromClause() {}
func (*SetOperation) setQuery()   {}

func cloneSetQuery(q SetQuery) SetQuery {
	if q == nil {
		return nil
	}
	return CloneFrom(q).(SetQuery)
}
