package sql

import "fmt"

// JoinKind selects the join keyword.
type JoinKind int

// Supported join kinds.
const (
	JoinInner JoinKind = iota
	JoinOuter
	JoinLeftOuter
	JoinRightOuter
	JoinFull
)

// Keyword returns the SQL keyword preceding JOIN.
func (k JoinKind) Keyword() string {
	switch k {
	case JoinInner:
		return "INNER"
	case JoinOuter:
		return "OUTER"
	case JoinLeftOuter:
		return "LEFT OUTER"
	case JoinRightOuter:
		return "RIGHT OUTER"
	case JoinFull:
		return "FULL"
	default:
		return fmt.Sprintf("JoinKind(%d)", int(k))
	}
}

// String implements fmt.Stringer.
func (k JoinKind) String() string { return k.Keyword() }

// JoinClause joins two from clauses with an ON condition. The left side may
// itself be a join, which renders as a chain in construction order.
type JoinClause struct {
	Kind  JoinKind
	Left  FromClause
	Right FromClause
	On    string
	alias string
}

// Join returns a join of left and right.
func Join(kind JoinKind, left, right FromClause, on string) *JoinClause {
	return &JoinClause{Kind: kind, Left: left, Right: right, On: on}
}

// As sets the alias reported by Alias. Joins render without it.
func (j *JoinClause) As(alias string) *JoinClause {
	j.alias = alias
	return j
}

// Alias implements FromClause.
func (j *JoinClause) Alias() string { return j.alias }

// IsComplex implements FromClause. Joins are never parenthesized.
func (j *JoinClause) IsComplex() bool { return false }

// Clone returns a deep copy of the join.
func (j *JoinClause) Clone() *JoinClause {
	return &JoinClause{
		Kind:  j.Kind,
		Left:  CloneFrom(j.Left),
		Right: CloneFrom(j.Right),
		On:    j.On,
		alias: j.alias,
	}
}

// BuildSQL implements Fragment.
func (j *JoinClause) BuildSQL(b *Builder, r Renderer) error {
	return r.AppendSource(b, j)
}

func (*JoinClause) fromClause() {}
