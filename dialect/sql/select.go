package sql

import "strconv"

// SelectStatement is a SELECT query. It is also a FromClause (rendered as a
// parenthesized sub-select) and a SetQuery.
type SelectStatement struct {
	statement[*SelectStatement]
	columns []string
	groupBy []GroupByClause
	orderBy []OrderByClause
	limit   string
	offset  string
	alias   string
}

// Select returns a SELECT statement over the given columns.
func Select(columns ...string) *SelectStatement {
	s := &SelectStatement{columns: append([]string(nil), columns...)}
	s.self = s
	return s
}

// Columns appends columns to the select list. Duplicates are kept.
func (s *SelectStatement) Columns(columns ...string) *SelectStatement {
	s.columns = append(s.columns, columns...)
	return s
}

// SetColumns replaces the select list.
func (s *SelectStatement) SetColumns(columns ...string) *SelectStatement {
	s.columns = append(s.columns[:0:0], columns...)
	return s
}

// GroupBy appends GROUP BY columns.
func (s *SelectStatement) GroupBy(columns ...string) *SelectStatement {
	for _, c := range columns {
		s.groupBy = append(s.groupBy, GroupBy(c))
	}
	return s
}

// GroupByClauses appends GROUP BY keys.
func (s *SelectStatement) GroupByClauses(clauses ...GroupByClause) *SelectStatement {
	s.groupBy = append(s.groupBy, clauses...)
	return s
}

// ClearGroupBy removes all GROUP BY keys.
func (s *SelectStatement) ClearGroupBy() *SelectStatement {
	s.groupBy = nil
	return s
}

// OrderBy appends an ascending ORDER BY key. Repeated calls build a
// multi-key ORDER BY in call order.
func (s *SelectStatement) OrderBy(column string) *SelectStatement {
	return s.OrderByClauses(Asc(column))
}

// OrderByDesc appends a descending ORDER BY key.
func (s *SelectStatement) OrderByDesc(column string) *SelectStatement {
	return s.OrderByClauses(Desc(column))
}

// OrderByClauses appends ORDER BY keys.
func (s *SelectStatement) OrderByClauses(clauses ...OrderByClause) *SelectStatement {
	s.orderBy = append(s.orderBy, clauses...)
	return s
}

// ClearOrderBy removes all ORDER BY keys.
func (s *SelectStatement) ClearOrderBy() *SelectStatement {
	s.orderBy = nil
	return s
}

// Limit sets the row limit.
func (s *SelectStatement) Limit(n int) *SelectStatement {
	return s.LimitExpr(strconv.Itoa(n))
}

// LimitExpr sets the row limit to a raw expression, e.g. a parameter name.
func (s *SelectStatement) LimitExpr(expr string) *SelectStatement {
	s.limit = expr
	return s
}

// ClearLimit removes the row limit.
func (s *SelectStatement) ClearLimit() *SelectStatement {
	s.limit = ""
	return s
}

// Offset sets the number of rows to skip.
func (s *SelectStatement) Offset(n int) *SelectStatement {
	return s.OffsetExpr(strconv.Itoa(n))
}

// OffsetExpr sets the offset to a raw expression.
func (s *SelectStatement) OffsetExpr(expr string) *SelectStatement {
	s.offset = expr
	return s
}

// ClearOffset removes the offset.
func (s *SelectStatement) ClearOffset() *SelectStatement {
	s.offset = ""
	return s
}

// As sets the alias used when the statement is a FROM source.
func (s *SelectStatement) As(alias string) *SelectStatement {
	s.alias = alias
	return s
}

// ColumnsList returns a copy of the select list.
func (s *SelectStatement) ColumnsList() []string {
	return append([]string(nil), s.columns...)
}

// GroupByList returns a copy of the GROUP BY keys.
func (s *SelectStatement) GroupByList() []GroupByClause {
	return append([]GroupByClause(nil), s.groupBy...)
}

// OrderByList returns a copy of the ORDER BY keys.
func (s *SelectStatement) OrderByList() []OrderByClause {
	return append([]OrderByClause(nil), s.orderBy...)
}

// LimitClause returns the limit expression, or "" when unset.
func (s *SelectStatement) LimitClause() string { return s.limit }

// OffsetClause returns the offset expression, or "" when unset.
func (s *SelectStatement) OffsetClause() string { return s.offset }

// Alias implements FromClause.
func (s *SelectStatement) Alias() string { return s.alias }

// IsComplex implements FromClause. A sub-select is always parenthesized.
func (s *SelectStatement) IsComplex() bool { return true }

// Clone returns a fully independent copy of the statement.
func (s *SelectStatement) Clone() *SelectStatement {
	c := &SelectStatement{
		columns: append([]string(nil), s.columns...),
		groupBy: cloneGroupBy(s.groupBy),
		orderBy: cloneOrderBy(s.orderBy),
		limit:   s.limit,
		offset:  s.offset,
		alias:   s.alias,
	}
	c.self = c
	c.copyFrom(&s.statement)
	return c
}

// ToCount derives a COUNT(*) statement with the same tables, conditions and
// grouping. Ordering, limit, offset and alias are dropped; s is not modified.
func (s *SelectStatement) ToCount() *SelectStatement {
	c := &SelectStatement{
		columns: []string{"COUNT(*)"},
		groupBy: cloneGroupBy(s.groupBy),
	}
	c.self = c
	c.copyFrom(&s.statement)
	return c
}

// Union returns s UNION other.
func (s *SelectStatement) Union(other SetQuery) *SetOperation {
	return NewSetOperation(SetUnion, s, other, false)
}

// UnionAll returns s UNION ALL other.
func (s *SelectStatement) UnionAll(other SetQuery) *SetOperation {
	return NewSetOperation(SetUnion, s, other, true)
}

// Intersect returns s INTERSECT other.
func (s *SelectStatement) Intersect(other SetQuery) *SetOperation {
	return NewSetOperation(SetIntersect, s, other, false)
}

// IntersectAll returns s INTERSECT ALL other.
func (s *SelectStatement) IntersectAll(other SetQuery) *SetOperation {
	return NewSetOperation(SetIntersect, s, other, true)
}

// Except returns s EXCEPT other.
func (s *SelectStatement) Except(other SetQuery) *SetOperation {
	return NewSetOperation(SetExcept, s, other, false)
}

// ExceptAll returns s EXCEPT ALL other.
func (s *SelectStatement) ExceptAll(other SetQuery) *SetOperation {
	return NewSetOperation(SetExcept, s, other, true)
}

// BuildSQL implements Fragment.
func (s *SelectStatement) BuildSQL(b *Builder, r Renderer) error {
	return r.AppendSource(b, s)
}

// ToSQL renders the statement with r, or the default renderer when r is nil.
func (s *SelectStatement) ToSQL(r Renderer) (string, error) {
	return ToSQL(s, r)
}

// String returns the statement rendered with the default renderer.
func (s *SelectStatement) String() string {
	q, _ := s.ToSQL(nil)
	return q
}

func (*SelectStatement) fromClause() {}
func (*SelectStatement) setQuery()   {}

func cloneGroupBy(list []GroupByClause) []GroupByClause {
	if list == nil {
		return nil
	}
	out := make([]GroupByClause, len(list))
	for i, g := range list {
		out[i] = g.Clone()
	}
	return out
}

func cloneOrderBy(list []OrderByClause) []OrderByClause {
	if list == nil {
		return nil
	}
	out := make([]OrderByClause, len(list))
	for i, o := range list {
		out[i] = o.Clone()
	}
	return out
}
