package sql

import (
	"github.com/syssam/fluentsql"
)

// statement holds the FROM list and WHERE list shared by SELECT, UPDATE and
// DELETE. T is the concrete statement returned by fluent methods.
type statement[T any] struct {
	self   T
	tables []FromClause
	where  []WhereClause
	errs   []error
}

// copyFrom deep copies the shared state of other into s.
func (s *statement[T]) copyFrom(other *statement[T]) {
	s.tables = cloneFromList(other.tables)
	if other.where != nil {
		s.where = make([]WhereClause, len(other.where))
		for i, w := range other.where {
			s.where[i] = w.Clone()
		}
	}
	s.errs = append([]error(nil), other.errs...)
}

// From appends one table per name to the FROM list.
func (s *statement[T]) From(names ...string) T {
	for _, n := range names {
		s.tables = append(s.tables, Table(n))
	}
	return s.self
}

// FromSources appends the given clauses to the FROM list.
func (s *statement[T]) FromSources(sources ...FromClause) T {
	s.tables = append(s.tables, sources...)
	return s.self
}

// Where appends a condition joined to the next one with AND.
func (s *statement[T]) Where(clause string) T {
	s.where = append(s.where, WhereClause{Clause: clause})
	return s.self
}

// WhereOr appends a condition joined to the next one with OR.
func (s *statement[T]) WhereOr(clause string) T {
	s.where = append(s.where, WhereClause{Clause: clause, Or: true})
	return s.self
}

// WhereClauses appends the given conditions as-is.
func (s *statement[T]) WhereClauses(clauses ...WhereClause) T {
	s.where = append(s.where, clauses...)
	return s.self
}

// TransformLastTable replaces the last FROM entry with fn(last).
// Calling it on an empty FROM list records an invalid operation error.
func (s *statement[T]) TransformLastTable(fn func(FromClause) FromClause) T {
	s.transformLast("TransformLastTable", fn)
	return s.self
}

func (s *statement[T]) transformLast(op string, fn func(FromClause) FromClause) {
	if len(s.tables) == 0 {
		s.AddError(fluentsql.NewInvalidOperationError(op, "cannot transform an empty FROM clause"))
		return
	}
	i := len(s.tables) - 1
	s.tables[i] = fn(s.tables[i])
}

func (s *statement[T]) join(op string, kind JoinKind, right FromClause, on string) T {
	s.transformLast(op, func(last FromClause) FromClause {
		return Join(kind, last, right, on)
	})
	return s.self
}

// InnerJoin joins right to the last FROM entry with INNER JOIN.
func (s *statement[T]) InnerJoin(right FromClause, on string) T {
	return s.join("InnerJoin", JoinInner, right, on)
}

// OuterJoin joins right to the last FROM entry with OUTER JOIN.
func (s *statement[T]) OuterJoin(right FromClause, on string) T {
	return s.join("OuterJoin", JoinOuter, right, on)
}

// LeftOuterJoin joins right to the last FROM entry with LEFT OUTER JOIN.
func (s *statement[T]) LeftOuterJoin(right FromClause, on string) T {
	return s.join("LeftOuterJoin", JoinLeftOuter, right, on)
}

// RightOuterJoin joins right to the last FROM entry with RIGHT OUTER JOIN.
func (s *statement[T]) RightOuterJoin(right FromClause, on string) T {
	return s.join("RightOuterJoin", JoinRightOuter, right, on)
}

// FullJoin joins right to the last FROM entry with FULL JOIN.
func (s *statement[T]) FullJoin(right FromClause, on string) T {
	return s.join("FullJoin", JoinFull, right, on)
}

// JoinTable joins the named table to the last FROM entry. Like From, the
// name is wrapped with Table:
//
//	sql.Select("*").From("Users u").JoinTable(sql.JoinInner, "Teams t", "u.TeamID = t.ID")
func (s *statement[T]) JoinTable(kind JoinKind, name, on string) T {
	return s.join("JoinTable", kind, Table(name), on)
}

// Tables returns a deep copy of the FROM list. Use TransformLastTable to
// change the statement's own sources.
func (s *statement[T]) Tables() []FromClause {
	return cloneFromList(s.tables)
}

// WhereList returns a copy of the WHERE list.
func (s *statement[T]) WhereList() []WhereClause {
	return append([]WhereClause(nil), s.where...)
}

// AddError records an error reported by Err and ToSQL.
func (s *statement[T]) AddError(err error) T {
	if err != nil {
		s.errs = append(s.errs, err)
	}
	return s.self
}

// Err returns the errors recorded while building the statement, if any.
func (s *statement[T]) Err() error {
	return fluentsql.NewAggregateError(s.errs...)
}
