package sql

// WhereClause is a single condition of a WHERE block.
//
// Or describes the operator joining this clause to the next one in the
// list, not a property of the clause itself; it is ignored on the last clause.
type WhereClause struct {
	Clause string
	Or     bool
}

// Clone returns a copy of the clause.
func (w WhereClause) Clone() WhereClause {
	return WhereClause{Clause: w.Clause, Or: w.Or}
}

// OrderByClause is a single ORDER BY key.
type OrderByClause struct {
	Column string
	Asc    bool
}

// Asc returns an ascending ORDER BY key.
func Asc(column string) OrderByClause {
	return OrderByClause{Column: column, Asc: true}
}

// Desc returns a descending ORDER BY key.
func Desc(column string) OrderByClause {
	return OrderByClause{Column: column}
}

// Clone returns a copy of the clause.
func (o OrderByClause) Clone() OrderByClause {
	return OrderByClause{Column: o.Column, Asc: o.Asc}
}

// direction returns the SQL keyword for the sort direction.
func (o OrderByClause) direction() string {
	if o.Asc {
		return "ASC"
	}
	return "DESC"
}

// GroupByClause is a single GROUP BY key.
type GroupByClause struct {
	Column string
}

// GroupBy returns a GROUP BY key for the given column.
func GroupBy(column string) GroupByClause {
	return GroupByClause{Column: column}
}

// Clone returns a copy of the clause.
func (g GroupByClause) Clone() GroupByClause {
	return GroupByClause{Column: g.Column}
}
