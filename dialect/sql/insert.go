package sql

// InsertStatement is an INSERT query, either of placeholder rows for a
// column list or of the rows produced by a SELECT. When both are set the
// SELECT source wins at render time.
type InsertStatement struct {
	columns []string
	table   string
	rows    int
	source  *SelectStatement
}

// Insert returns an INSERT statement over the given columns.
func Insert(columns ...string) *InsertStatement {
	return &InsertStatement{columns: append([]string(nil), columns...)}
}

// InsertFrom returns an INSERT statement fed by a SELECT.
func InsertFrom(source *SelectStatement) *InsertStatement {
	return &InsertStatement{source: source}
}

// Into sets the target table.
func (i *InsertStatement) Into(table string) *InsertStatement {
	i.table = table
	return i
}

// Columns appends columns.
func (i *InsertStatement) Columns(columns ...string) *InsertStatement {
	i.columns = append(i.columns, columns...)
	return i
}

// SetColumns replaces the column list.
func (i *InsertStatement) SetColumns(columns ...string) *InsertStatement {
	i.columns = append(i.columns[:0:0], columns...)
	return i
}

// Rows sets how many placeholder rows are inserted. With more than one row,
// placeholders are suffixed with the 0-based row index.
func (i *InsertStatement) Rows(n int) *InsertStatement {
	i.rows = n
	return i
}

// From switches the statement to insert the rows produced by source.
func (i *InsertStatement) From(source *SelectStatement) *InsertStatement {
	i.source = source
	return i
}

// Table returns the target table.
func (i *InsertStatement) Table() string { return i.table }

// ColumnsList returns a copy of the column list.
func (i *InsertStatement) ColumnsList() []string {
	return append([]string(nil), i.columns...)
}

// RowCount returns the configured row count; 0 means unset.
func (i *InsertStatement) RowCount() int { return i.rows }

// Source returns the SELECT feeding the insert, if any.
func (i *InsertStatement) Source() *SelectStatement { return i.source }

// Clone returns an independent copy, including a copy of the SELECT source.
func (i *InsertStatement) Clone() *InsertStatement {
	c := &InsertStatement{
		columns: append([]string(nil), i.columns...),
		table:   i.table,
		rows:    i.rows,
	}
	if i.source != nil {
		c.source = i.source.Clone()
	}
	return c
}

// BuildSQL implements Fragment.
func (i *InsertStatement) BuildSQL(b *Builder, r Renderer) error {
	return r.AppendInsert(b, i)
}

// ToSQL renders the statement with r, or the default renderer when r is nil.
func (i *InsertStatement) ToSQL(r Renderer) (string, error) {
	return ToSQL(i, r)
}

// String returns the statement rendered with the default renderer.
func (i *InsertStatement) String() string {
	q, _ := i.ToSQL(nil)
	return q
}
