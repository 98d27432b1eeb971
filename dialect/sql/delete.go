package sql

// DeleteStatement is a DELETE query. Target semantics match UpdateStatement.
type DeleteStatement struct {
	statement[*DeleteStatement]
	target string
}

// Delete returns a DELETE statement.
func Delete() *DeleteStatement {
	d := &DeleteStatement{}
	d.self = d
	return d
}

// Table sets the delete target, distinct from the FROM list.
func (d *DeleteStatement) Table(target string) *DeleteStatement {
	d.target = target
	return d
}

// TableToDelete returns the delete target, or "" when unset.
func (d *DeleteStatement) TableToDelete() string { return d.target }

// Clone returns a fully independent copy of the statement.
func (d *DeleteStatement) Clone() *DeleteStatement {
	c := &DeleteStatement{target: d.target}
	c.self = c
	c.copyFrom(&d.statement)
	return c
}

// BuildSQL implements Fragment.
func (d *DeleteStatement) BuildSQL(b *Builder, r Renderer) error {
	return r.AppendDelete(b, d)
}

// ToSQL renders the statement with r, or the default renderer when r is nil.
func (d *DeleteStatement) ToSQL(r Renderer) (string, error) {
	return ToSQL(d, r)
}

// String returns the statement rendered with the default renderer.
func (d *DeleteStatement) String() string {
	q, _ := d.ToSQL(nil)
	return q
}
