package sql

// UpdateStatement is an UPDATE query. Without a target table it updates the
// sole FROM entry; with one it updates the target and renders the FROM list
// (with its joins) as a separate block.
type UpdateStatement struct {
	statement[*UpdateStatement]
	columns []string
	target  string
}

// Update returns an UPDATE statement setting the given columns.
func Update(columns ...string) *UpdateStatement {
	u := &UpdateStatement{columns: append([]string(nil), columns...)}
	u.self = u
	return u
}

// Table sets the update target, distinct from the FROM list.
func (u *UpdateStatement) Table(target string) *UpdateStatement {
	u.target = target
	return u
}

// Columns appends columns to the SET list.
func (u *UpdateStatement) Columns(columns ...string) *UpdateStatement {
	u.columns = append(u.columns, columns...)
	return u
}

// SetColumns replaces the SET list.
func (u *UpdateStatement) SetColumns(columns ...string) *UpdateStatement {
	u.columns = append(u.columns[:0:0], columns...)
	return u
}

// ColumnsList returns a copy of the SET list.
func (u *UpdateStatement) ColumnsList() []string {
	return append([]string(nil), u.columns...)
}

// TableToUpdate returns the update target, or "" when unset.
func (u *UpdateStatement) TableToUpdate() string { return u.target }

// Clone returns a fully independent copy of the statement.
func (u *UpdateStatement) Clone() *UpdateStatement {
	c := &UpdateStatement{
		columns: append([]string(nil), u.columns...),
		target:  u.target,
	}
	c.self = c
	c.copyFrom(&u.statement)
	return c
}

// BuildSQL implements Fragment.
func (u *UpdateStatement) BuildSQL(b *Builder, r Renderer) error {
	return r.AppendUpdate(b, u)
}

// ToSQL renders the statement with r, or the default renderer when r is nil.
func (u *UpdateStatement) ToSQL(r Renderer) (string, error) {
	return ToSQL(u, r)
}

// String returns the statement rendered with the default renderer.
func (u *UpdateStatement) String() string {
	q, _ := u.ToSQL(nil)
	return q
}
