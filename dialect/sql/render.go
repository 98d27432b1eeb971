package sql

import (
	"fmt"
	"strings"

	"github.com/syssam/fluentsql"
	"github.com/syssam/fluentsql/dialect"
)

// Renderer turns statements into SQL text.
//
// The Render methods return trimmed text; the Append methods write to a
// Builder so fragments compose. DefaultRenderer implements every method and
// takes its dialect differences from a Pagination strategy.
type Renderer interface {
	// Limit, Offset and LimitOffset render the pagination fragments.
	Limit(limit string) string
	Offset(offset string) string
	LimitOffset(limit, offset string) string

	// Columns renders a select list.
	Columns(columns []string) string

	RenderSelect(s *SelectStatement) (string, error)
	RenderInsert(i *InsertStatement) (string, error)
	RenderUpdate(u *UpdateStatement) (string, error)
	RenderDelete(d *DeleteStatement) (string, error)
	// RenderFrom renders a single FROM source outside of any statement.
	RenderFrom(c FromClause) (string, error)

	AppendSource(b *Builder, c FromClause) error
	AppendSelect(b *Builder, s *SelectStatement) error
	AppendInsert(b *Builder, i *InsertStatement) error
	AppendUpdate(b *Builder, u *UpdateStatement) error
	AppendDelete(b *Builder, d *DeleteStatement) error
	AppendColumns(b *Builder, columns []string)
	AppendFrom(b *Builder, tables []FromClause) error
	AppendWhere(b *Builder, where []WhereClause)
	AppendGroupBy(b *Builder, groupBy []GroupByClause)
	AppendOrderBy(b *Builder, orderBy []OrderByClause)
	AppendLimitOffset(b *Builder, limit, offset string)
}

// RenderOption configures a DefaultRenderer.
type RenderOption func(*DefaultRenderer)

// WithPagination sets the pagination strategy.
func WithPagination(p Pagination) RenderOption {
	return func(r *DefaultRenderer) {
		r.pagination = p
	}
}

// DefaultRenderer renders generic SQL. Only pagination is pluggable.
type DefaultRenderer struct {
	pagination Pagination
}

// NewRenderer returns a renderer producing LIMIT/OFFSET pagination unless
// configured otherwise.
func NewRenderer(opts ...RenderOption) *DefaultRenderer {
	r := &DefaultRenderer{pagination: LimitOffsetPagination{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewSQLServerRenderer returns a renderer using OFFSET ... ROWS /
// FETCH NEXT ... ROWS ONLY pagination.
func NewSQLServerRenderer() *DefaultRenderer {
	return NewRenderer(WithPagination(OffsetFetchPagination{}))
}

// RendererFor returns the renderer for a dialect name. Unknown dialects get
// the generic renderer.
func RendererFor(name string) Renderer {
	if dialect.Normalize(name) == dialect.SQLServer {
		return NewSQLServerRenderer()
	}
	return NewRenderer()
}

// Limit implements Renderer.
func (r *DefaultRenderer) Limit(limit string) string {
	return r.pagination.Limit(limit)
}

// Offset implements Renderer.
func (r *DefaultRenderer) Offset(offset string) string {
	return r.pagination.Offset(offset)
}

// LimitOffset implements Renderer.
func (r *DefaultRenderer) LimitOffset(limit, offset string) string {
	return r.pagination.LimitOffset(r.pagination, limit, offset)
}

// Columns renders columns on one line separated by ", ". An empty list
// renders as "*".
func (r *DefaultRenderer) Columns(columns []string) string {
	if len(columns) == 0 {
		return "*"
	}
	return strings.Join(columns, ", ")
}

// RenderSelect implements Renderer.
func (r *DefaultRenderer) RenderSelect(s *SelectStatement) (string, error) {
	return render(func(b *Builder) error { return r.AppendSelect(b, s) })
}

// RenderInsert implements Renderer.
func (r *DefaultRenderer) RenderInsert(i *InsertStatement) (string, error) {
	return render(func(b *Builder) error { return r.AppendInsert(b, i) })
}

// RenderUpdate implements Renderer.
func (r *DefaultRenderer) RenderUpdate(u *UpdateStatement) (string, error) {
	return render(func(b *Builder) error { return r.AppendUpdate(b, u) })
}

// RenderDelete implements Renderer.
func (r *DefaultRenderer) RenderDelete(d *DeleteStatement) (string, error) {
	return render(func(b *Builder) error { return r.AppendDelete(b, d) })
}

// RenderFrom implements Renderer.
func (r *DefaultRenderer) RenderFrom(c FromClause) (string, error) {
	return render(func(b *Builder) error { return r.AppendSource(b, c) })
}

func render(fn func(*Builder) error) (string, error) {
	var b Builder
	if err := fn(&b); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}

// AppendSource writes a FROM source without surrounding parentheses.
func (r *DefaultRenderer) AppendSource(b *Builder, c FromClause) error {
	if isNilSource(c) {
		return fluentsql.NewUnsupportedOperationError("render from clause", "nil source")
	}
	switch c := c.(type) {
	case *TableClause:
		b.WriteString(c.name)
		if a := strings.TrimSpace(c.alias); a != "" {
			b.WriteString(" " + a)
		}
	case *JoinClause:
		if err := r.appendOperand(b, c.Left); err != nil {
			return err
		}
		b.WriteLine("").Indent().WriteString(c.Kind.Keyword() + " JOIN ")
		if err := r.appendOperand(b, c.Right); err != nil {
			return err
		}
		b.WriteString(" ON " + c.On)
	case *SelectStatement:
		return r.AppendSelect(b, c)
	case *SetOperation:
		if err := r.appendSetQuery(b, c.Left); err != nil {
			return err
		}
		b.WriteLine("")
		b.WriteLine(c.Operator())
		b.WriteLine("")
		return r.appendSetQuery(b, c.Right)
	default:
		return fluentsql.NewUnsupportedOperationError("render from clause", fmt.Sprintf("%T", c))
	}
	return nil
}

// isNilSource reports whether c is nil or a nil pointer to one of the
// FromClause implementations.
func isNilSource(c FromClause) bool {
	switch c := c.(type) {
	case nil:
		return true
	case *TableClause:
		return c == nil
	case *JoinClause:
		return c == nil
	case *SelectStatement:
		return c == nil
	case *SetOperation:
		return c == nil
	}
	return false
}

func (r *DefaultRenderer) appendSetQuery(b *Builder, q SetQuery) error {
	if isNilSource(q) {
		return fluentsql.NewUnsupportedOperationError("render set operation", "nil operand")
	}
	if err := r.AppendSource(b, q); err != nil {
		return err
	}
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteLine("")
	}
	return nil
}

// appendOperand writes c, wrapping complex sources as "(\n...    ) alias".
func (r *DefaultRenderer) appendOperand(b *Builder, c FromClause) error {
	if isNilSource(c) || !c.IsComplex() {
		return r.AppendSource(b, c)
	}
	b.WriteLine("(")
	if err := r.AppendSource(b, c); err != nil {
		return err
	}
	b.Indent().WriteString(")")
	if a := strings.TrimSpace(c.Alias()); a != "" {
		b.WriteString(" " + a)
	}
	return nil
}

// AppendSelect writes a full SELECT: select list, FROM, WHERE, GROUP BY,
// ORDER BY and pagination, in that order.
func (r *DefaultRenderer) AppendSelect(b *Builder, s *SelectStatement) error {
	if s == nil {
		return fluentsql.NewUnsupportedOperationError("render select", "nil statement")
	}
	if err := s.Err(); err != nil {
		return err
	}
	r.AppendColumns(b, s.columns)
	if err := r.AppendFrom(b, s.tables); err != nil {
		return err
	}
	r.AppendWhere(b, s.where)
	r.AppendGroupBy(b, s.groupBy)
	r.AppendOrderBy(b, s.orderBy)
	r.AppendLimitOffset(b, s.limit, s.offset)
	return nil
}

// AppendColumns writes the SELECT keyword and the select list.
func (r *DefaultRenderer) AppendColumns(b *Builder, columns []string) {
	b.WriteLine("SELECT")
	b.Indent().WriteLine(r.Columns(columns))
}

// AppendFrom writes the FROM block, one source per line. It writes nothing
// for an empty list.
func (r *DefaultRenderer) AppendFrom(b *Builder, tables []FromClause) error {
	if len(tables) == 0 {
		return nil
	}
	b.WriteLine("FROM")
	for i, t := range tables {
		b.Indent()
		if err := r.appendOperand(b, t); err != nil {
			return err
		}
		if i < len(tables)-1 {
			b.WriteString(",")
		}
		b.WriteLine("")
	}
	return nil
}

// AppendWhere writes the WHERE block, one clause per line. Each clause but
// the last ends with the operator stored on it.
func (r *DefaultRenderer) AppendWhere(b *Builder, where []WhereClause) {
	if len(where) == 0 {
		return
	}
	b.WriteLine("WHERE")
	for i, w := range where {
		b.Indent().WriteString(w.Clause)
		switch {
		case i == len(where)-1:
		case w.Or:
			b.WriteString(" OR")
		default:
			b.WriteString(" AND")
		}
		b.WriteLine("")
	}
}

// AppendGroupBy writes the GROUP BY block.
func (r *DefaultRenderer) AppendGroupBy(b *Builder, groupBy []GroupByClause) {
	if len(groupBy) == 0 {
		return
	}
	cols := make([]string, len(groupBy))
	for i, g := range groupBy {
		cols[i] = g.Column
	}
	b.WriteLine("GROUP BY")
	b.Indent().WriteLine(strings.Join(cols, ", "))
}

// AppendOrderBy writes the ORDER BY block.
func (r *DefaultRenderer) AppendOrderBy(b *Builder, orderBy []OrderByClause) {
	if len(orderBy) == 0 {
		return
	}
	keys := make([]string, len(orderBy))
	for i, o := range orderBy {
		keys[i] = o.Column + " " + o.direction()
	}
	b.WriteLine("ORDER BY")
	b.Indent().WriteLine(strings.Join(keys, ", "))
}

// AppendLimitOffset writes the pagination fragment, if any.
func (r *DefaultRenderer) AppendLimitOffset(b *Builder, limit, offset string) {
	hasLimit, hasOffset := strings.TrimSpace(limit) != "", strings.TrimSpace(offset) != ""
	switch {
	case hasLimit && hasOffset:
		b.WriteLine(r.LimitOffset(limit, offset))
	case hasLimit:
		b.WriteLine(r.Limit(limit))
	case hasOffset:
		b.WriteLine(r.Offset(offset))
	}
}

// AppendInsert writes an INSERT statement. It fails when there is neither a
// column list nor a SELECT source.
func (r *DefaultRenderer) AppendInsert(b *Builder, i *InsertStatement) error {
	columns := i.columns
	if i.source != nil {
		columns = i.source.columns
	} else if len(columns) == 0 {
		return fluentsql.NewUnsupportedOperationError("render insert", "statement without columns or select source")
	}
	b.WriteLine(strings.TrimSpace("INSERT INTO " + i.table))
	if len(columns) > 0 {
		appendParenList(b, columns)
		b.WriteLine("")
	}
	if i.source != nil {
		return r.AppendSelect(b, i.source)
	}
	b.WriteLine("VALUES")
	rows := max(i.rows, 1)
	for row := 0; row < rows; row++ {
		suffix := ""
		if rows > 1 {
			suffix = fmt.Sprint(row)
		}
		params := make([]string, len(columns))
		for j, c := range columns {
			params[j] = "@" + c + suffix
		}
		appendParenList(b, params)
		if row < rows-1 {
			b.WriteString(",")
		}
		b.WriteLine("")
	}
	return nil
}

// appendParenList writes an indented, one-item-per-line parenthesized list
// without a trailing newline.
func appendParenList(b *Builder, items []string) {
	b.Indent().WriteLine("(")
	for i, item := range items {
		b.Indent().Indent().WriteString(item)
		if i < len(items)-1 {
			b.WriteString(",")
		}
		b.WriteLine("")
	}
	b.Indent().WriteString(")")
}

// AppendUpdate writes an UPDATE statement.
func (r *DefaultRenderer) AppendUpdate(b *Builder, u *UpdateStatement) error {
	if err := u.Err(); err != nil {
		return err
	}
	if len(u.columns) == 0 {
		return fluentsql.NewUnsupportedOperationError("render update", "statement without columns")
	}
	target, err := r.target("render update", u.target, u.tables)
	if err != nil {
		return err
	}
	b.WriteLine("UPDATE " + target)
	b.WriteLine("SET")
	for i, c := range u.columns {
		b.Indent().WriteString(c + " = @" + c)
		if i < len(u.columns)-1 {
			b.WriteString(",")
		}
		b.WriteLine("")
	}
	if u.target != "" {
		if err := r.AppendFrom(b, u.tables); err != nil {
			return err
		}
	}
	r.AppendWhere(b, u.where)
	return nil
}

// AppendDelete writes a DELETE statement.
func (r *DefaultRenderer) AppendDelete(b *Builder, d *DeleteStatement) error {
	if err := d.Err(); err != nil {
		return err
	}
	target, err := r.target("render delete", d.target, d.tables)
	if err != nil {
		return err
	}
	b.WriteLine("DELETE " + target)
	if d.target != "" {
		if err := r.AppendFrom(b, d.tables); err != nil {
			return err
		}
	}
	r.AppendWhere(b, d.where)
	return nil
}

// target resolves the table an UPDATE or DELETE acts on: the explicit target
// if set, otherwise the sole plain table of the FROM list.
func (r *DefaultRenderer) target(op, explicit string, tables []FromClause) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if len(tables) != 1 {
		return "", fluentsql.NewUnsupportedOperationError(op, fmt.Sprintf("%d tables without a target table", len(tables)))
	}
	t, ok := tables[0].(*TableClause)
	if !ok {
		return "", fluentsql.NewUnsupportedOperationError(op, fmt.Sprintf("%T without a target table", tables[0]))
	}
	var b Builder
	if err := r.AppendSource(&b, t); err != nil {
		return "", err
	}
	return b.String(), nil
}

var _ Renderer = (*DefaultRenderer)(nil)
