package sql

import "fmt"

// Pagination renders the row limiting fragments of a SELECT. It is the only
// point where dialects differ.
type Pagination interface {
	// Limit renders a limit without an offset.
	Limit(limit string) string
	// Offset renders an offset without a limit.
	Offset(offset string) string
	// LimitOffset renders both. p is the strategy installed in the renderer,
	// so a type embedding a built-in strategy and overriding only Limit or
	// Offset still has its override applied here.
	LimitOffset(p Pagination, limit, offset string) string
}

// LimitOffsetPagination renders LIMIT n OFFSET m, as understood by
// PostgreSQL, MySQL and SQLite.
type LimitOffsetPagination struct{}

// Limit implements Pagination.
func (LimitOffsetPagination) Limit(limit string) string {
	return fmt.Sprintf("LIMIT %s", limit)
}

// Offset implements Pagination.
func (LimitOffsetPagination) Offset(offset string) string {
	return fmt.Sprintf("OFFSET %s", offset)
}

// LimitOffset implements Pagination. The limit comes first.
func (LimitOffsetPagination) LimitOffset(p Pagination, limit, offset string) string {
	return p.Limit(limit) + " " + p.Offset(offset)
}

// OffsetFetchPagination renders the SQL Server 2012 OFFSET ... ROWS /
// FETCH NEXT ... ROWS ONLY form.
type OffsetFetchPagination struct{}

// Limit implements Pagination.
func (OffsetFetchPagination) Limit(limit string) string {
	return fmt.Sprintf("FETCH NEXT %s ROWS ONLY", limit)
}

// Offset implements Pagination.
func (OffsetFetchPagination) Offset(offset string) string {
	return fmt.Sprintf("OFFSET %s ROWS", offset)
}

// LimitOffset implements Pagination. The offset comes first, on its own line.
func (OffsetFetchPagination) LimitOffset(p Pagination, limit, offset string) string {
	return p.Offset(offset) + "\n" + p.Limit(limit)
}

var (
	_ Pagination = LimitOffsetPagination{}
	_ Pagination = OffsetFetchPagination{}
)
