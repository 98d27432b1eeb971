// Package sql provides fluent builders for SQL statements and the renderers
// that turn them into text.
//
// Statements are assembled from trusted string fragments; the package does
// not parse, validate or quote them.
//
// # Builder Types
//
//   - SelectStatement: SELECT with FROM, WHERE, GROUP BY, ORDER BY and pagination
//   - InsertStatement: INSERT of placeholder rows or of a SELECT
//   - UpdateStatement: UPDATE with an optional target distinct from the FROM list
//   - DeleteStatement: DELETE with the same target rules as UPDATE
//
// # FROM Sources
//
// A FromClause is a table, a join of two sources, a sub-select or a set
// operation. Joins are built against the last entry of a statement's FROM
// list:
//
//	s := sql.Select("u.ID", "t.Name").
//		From("Users u").
//		InnerJoin(sql.Table("Teams t"), "u.TeamID = t.ID").
//		Where("t.IsOld = FALSE").
//		OrderByDesc("u.ID").
//		Limit(10)
//
//	query, err := s.ToSQL(nil)
//
// Sub-selects and set operations are parenthesized and aliased when used as
// a source:
//
//	union := sql.Select("ID").From("Users").UnionAll(sql.Select("ID").From("Teams"))
//	outer := sql.Select("*").FromSources(union.As("Sub"))
//
// # Errors
//
// Builder methods never fail. Misuse, such as joining before any table was
// added, is recorded on the statement and returned by Err and ToSQL.
//
// # Dialects
//
// Renderers differ only in pagination. NewRenderer writes LIMIT/OFFSET;
// NewSQLServerRenderer writes OFFSET ... ROWS / FETCH NEXT ... ROWS ONLY.
// RendererFor picks one from a dialect name:
//
//	r := sql.RendererFor(dialect.SQLServer)
//	query, err := r.RenderSelect(s)
package sql
