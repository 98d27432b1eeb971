// Package fluentsql holds the error taxonomy and caching primitives shared by
// the fluentsql packages.
//
// SQL statements are built with the dialect/sql package:
//
//	import "github.com/syssam/fluentsql/dialect/sql"
//
//	q := sql.Select("u.ID", "u.Name").
//	    From("Users u").
//	    InnerJoin(sql.Table("Teams t"), "u.TeamID = t.ID").
//	    Where("u.IsCool = TRUE").
//	    OrderByDesc("u.Name").
//	    Limit(10)
//	query, err := q.ToSQL(nil)
//
// Builder misuse is reported with errors matching ErrInvalidOperation and
// statements that cannot be rendered with errors matching
// ErrUnsupportedOperation:
//
//	if fluentsql.IsInvalidOperation(err) {
//	    // a join was requested before From
//	}
//
// The odata package maps structured query options ($select, $expand, $top,
// $skip, $count) onto SELECT statements.
package fluentsql
