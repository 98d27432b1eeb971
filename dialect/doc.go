// Package dialect names the SQL backends fluentsql renders for.
//
// # Supported Dialects
//
//   - Postgres: PostgreSQL
//   - MySQL: MySQL/MariaDB
//   - SQLite: SQLite
//   - SQLServer: Microsoft SQL Server 2012 and later
//
// Each dialect is identified by a constant string:
//
//	dialect.Postgres  = "postgres"
//	dialect.MySQL     = "mysql"
//	dialect.SQLite    = "sqlite"
//	dialect.SQLServer = "sqlserver"
//
// Pagination is the only rendering difference between them: SQL Server uses
// OFFSET ... ROWS / FETCH NEXT ... ROWS ONLY, the others LIMIT/OFFSET. Use
// dialect/sql.RendererFor to obtain the matching renderer:
//
//	r := sql.RendererFor(dialect.SQLServer)
//	query, err := sql.Select("u.ID").From("Users u").Limit(3).Offset(6).ToSQL(r)
//
// # Sub-packages
//
//   - dialect/sql: statement builders and renderers
package dialect
