package dialect

import "strings"

// Dialect names for supported SQL backends.
const (
	MySQL     = "mysql"
	SQLite    = "sqlite"
	Postgres  = "postgres"
	SQLServer = "sqlserver"
)

// Normalize maps common driver names and spellings onto a dialect constant.
// Unknown names are returned lower-cased and trimmed.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "sqlite3":
		return SQLite
	case "postgresql", "pgx":
		return Postgres
	case "mssql", "sqlserver2012":
		return SQLServer
	}
	return n
}

// IsSupported reports whether name identifies a known dialect.
func IsSupported(name string) bool {
	switch Normalize(name) {
	case MySQL, SQLite, Postgres, SQLServer:
		return true
	}
	return false
}
