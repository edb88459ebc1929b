package database

import "strings"

// Driver identifies a supported store backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// DriverFor picks the backend from a DATABASE_URL value. Anything that is not
// a postgres URL is treated as a SQLite location.
func DriverFor(databaseURL string) Driver {
	lower := strings.ToLower(strings.TrimSpace(databaseURL))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// SQLitePath strips the optional "sqlite://" and "file:" prefixes and any
// query string, leaving the file path.
func SQLitePath(databaseURL string) string {
	p := strings.TrimSpace(databaseURL)
	p = strings.TrimPrefix(p, "sqlite://")
	p = strings.TrimPrefix(p, "file:")
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	return p
}
