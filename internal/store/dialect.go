package store

import (
	"strconv"
	"strings"
)

// dialect captures the differences between the supported engines.
// Queries throughout the package are written with ? placeholders and
// passed through bind before execution.
type dialect struct {
	name        string
	driver      string
	schema      string
	tableExists string // one ? placeholder: the table name
	bind        func(query string) string
}

var sqliteDialect = dialect{
	name:        "sqlite",
	driver:      "sqlite",
	schema:      sqliteSchemaSQL,
	tableExists: "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?",
	bind:        func(query string) string { return query },
}

var postgresDialect = dialect{
	name:        "postgres",
	driver:      "postgres",
	schema:      postgresSchemaSQL,
	tableExists: "SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?",
	bind:        rebind,
}

// dialectFor picks the engine from the database URL. Anything that is
// not a postgres URL is treated as a SQLite file path.
func dialectFor(dbURL string) dialect {
	if strings.HasPrefix(dbURL, "postgres://") || strings.HasPrefix(dbURL, "postgresql://") {
		return postgresDialect
	}
	return sqliteDialect
}

// rebind rewrites ? placeholders to the $1..$n form lib/pq expects.
func rebind(query string) string {
	if !strings.ContainsRune(query, '?') {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
