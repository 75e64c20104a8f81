//go:build !cgo_sqlite

package corpus

import (
	_ "modernc.org/sqlite" // Pure Go SQLite driver (default)
)

const sqliteDriverName = "sqlite"
