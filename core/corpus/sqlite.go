package corpus

import (
	"context"
	"database/sql"

	cerrors "github.com/FocuswithJustin/CedarScript/core/errors"
)

// LoadSQLite reads a verse table from a SQLite database. The database must
// have a verses table with book, chapter, verse, and text columns:
//
//	CREATE TABLE verses (
//	    book    TEXT NOT NULL,
//	    chapter INTEGER NOT NULL,
//	    verse   INTEGER NOT NULL,
//	    text    TEXT NOT NULL
//	);
func LoadSQLite(ctx context.Context, translation, path string) (*Table, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, cerrors.NewIO("open", path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT book, chapter, verse, text FROM verses")
	if err != nil {
		return nil, cerrors.NewIO("query", path, err)
	}
	defer rows.Close()

	table := NewTable(translation)
	for rows.Next() {
		var (
			book    string
			chapter int
			verse   int
			text    string
		)
		if err := rows.Scan(&book, &chapter, &verse, &text); err != nil {
			return nil, cerrors.NewIO("scan", path, err)
		}
		table.AddVerse(book, chapter, verse, text)
	}
	if err := rows.Err(); err != nil {
		return nil, cerrors.NewIO("read", path, err)
	}

	if err := table.Validate(); err != nil {
		return nil, cerrors.NewParse("SQLite", path, err.Error())
	}
	return table, nil
}
