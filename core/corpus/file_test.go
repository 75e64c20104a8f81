package corpus

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

func TestLoadFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kjv.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadFile(context.Background(), "kjv", path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if table.VerseTotal() != 3 {
		t.Errorf("VerseTotal = %d, want 3", table.VerseTotal())
	}
	if len(table.Checksum) != 64 {
		t.Errorf("Checksum length = %d, want 64 hex chars", len(table.Checksum))
	}
}

func TestLoadFileXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kjv.json.xz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w, err := xz.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(sampleJSON)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	table, err := LoadFile(context.Background(), "kjv", path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if table.VerseTotal() != 3 {
		t.Errorf("VerseTotal = %d, want 3", table.VerseTotal())
	}

	// Checksum covers the decompressed bytes, so it matches the plain load.
	plain := filepath.Join(t.TempDir(), "kjv.json")
	if err := os.WriteFile(plain, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	plainTable, err := LoadFile(context.Background(), "kjv", plain)
	if err != nil {
		t.Fatal(err)
	}
	if table.Checksum != plainTable.Checksum {
		t.Errorf("xz checksum %s != plain checksum %s", table.Checksum, plainTable.Checksum)
	}
}

func TestLoadFileOSIS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wlc.xml")
	if err := os.WriteFile(path, []byte(sampleOSIS), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadFile(context.Background(), "wlc", path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if _, ok := table.Verse("daniel", 2, 4); !ok {
		t.Error("Daniel 2:4 missing from OSIS load")
	}
}

func TestLoadFileSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kjv.db")

	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`CREATE TABLE verses (book TEXT NOT NULL, chapter INTEGER NOT NULL, verse INTEGER NOT NULL, text TEXT NOT NULL)`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`INSERT INTO verses VALUES ('Psalms', 23, 1, 'The LORD is my shepherd'), ('Psalms', 23, 2, 'He maketh me to lie down')`); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	table, err := LoadFile(context.Background(), "kjv", path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := table.VerseCount("psalms", 23); got != 2 {
		t.Errorf("VerseCount(psalms, 23) = %d, want 2", got)
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kjv.csv")
	if err := os.WriteFile(path, []byte("a,b,c"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(context.Background(), "kjv", path); err == nil {
		t.Error("LoadFile on .csv = nil error")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(context.Background(), "kjv", filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadFile on missing file = nil error")
	}
}
