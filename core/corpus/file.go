package corpus

import (
	"context"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	cerrors "github.com/FocuswithJustin/CedarScript/core/errors"
)

// LoadFile loads a verse-table document, dispatching on the file extension:
//
//	.json            nested JSON document
//	.xml             OSIS-style XML document
//	.json.xz/.xml.xz xz-compressed variants of the above
//	.db/.sqlite      SQLite database
//
// JSON and XML tables record a blake3 checksum of the decompressed document
// bytes so callers can fingerprint what was loaded.
func LoadFile(ctx context.Context, translation, path string) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, translation, path)
	}

	data, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(strings.TrimSuffix(path, ".xz"))
	var table *Table
	switch {
	case strings.HasSuffix(name, ".json"):
		table, err = DecodeJSON(translation, data)
	case strings.HasSuffix(name, ".xml"):
		table, err = DecodeOSIS(translation, data)
	default:
		return nil, cerrors.NewParse("document", path, "unsupported document extension")
	}
	if err != nil {
		return nil, err
	}

	sum := blake3.Sum256(data)
	table.Checksum = hex.EncodeToString(sum[:])
	return table, nil
}

// readDocument reads a document file, transparently decompressing .xz.
func readDocument(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cerrors.NewIO("open", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, cerrors.NewParse("xz", path, err.Error())
		}
		r = xr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, cerrors.NewIO("read", path, err)
	}
	return data, nil
}
