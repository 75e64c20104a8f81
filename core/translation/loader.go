package translation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FocuswithJustin/CedarScript/core/corpus"
	cerrors "github.com/FocuswithJustin/CedarScript/core/errors"
)

// documentExtensions lists the document filenames tried for a translation
// id, in preference order.
var documentExtensions = []string{
	".json",
	".json.xz",
	".xml",
	".xml.xz",
	".db",
	".sqlite",
}

// DirLoader loads translation tables from documents in a directory. A
// translation id "kjv" resolves to the first of kjv.json, kjv.json.xz,
// kjv.xml, kjv.xml.xz, kjv.db, kjv.sqlite that exists.
type DirLoader struct {
	// Dir is the directory holding verse-table documents.
	Dir string
}

// Load implements Loader.
func (l DirLoader) Load(ctx context.Context, translationID string) (*corpus.Table, error) {
	if translationID == "" {
		return nil, cerrors.NewParse("translation id", "", "empty translation id")
	}
	// Reject ids that would escape the document directory.
	if filepath.Base(translationID) != translationID {
		return nil, cerrors.NewParse("translation id", "", fmt.Sprintf("invalid translation id %q", translationID))
	}

	for _, ext := range documentExtensions {
		path := filepath.Join(l.Dir, translationID+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return corpus.LoadFile(ctx, translationID, path)
	}

	return nil, cerrors.NewIO("locate", filepath.Join(l.Dir, translationID+".*"), os.ErrNotExist)
}
