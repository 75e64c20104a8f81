package corpus

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	cerrors "github.com/FocuswithJustin/CedarScript/core/errors"
)

// DecodeOSIS parses an OSIS-style XML verse-table document into a Table.
// Verses are identified by their osisID ("Gen.1.1"); the book segment may be
// any spelling the canon package normalizes. Verses without a well-formed
// three-part osisID are skipped.
func DecodeOSIS(translation string, data []byte) (*Table, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &cerrors.ParseError{Format: "OSIS XML", Message: err.Error(), Err: err}
	}

	table := NewTable(translation)
	for _, node := range xmlquery.Find(root, "//verse[@osisID]") {
		book, chapter, verse, ok := splitOsisID(node.SelectAttr("osisID"))
		if !ok {
			continue
		}
		text := strings.TrimSpace(node.InnerText())
		if text == "" {
			continue
		}
		table.AddVerse(book, chapter, verse, text)
	}

	if err := table.Validate(); err != nil {
		return nil, cerrors.NewParse("OSIS XML", "", err.Error())
	}
	return table, nil
}

// splitOsisID parses "Book.Chapter.Verse" osisID values.
func splitOsisID(id string) (book string, chapter, verse int, ok bool) {
	parts := strings.Split(id, ".")
	if len(parts) != 3 {
		return "", 0, 0, false
	}
	chapter, err := strconv.Atoi(parts[1])
	if err != nil || chapter < 1 {
		return "", 0, 0, false
	}
	verse, err = strconv.Atoi(parts[2])
	if err != nil || verse < 1 {
		return "", 0, 0, false
	}
	return parts[0], chapter, verse, true
}
