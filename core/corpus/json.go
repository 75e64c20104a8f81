package corpus

import (
	"encoding/json"

	cerrors "github.com/FocuswithJustin/CedarScript/core/errors"
)

// jsonDocument is the nested verse-table document shape:
//
//	{
//	  "translation": "ESV: English Standard Version",
//	  "books": [
//	    {"name": "Genesis", "chapters": [
//	      {"chapter": 1, "verses": [{"verse": 1, "text": "..."}]}
//	    ]}
//	  ]
//	}
type jsonDocument struct {
	Translation string     `json:"translation"`
	Books       []jsonBook `json:"books"`
}

type jsonBook struct {
	Name     string        `json:"name"`
	Chapters []jsonChapter `json:"chapters"`
}

type jsonChapter struct {
	Chapter int         `json:"chapter"`
	Verses  []jsonVerse `json:"verses"`
}

type jsonVerse struct {
	Verse int    `json:"verse"`
	Text  string `json:"text"`
}

// DecodeJSON parses a nested JSON verse-table document into a Table for the
// given translation id. The document's own translation label is ignored for
// keying; the caller-supplied id is authoritative.
func DecodeJSON(translation string, data []byte) (*Table, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &cerrors.ParseError{Format: "JSON", Message: err.Error(), Err: err}
	}

	table := NewTable(translation)
	for _, book := range doc.Books {
		for _, chapter := range book.Chapters {
			for _, verse := range chapter.Verses {
				table.AddVerse(book.Name, chapter.Chapter, verse.Verse, verse.Text)
			}
		}
	}

	if err := table.Validate(); err != nil {
		return nil, cerrors.NewParse("JSON", "", err.Error())
	}
	return table, nil
}
