// Package refs parses human-entered scripture references ("Genesis 1:1",
// "Ps 23", "Dan.2.4", "Psalms 23:1-3") into canonical book/chapter/verse
// coordinates. Book names are resolved against the canonical catalog, so
// OSIS abbreviations and numbered-book spellings all land on one id.
package refs

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/CedarScript/core/canon"
	cerrors "github.com/FocuswithJustin/CedarScript/core/errors"
)

// Ref is a single-verse reference. Chapter and Verse are zero when the
// reference names only a book or only a chapter.
type Ref struct {
	Book    string // canonical book id, e.g. "psalms"
	Chapter int
	Verse   int
}

// String renders the reference with the catalog's display name.
func (r Ref) String() string {
	name := r.Book
	if b, ok := canon.Lookup(r.Book); ok {
		name = b.Name
	}
	switch {
	case r.Chapter == 0:
		return name
	case r.Verse == 0:
		return fmt.Sprintf("%s %d", name, r.Chapter)
	default:
		return fmt.Sprintf("%s %d:%d", name, r.Chapter, r.Verse)
	}
}

// Range is a parsed reference that may span verses or chapters. End fields
// are zero for single points.
type Range struct {
	Book         string // canonical book id
	ChapterStart int
	VerseStart   int
	ChapterEnd   int
	VerseEnd     int
}

// Start returns the range's starting point as a Ref.
func (r Range) Start() Ref {
	return Ref{Book: r.Book, Chapter: r.ChapterStart, Verse: r.VerseStart}
}

// IsRange reports whether the reference spans more than one verse.
func (r Range) IsRange() bool {
	return r.ChapterEnd != 0 || r.VerseEnd != 0
}

// grammar mirrors the shapes accepted by Parse: an optional chapter, an
// optional ":verse", and an optional "-end" that is disambiguated after the
// parse (the number after a dash is a verse end when a verse start exists).
//
//nolint:govet // participle grammar tags are not standard struct tags
type grammar struct {
	Book         string `parser:"@Book"`
	ChapterStart *int   `parser:"( @Number"`
	VerseStart   *int   `parser:"  ( ':' @Number )?"`
	ChapterEnd   *int   `parser:"  ( '-' @Number"`
	VerseEnd     *int   `parser:"    ( ':' @Number )? )? )?"`
}

var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Book names: an optional leading ordinal ("1 John"), then words,
	// allowing multi-word names like "Song of Solomon" and a trailing
	// abbreviation period.
	{Name: "Book", Pattern: `(?:\d\s*)?[A-Za-z]+(?:\s+(?:of\s+)?[A-Za-z]+)*\.?`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var refParser = participle.MustBuild[grammar](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// ParseRange parses a reference string into a Range.
//
// Accepted forms:
//   - "Genesis"            whole book
//   - "Genesis 1"          whole chapter
//   - "Genesis 1:1"        single verse
//   - "Genesis 1:1-5"      verse range within a chapter
//   - "Genesis 1:1-2:5"    range across chapters
//   - "Genesis 1-2"        chapter range
//   - "Gen.1.1", "Ps 23.1" dot separators
func ParseRange(input string) (Range, error) {
	normalized := normalizeSeparators(strings.TrimSpace(input))
	if normalized == "" {
		return Range{}, cerrors.NewParse("reference", "", "empty reference")
	}

	parsed, err := refParser.ParseString("", normalized)
	if err != nil {
		return Range{}, &cerrors.ParseError{
			Format:  "reference",
			Message: fmt.Sprintf("cannot parse %q", input),
			Err:     err,
		}
	}

	book, ok := canon.Lookup(parsed.Book)
	if !ok {
		return Range{}, cerrors.Wrapf(cerrors.ErrUnknownBook, "reference %q", input)
	}

	r := Range{Book: book.ID}
	if parsed.ChapterStart != nil {
		r.ChapterStart = *parsed.ChapterStart
	}
	if parsed.VerseStart != nil {
		r.VerseStart = *parsed.VerseStart
	}
	if parsed.ChapterEnd != nil {
		r.ChapterEnd = *parsed.ChapterEnd
	}
	if parsed.VerseEnd != nil {
		r.VerseEnd = *parsed.VerseEnd
	}

	// "Genesis 1:1-5" parses the 5 as a chapter end; with a verse start and
	// no verse end it is actually the verse end.
	if r.VerseStart != 0 && r.ChapterEnd != 0 && r.VerseEnd == 0 {
		r.VerseEnd = r.ChapterEnd
		r.ChapterEnd = 0
	}

	if err := r.validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Parse parses a reference string to a single verse. Book-only and
// chapter-only references are rejected.
func Parse(input string) (Ref, error) {
	r, err := ParseRange(input)
	if err != nil {
		return Ref{}, err
	}
	if r.IsRange() {
		return Ref{}, cerrors.NewParse("reference", "", fmt.Sprintf("%q is a range, not a single verse", input))
	}
	if r.ChapterStart == 0 || r.VerseStart == 0 {
		return Ref{}, cerrors.NewParse("reference", "", fmt.Sprintf("%q does not name a verse", input))
	}
	return r.Start(), nil
}

func (r Range) validate() error {
	if r.ChapterStart == 0 && (r.VerseStart != 0 || r.ChapterEnd != 0 || r.VerseEnd != 0) {
		return cerrors.NewParse("reference", "", "verse without chapter")
	}
	if chapters := canon.ChapterCount(r.Book); chapters > 0 && r.ChapterStart > chapters {
		return cerrors.NewParse("reference", "", fmt.Sprintf("%s has %d chapters", r.Book, chapters))
	}
	if r.ChapterEnd != 0 && r.ChapterEnd < r.ChapterStart {
		return cerrors.NewParse("reference", "", "chapter range runs backwards")
	}
	if r.ChapterEnd == 0 && r.VerseEnd != 0 && r.VerseEnd < r.VerseStart {
		return cerrors.NewParse("reference", "", "verse range runs backwards")
	}
	return nil
}

// normalizeSeparators rewrites "Book.Chapter.Verse" and "Book Chapter.Verse"
// dot forms into the canonical "Book Chapter:Verse" shape.
func normalizeSeparators(input string) string {
	parts := strings.Split(input, ".")
	if len(parts) < 2 {
		return input
	}

	book := parts[0]
	rest := parts[1:]
	for _, p := range rest {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		for _, c := range p {
			if c < '0' || c > '9' {
				// Not a numeric tail; likely an abbreviation period.
				return input
			}
		}
	}

	if len(rest) == 1 {
		return book + " " + rest[0]
	}
	return book + " " + rest[0] + ":" + strings.Join(rest[1:], ":")
}
