// Package corpus loads translation verse tables from structured documents.
// A table maps book -> chapter -> verse -> text for one translation or
// original-language corpus. Documents come in three shapes: nested JSON,
// OSIS-style XML, and SQLite databases; JSON and XML documents may be
// xz-compressed. Tables are never mutated after load.
package corpus

import (
	"fmt"
	"sort"

	"github.com/FocuswithJustin/CedarScript/core/canon"
)

// Table is one translation's verse table. It is write-once: loaders populate
// it and hand it to the resolver's cache, after which it is read-only and
// safe for concurrent use.
type Table struct {
	// Translation is the translation id the table was loaded for.
	Translation string
	// Checksum is the blake3 hex digest of the source document bytes, when
	// the document came from a byte stream (empty for SQLite sources).
	Checksum string

	books map[string]map[int]map[int]string
}

// NewTable creates an empty table for a translation.
func NewTable(translation string) *Table {
	return &Table{
		Translation: translation,
		books:       make(map[string]map[int]map[int]string),
	}
}

// AddVerse records one verse. Book names are normalized through the canon
// package, so "1 Samuel", "1-samuel", and "1Samuel" land in the same bucket.
// Loaders call this during construction; the table must not be modified
// after it is published.
func (t *Table) AddVerse(book string, chapter, verse int, text string) {
	key := canon.Normalize(book)
	chapters, ok := t.books[key]
	if !ok {
		chapters = make(map[int]map[int]string)
		t.books[key] = chapters
	}
	verses, ok := chapters[chapter]
	if !ok {
		verses = make(map[int]string)
		chapters[chapter] = verses
	}
	verses[verse] = text
}

// Verse returns the text of a verse, or ok=false if the table has no entry
// for the reference.
func (t *Table) Verse(book string, chapter, verse int) (string, bool) {
	chapters, ok := t.books[canon.Normalize(book)]
	if !ok {
		return "", false
	}
	verses, ok := chapters[chapter]
	if !ok {
		return "", false
	}
	text, ok := verses[verse]
	return text, ok
}

// VerseCount returns the number of verses the table holds for a chapter.
func (t *Table) VerseCount(book string, chapter int) int {
	chapters, ok := t.books[canon.Normalize(book)]
	if !ok {
		return 0
	}
	return len(chapters[chapter])
}

// ChapterCount returns the number of chapters the table holds for a book.
func (t *Table) ChapterCount(book string) int {
	return len(t.books[canon.Normalize(book)])
}

// Books returns the normalized book keys present in the table, sorted.
func (t *Table) Books() []string {
	keys := make([]string, 0, len(t.books))
	for k := range t.books {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// VerseTotal returns the total number of verses in the table.
func (t *Table) VerseTotal() int {
	total := 0
	for _, chapters := range t.books {
		for _, verses := range chapters {
			total += len(verses)
		}
	}
	return total
}

// Validate checks that the table holds at least one verse and that no entry
// references chapter or verse 0.
func (t *Table) Validate() error {
	if t.VerseTotal() == 0 {
		return fmt.Errorf("table for %s holds no verses", t.Translation)
	}
	for book, chapters := range t.books {
		for chapter, verses := range chapters {
			if chapter < 1 {
				return fmt.Errorf("table for %s: book %s has chapter %d", t.Translation, book, chapter)
			}
			for verse := range verses {
				if verse < 1 {
					return fmt.Errorf("table for %s: %s %d has verse %d", t.Translation, book, chapter, verse)
				}
			}
		}
	}
	return nil
}
