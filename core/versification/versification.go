// Package versification aligns verse numbering between the Hebrew
// (Masoretic) and English canonical schemes. The two diverge chiefly in
// Psalms, where an editorial superscription is counted as verse 1 (or
// verses 1-2) under Hebrew numbering but left unnumbered in English
// numbering, shifting every following verse.
package versification

import "github.com/FocuswithJustin/CedarScript/core/canon"

// MaxOffset is the largest superscription offset that occurs in the canon:
// a handful of Psalms carry a two-verse heading.
const MaxOffset = 2

// ComputeOffset returns the per-chapter verse-count offset between
// source-language and destination-language numbering. Non-zero offsets
// apply only to Psalms; for every other book the offset is 0 regardless of
// verse-count mismatch. The offset is the source/destination count
// difference when that difference is 1 or 2, else 0.
func ComputeOffset(book string, chapter, sourceVerseCount, destVerseCount int) int {
	if canon.Normalize(book) != "psalms" {
		return 0
	}
	if chapter < 1 {
		return 0
	}
	diff := sourceVerseCount - destVerseCount
	if diff == 1 || diff == 2 {
		return diff
	}
	return 0
}

// ResolveSourceVerse maps a destination-numbering (logical) verse number to
// the source-numbering (physical) verse number for the given offset.
func ResolveSourceVerse(destVerse, offset int) int {
	return destVerse + offset
}

// ResolveDestVerse inverts ResolveSourceVerse.
func ResolveDestVerse(sourceVerse, offset int) int {
	return sourceVerse - offset
}

// Alignment describes one chapter's mapping between logical (destination)
// and physical (source) verse numbers. Derived on demand, never persisted.
type Alignment struct {
	Book    string
	Chapter int
	// Offset is the number of physical verses attributable to an unnumbered
	// superscription in the destination numbering: 0, 1, or 2.
	Offset int
}

// Align computes the alignment for a chapter given both verse counts.
func Align(book string, chapter, sourceVerseCount, destVerseCount int) Alignment {
	return Alignment{
		Book:    book,
		Chapter: chapter,
		Offset:  ComputeOffset(book, chapter, sourceVerseCount, destVerseCount),
	}
}

// Physical maps a logical verse number into the source table.
func (a Alignment) Physical(logicalVerse int) int {
	return ResolveSourceVerse(logicalVerse, a.Offset)
}

// Logical maps a physical source verse number back to the logical number.
// Superscription verses (physical 1..Offset) map to logical 0.
func (a Alignment) Logical(physicalVerse int) int {
	v := ResolveDestVerse(physicalVerse, a.Offset)
	if v < 1 {
		return 0
	}
	return v
}

// HasSuperscription reports whether the chapter carries an unnumbered
// heading under destination numbering.
func (a Alignment) HasSuperscription() bool {
	return a.Offset > 0
}
