package versification

import "github.com/FocuswithJustin/CedarScript/core/canon"

// englishPsalmVerseCounts holds the English-numbering (KJV-tradition) verse
// count for each of the 150 Psalms, indexed by chapter-1. These are the
// destination counts the resolver compares a source-numbered table against
// when deriving a chapter's superscription offset.
var englishPsalmVerseCounts = [150]int{
	6, 12, 8, 8, 12, 10, 17, 9, 20, 18,
	7, 8, 6, 7, 5, 11, 15, 50, 14, 9,
	13, 31, 6, 10, 22, 12, 14, 9, 11, 12,
	24, 11, 22, 22, 28, 12, 40, 22, 13, 17,
	13, 11, 5, 26, 17, 11, 9, 14, 20, 23,
	19, 9, 6, 7, 23, 13, 11, 11, 17, 12,
	8, 12, 11, 10, 13, 20, 7, 35, 36, 5,
	24, 20, 28, 23, 10, 12, 20, 72, 13, 19,
	16, 8, 18, 12, 13, 17, 7, 18, 52, 17,
	16, 15, 5, 23, 11, 13, 12, 9, 9, 5,
	8, 28, 22, 35, 45, 48, 43, 13, 31, 7,
	10, 10, 9, 8, 18, 19, 2, 29, 176, 7,
	8, 9, 4, 8, 5, 6, 5, 6, 8, 8,
	3, 18, 3, 3, 21, 26, 9, 8, 24, 13,
	10, 7, 12, 15, 21, 10, 20, 14, 9, 6,
}

// EnglishVerseCount returns the destination-numbering verse count for a
// chapter of a book. Only Psalms counts are tabulated, since those are the
// only chapters where the offset can be non-zero; every other book returns
// ok=false and callers treat the offset as 0.
func EnglishVerseCount(book string, chapter int) (int, bool) {
	if chapter < 1 {
		return 0, false
	}
	if canon.Normalize(book) == "psalms" && chapter <= len(englishPsalmVerseCounts) {
		return englishPsalmVerseCounts[chapter-1], true
	}
	return 0, false
}
