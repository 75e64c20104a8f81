// Package passages indexes the Biblical Aramaic sections of the Old
// Testament. These passages are written in Hebrew square script, so they are
// indistinguishable from Hebrew by code-point range alone; the index records
// which (book, chapter, verse) references are Aramaic a priori.
//
// Sub-verse boundaries are not modeled: Daniel 2:4 switches language mid-verse,
// but the whole verse is classified uniformly as Aramaic.
package passages

import "github.com/FocuswithJustin/CedarScript/core/canon"

// ChapterRange is a contiguous Aramaic span expressed as chapter/verse
// endpoints, e.g. Daniel 2:4 through 7:28. Endpoints are inclusive and never
// reference chapter or verse 0.
type ChapterRange struct {
	ChapterStart int
	VerseStart   int
	ChapterEnd   int
	VerseEnd     int
}

// Contains reports whether verse v of chapter c falls inside the range.
func (r ChapterRange) Contains(c, v int) bool {
	switch {
	case c == r.ChapterStart && c == r.ChapterEnd:
		return v >= r.VerseStart && v <= r.VerseEnd
	case c == r.ChapterStart:
		return v >= r.VerseStart
	case c == r.ChapterEnd:
		return v <= r.VerseEnd
	default:
		return c > r.ChapterStart && c < r.ChapterEnd
	}
}

// bookPassages holds the two encodings of a book's Aramaic sections:
// chapter-range spans for long contiguous passages and an explicit verse set
// for scattered single verses.
type bookPassages struct {
	ranges []ChapterRange
	verses map[[2]int]struct{}
}

func verseSet(pairs ...[2]int) map[[2]int]struct{} {
	m := make(map[[2]int]struct{}, len(pairs))
	for _, p := range pairs {
		m[p] = struct{}{}
	}
	return m
}

func verseRun(chapter, first, last int) [][2]int {
	out := make([][2]int, 0, last-first+1)
	for v := first; v <= last; v++ {
		out = append(out, [2]int{chapter, v})
	}
	return out
}

// index is keyed by normalized book key. Built once at init; read-only
// thereafter, so concurrent lookups need no locking.
var index = map[string]bookPassages{
	// Daniel 2:4b through 7:28.
	"daniel": {
		ranges: []ChapterRange{{ChapterStart: 2, VerseStart: 4, ChapterEnd: 7, VerseEnd: 28}},
	},
	// Ezra 4:8-6:18 and 7:12-26, the imperial correspondence.
	"ezra": {
		verses: verseSet(concat(
			verseRun(4, 8, 24),
			verseRun(5, 1, 17),
			verseRun(6, 1, 18),
			verseRun(7, 12, 26),
		)...),
	},
	// Jeremiah 10:11, a single Aramaic verse.
	"jeremiah": {
		verses: verseSet([2]int{10, 11}),
	},
	// Genesis 31:47, the two words "Jegar Sahadutha".
	"genesis": {
		verses: verseSet([2]int{31, 47}),
	},
}

func concat(runs ...[][2]int) [][2]int {
	var out [][2]int
	for _, r := range runs {
		out = append(out, r...)
	}
	return out
}

// IsAramaic reports whether the given verse reference is known a priori to
// be Aramaic despite Hebrew-script encoding. Book names are accepted in any
// spelling the canon package normalizes. Unknown books fail open as false.
func IsAramaic(book string, chapter, verse int) bool {
	bp, ok := index[canon.Normalize(book)]
	if !ok {
		return false
	}
	if _, found := bp.verses[[2]int{chapter, verse}]; found {
		return true
	}
	for _, r := range bp.ranges {
		if r.Contains(chapter, verse) {
			return true
		}
	}
	return false
}
