package passages

import "testing"

func TestIsAramaic(t *testing.T) {
	tests := []struct {
		name    string
		book    string
		chapter int
		verse   int
		want    bool
	}{
		// Daniel range boundaries.
		{"daniel range start", "daniel", 2, 4, true},
		{"daniel just before range", "daniel", 2, 3, false},
		{"daniel interior chapter", "daniel", 5, 1, true},
		{"daniel interior chapter high verse", "daniel", 4, 37, true},
		{"daniel range end", "daniel", 7, 28, true},
		{"daniel after range", "daniel", 8, 1, false},
		{"daniel hebrew opening", "daniel", 1, 1, false},

		// Ezra scattered verse sets.
		{"ezra correspondence start", "ezra", 4, 8, true},
		{"ezra before correspondence", "ezra", 4, 7, false},
		{"ezra chapter 4 end", "ezra", 4, 24, true},
		{"ezra chapter 5", "ezra", 5, 17, true},
		{"ezra chapter 6 end", "ezra", 6, 18, true},
		{"ezra after chapter 6 section", "ezra", 6, 19, false},
		{"ezra decree start", "ezra", 7, 12, true},
		{"ezra decree end", "ezra", 7, 26, true},
		{"ezra after decree", "ezra", 7, 27, false},

		// Single-verse entries.
		{"jeremiah single verse", "jeremiah", 10, 11, true},
		{"jeremiah neighboring verse", "jeremiah", 10, 12, false},
		{"genesis jegar sahadutha", "genesis", 31, 47, true},
		{"genesis neighboring verse", "genesis", 31, 46, false},

		// Book name normalization.
		{"capitalized book name", "Daniel", 2, 4, true},
		{"book name with space", "Ez Ra", 4, 8, true},

		// Fail open for books outside the index or catalog.
		{"book with no aramaic", "exodus", 1, 1, false},
		{"unknown book", "maccabees", 2, 4, false},
		{"empty book", "", 2, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAramaic(tt.book, tt.chapter, tt.verse); got != tt.want {
				t.Errorf("IsAramaic(%q, %d, %d) = %v, want %v",
					tt.book, tt.chapter, tt.verse, got, tt.want)
			}
		})
	}
}

func TestChapterRangeContains(t *testing.T) {
	r := ChapterRange{ChapterStart: 2, VerseStart: 4, ChapterEnd: 7, VerseEnd: 28}

	tests := []struct {
		name    string
		chapter int
		verse   int
		want    bool
	}{
		{"start boundary", 2, 4, true},
		{"before start verse", 2, 3, false},
		{"high verse in start chapter", 2, 49, true},
		{"interior chapter", 3, 1, true},
		{"end boundary", 7, 28, true},
		{"past end verse", 7, 29, false},
		{"before range", 1, 21, false},
		{"after range", 8, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.chapter, tt.verse); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.chapter, tt.verse, got, tt.want)
			}
		})
	}
}
