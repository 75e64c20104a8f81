// Package canon provides the canonical book catalog: stable machine ids,
// display names, chapter counts, and testament membership for the 66
// canonical books. All catalog and index lookups go through normalized book
// keys rather than display names.
package canon

import "strings"

// Testament identifies a book's collection membership.
type Testament int

const (
	// OldTestament covers Genesis through Malachi.
	OldTestament Testament = iota
	// NewTestament covers Matthew through Revelation.
	NewTestament
)

func (t Testament) String() string {
	if t == NewTestament {
		return "new"
	}
	return "old"
}

// Book is one catalog entry. Entries are static and immutable.
type Book struct {
	// ID is the canonical machine id (e.g., "1-samuel"), distinct from the
	// display name, used in document keys and CLI output.
	ID string
	// Name is the display name (e.g., "1 Samuel").
	Name string
	// Chapters is the canonical chapter count.
	Chapters int
	// Testament is the collection the book belongs to.
	Testament Testament
}

// Key returns the normalized lookup key for the book.
func (b Book) Key() string {
	return Normalize(b.ID)
}

// books lists the 66 canonical entries in canonical order.
// Built once at startup; read-only thereafter.
var books = []Book{
	{ID: "genesis", Name: "Genesis", Chapters: 50, Testament: OldTestament},
	{ID: "exodus", Name: "Exodus", Chapters: 40, Testament: OldTestament},
	{ID: "leviticus", Name: "Leviticus", Chapters: 27, Testament: OldTestament},
	{ID: "numbers", Name: "Numbers", Chapters: 36, Testament: OldTestament},
	{ID: "deuteronomy", Name: "Deuteronomy", Chapters: 34, Testament: OldTestament},
	{ID: "joshua", Name: "Joshua", Chapters: 24, Testament: OldTestament},
	{ID: "judges", Name: "Judges", Chapters: 21, Testament: OldTestament},
	{ID: "ruth", Name: "Ruth", Chapters: 4, Testament: OldTestament},
	{ID: "1-samuel", Name: "1 Samuel", Chapters: 31, Testament: OldTestament},
	{ID: "2-samuel", Name: "2 Samuel", Chapters: 24, Testament: OldTestament},
	{ID: "1-kings", Name: "1 Kings", Chapters: 22, Testament: OldTestament},
	{ID: "2-kings", Name: "2 Kings", Chapters: 25, Testament: OldTestament},
	{ID: "1-chronicles", Name: "1 Chronicles", Chapters: 29, Testament: OldTestament},
	{ID: "2-chronicles", Name: "2 Chronicles", Chapters: 36, Testament: OldTestament},
	{ID: "ezra", Name: "Ezra", Chapters: 10, Testament: OldTestament},
	{ID: "nehemiah", Name: "Nehemiah", Chapters: 13, Testament: OldTestament},
	{ID: "esther", Name: "Esther", Chapters: 10, Testament: OldTestament},
	{ID: "job", Name: "Job", Chapters: 42, Testament: OldTestament},
	{ID: "psalms", Name: "Psalms", Chapters: 150, Testament: OldTestament},
	{ID: "proverbs", Name: "Proverbs", Chapters: 31, Testament: OldTestament},
	{ID: "ecclesiastes", Name: "Ecclesiastes", Chapters: 12, Testament: OldTestament},
	{ID: "song-of-solomon", Name: "Song of Solomon", Chapters: 8, Testament: OldTestament},
	{ID: "isaiah", Name: "Isaiah", Chapters: 66, Testament: OldTestament},
	{ID: "jeremiah", Name: "Jeremiah", Chapters: 52, Testament: OldTestament},
	{ID: "lamentations", Name: "Lamentations", Chapters: 5, Testament: OldTestament},
	{ID: "ezekiel", Name: "Ezekiel", Chapters: 48, Testament: OldTestament},
	{ID: "daniel", Name: "Daniel", Chapters: 12, Testament: OldTestament},
	{ID: "hosea", Name: "Hosea", Chapters: 14, Testament: OldTestament},
	{ID: "joel", Name: "Joel", Chapters: 3, Testament: OldTestament},
	{ID: "amos", Name: "Amos", Chapters: 9, Testament: OldTestament},
	{ID: "obadiah", Name: "Obadiah", Chapters: 1, Testament: OldTestament},
	{ID: "jonah", Name: "Jonah", Chapters: 4, Testament: OldTestament},
	{ID: "micah", Name: "Micah", Chapters: 7, Testament: OldTestament},
	{ID: "nahum", Name: "Nahum", Chapters: 3, Testament: OldTestament},
	{ID: "habakkuk", Name: "Habakkuk", Chapters: 3, Testament: OldTestament},
	{ID: "zephaniah", Name: "Zephaniah", Chapters: 3, Testament: OldTestament},
	{ID: "haggai", Name: "Haggai", Chapters: 2, Testament: OldTestament},
	{ID: "zechariah", Name: "Zechariah", Chapters: 14, Testament: OldTestament},
	{ID: "malachi", Name: "Malachi", Chapters: 4, Testament: OldTestament},
	{ID: "matthew", Name: "Matthew", Chapters: 28, Testament: NewTestament},
	{ID: "mark", Name: "Mark", Chapters: 16, Testament: NewTestament},
	{ID: "luke", Name: "Luke", Chapters: 24, Testament: NewTestament},
	{ID: "john", Name: "John", Chapters: 21, Testament: NewTestament},
	{ID: "acts", Name: "Acts", Chapters: 28, Testament: NewTestament},
	{ID: "romans", Name: "Romans", Chapters: 16, Testament: NewTestament},
	{ID: "1-corinthians", Name: "1 Corinthians", Chapters: 16, Testament: NewTestament},
	{ID: "2-corinthians", Name: "2 Corinthians", Chapters: 13, Testament: NewTestament},
	{ID: "galatians", Name: "Galatians", Chapters: 6, Testament: NewTestament},
	{ID: "ephesians", Name: "Ephesians", Chapters: 6, Testament: NewTestament},
	{ID: "philippians", Name: "Philippians", Chapters: 4, Testament: NewTestament},
	{ID: "colossians", Name: "Colossians", Chapters: 4, Testament: NewTestament},
	{ID: "1-thessalonians", Name: "1 Thessalonians", Chapters: 5, Testament: NewTestament},
	{ID: "2-thessalonians", Name: "2 Thessalonians", Chapters: 3, Testament: NewTestament},
	{ID: "1-timothy", Name: "1 Timothy", Chapters: 6, Testament: NewTestament},
	{ID: "2-timothy", Name: "2 Timothy", Chapters: 4, Testament: NewTestament},
	{ID: "titus", Name: "Titus", Chapters: 3, Testament: NewTestament},
	{ID: "philemon", Name: "Philemon", Chapters: 1, Testament: NewTestament},
	{ID: "hebrews", Name: "Hebrews", Chapters: 13, Testament: NewTestament},
	{ID: "james", Name: "James", Chapters: 5, Testament: NewTestament},
	{ID: "1-peter", Name: "1 Peter", Chapters: 5, Testament: NewTestament},
	{ID: "2-peter", Name: "2 Peter", Chapters: 3, Testament: NewTestament},
	{ID: "1-john", Name: "1 John", Chapters: 5, Testament: NewTestament},
	{ID: "2-john", Name: "2 John", Chapters: 1, Testament: NewTestament},
	{ID: "3-john", Name: "3 John", Chapters: 1, Testament: NewTestament},
	{ID: "jude", Name: "Jude", Chapters: 1, Testament: NewTestament},
	{ID: "revelation", Name: "Revelation", Chapters: 22, Testament: NewTestament},
}

// compoundAliases maps collapsed compound-numbered names to their canonical
// lookup keys ("1 Samuel" collapses to "1samuel", which aliases to "samuel1").
var compoundAliases = map[string]string{
	"1samuel": "samuel1", "2samuel": "samuel2",
	"1kings": "kings1", "2kings": "kings2",
	"1chronicles": "chronicles1", "2chronicles": "chronicles2",
	"1corinthians": "corinthians1", "2corinthians": "corinthians2",
	"1thessalonians": "thessalonians1", "2thessalonians": "thessalonians2",
	"1timothy": "timothy1", "2timothy": "timothy2",
	"1peter": "peter1", "2peter": "peter2",
	"1john": "john1", "2john": "john2", "3john": "john3",
}

// abbreviations maps collapsed common and OSIS book abbreviations to lookup
// keys, so document ids like "Gen.1.1" and user input like "Ps 23" resolve.
var abbreviations = map[string]string{
	"gen": "genesis", "exod": "exodus", "exo": "exodus", "ex": "exodus",
	"lev": "leviticus", "num": "numbers", "deut": "deuteronomy", "deu": "deuteronomy",
	"josh": "joshua", "jos": "joshua", "judg": "judges", "jdg": "judges",
	"rut": "ruth",
	"1sam": "samuel1", "2sam": "samuel2",
	"1kgs": "kings1", "2kgs": "kings2",
	"1chr": "chronicles1", "2chr": "chronicles2",
	"ezr": "ezra", "neh": "nehemiah", "esth": "esther", "est": "esther",
	"ps": "psalms", "psa": "psalms", "psalm": "psalms",
	"prov": "proverbs", "pro": "proverbs",
	"eccl": "ecclesiastes", "ecc": "ecclesiastes",
	"song": "songofsolomon", "songofsongs": "songofsolomon", "sos": "songofsolomon",
	"canticles": "songofsolomon",
	"isa": "isaiah", "jer": "jeremiah", "lam": "lamentations",
	"ezek": "ezekiel", "eze": "ezekiel", "dan": "daniel",
	"hos": "hosea", "joe": "joel", "amo": "amos",
	"obad": "obadiah", "oba": "obadiah", "jon": "jonah", "mic": "micah",
	"nah": "nahum", "hab": "habakkuk", "zeph": "zephaniah", "zep": "zephaniah",
	"hag": "haggai", "zech": "zechariah", "zec": "zechariah", "mal": "malachi",
	"matt": "matthew", "mat": "matthew", "mt": "matthew",
	"mrk": "mark", "mk": "mark", "luk": "luke", "lk": "luke",
	"joh": "john", "jn": "john", "act": "acts",
	"rom": "romans",
	"1cor": "corinthians1", "2cor": "corinthians2",
	"gal": "galatians", "eph": "ephesians", "phil": "philippians",
	"col": "colossians",
	"1thess": "thessalonians1", "2thess": "thessalonians2",
	"1thes": "thessalonians1", "2thes": "thessalonians2",
	"1tim": "timothy1", "2tim": "timothy2",
	"tit": "titus", "phlm": "philemon", "phm": "philemon",
	"heb": "hebrews", "jas": "james",
	"1pet": "peter1", "2pet": "peter2",
	"1jn": "john1", "2jn": "john2", "3jn": "john3",
	"jud": "jude", "rev": "revelation",
}

// byKey indexes the catalog by normalized key, built once at init.
var byKey = func() map[string]Book {
	m := make(map[string]Book, len(books))
	for _, b := range books {
		m[Normalize(b.ID)] = b
	}
	return m
}()

// Normalize converts a book name, id, or abbreviation into its canonical
// lookup key. Case-insensitive; whitespace and hyphens are ignored;
// compound-numbered books alias to suffix form ("1 Samuel", "1-samuel",
// "1Samuel" all normalize to "samuel1"); common and OSIS abbreviations
// ("Gen", "Ps", "1Cor") resolve to their full keys.
func Normalize(book string) string {
	key := strings.ToLower(book)
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "-", "")
	key = strings.TrimSuffix(key, ".")
	if alias, ok := compoundAliases[key]; ok {
		return alias
	}
	if alias, ok := abbreviations[key]; ok {
		return alias
	}
	return key
}

// Lookup finds a catalog entry by name or id in any accepted spelling.
func Lookup(book string) (Book, bool) {
	b, ok := byKey[Normalize(book)]
	return b, ok
}

// IsKnown reports whether a book name or id resolves to a catalog entry.
func IsKnown(book string) bool {
	_, ok := Lookup(book)
	return ok
}

// Books returns the catalog in canonical order. The returned slice is a
// copy; the catalog itself is never mutated.
func Books() []Book {
	out := make([]Book, len(books))
	copy(out, books)
	return out
}

// ChapterCount returns the canonical chapter count for a book, or 0 if the
// book is not in the catalog.
func ChapterCount(book string) int {
	b, ok := Lookup(book)
	if !ok {
		return 0
	}
	return b.Chapters
}
