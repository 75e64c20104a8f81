// Package vocabulary detects Aramaic-distinctive function words in
// Hebrew-script text. Biblical Aramaic shares its script with Hebrew, so a
// short list of words that occur in Aramaic but not (or rarely) in Hebrew is
// used as a weak classification signal: one hit is weak evidence, three or
// more distinct hits are treated as certain.
package vocabulary

import "strings"

// SaturationCount is the number of distinct vocabulary matches treated as
// full confidence. This is a tunable heuristic, not a derived constant.
const SaturationCount = 3

// entries lists literal tokens distinctive of Biblical Aramaic, each in
// vocalized and unvocalized spelling. Static and immutable.
var entries = []string{
	"דִּי",    // di - relative pronoun "that/which", vs Hebrew asher
	"די",      // di - without niqqud
	"מַלְכָּא", // malka - "the king", Aramaic emphatic state
	"מלכא",    // malka - without niqqud
	"אֱלָהּ",   // elah - "God", vs Hebrew elohim
	"אלה",     // elah - without niqqud
	"קֳדָם",    // qodam - "before"
	"קדם",     // qodam - without niqqud
	"כְּעַן",   // ke'an - "now", vs Hebrew attah
	"כען",     // ke'an - without niqqud
	"לָא",     // la - negation form
	"לא",      // la - without niqqud (ambiguous with Hebrew)
	"הֲוָא",    // hava - "was", vs Hebrew hayah
	"הוא",     // hava - without niqqud
}

// Match is the result of a vocabulary scan.
type Match struct {
	// Found reports whether at least one entry occurred in the text.
	Found bool
	// Words lists the distinct entries that occurred, in list order.
	Words []string
	// Confidence is a saturating linear ramp: distinct matches divided by
	// SaturationCount, capped at 1.0.
	Confidence float64
}

// Scan reports the Aramaic vocabulary entries occurring as literal
// substrings of text. Pure function, no side effects.
func Scan(text string) Match {
	if text == "" {
		return Match{}
	}

	var matched []string
	for _, word := range entries {
		if strings.Contains(text, word) {
			matched = append(matched, word)
		}
	}
	if len(matched) == 0 {
		return Match{}
	}

	confidence := float64(len(matched)) / SaturationCount
	if confidence > 1.0 {
		confidence = 1.0
	}

	return Match{
		Found:      true,
		Words:      matched,
		Confidence: confidence,
	}
}

// Entries returns the vocabulary list. The returned slice is a copy.
func Entries() []string {
	out := make([]string, len(entries))
	copy(out, entries)
	return out
}
