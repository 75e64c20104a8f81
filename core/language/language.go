// Package language decides which ancient language a passage is written in.
// It combines script block ranges, the known Aramaic passage index, and
// Aramaic-distinctive vocabulary under a fixed priority order.
// Classification is deterministic and rule-based; there is no statistical
// model anywhere in the decision path.
package language

import (
	"github.com/FocuswithJustin/CedarScript/core/passages"
	"github.com/FocuswithJustin/CedarScript/core/script"
	"github.com/FocuswithJustin/CedarScript/core/vocabulary"
)

// Language is the classified language of a passage.
type Language string

const (
	// Hebrew is Hebrew-script text with no Aramaic signal.
	Hebrew Language = "hebrew"
	// Greek is Greek-script text.
	Greek Language = "greek"
	// Aramaic covers both Imperial Aramaic script and Aramaic written in
	// Hebrew square script.
	Aramaic Language = "aramaic"
	// Unknown is returned for empty or unrecognized input.
	Unknown Language = "unknown"
)

// referenceConfidence is the fixed confidence assigned when a canonical
// reference places the text inside a registered Aramaic passage.
const referenceConfidence = 0.95

// Result is a classification outcome. Results are created fresh per call
// and carry no persistent identity. Confidence is always derived from the
// counts and matches that justify it.
type Result struct {
	// Language is the classified language.
	Language Language
	// Confidence is in [0, 1].
	Confidence float64
	// Matches lists the script runs that justified the decision, in stream order.
	Matches []string
	// HebrewCount, GreekCount, and AramaicCount are the per-language run counts.
	HebrewCount  int
	GreekCount   int
	AramaicCount int
	// AramaicWords lists matched Aramaic vocabulary entries, if any.
	AramaicWords []string
	// KnownAramaicPassage reports whether the supplied reference is in the
	// registered Aramaic passage index.
	KnownAramaicPassage bool
}

// Ref is an optional canonical verse reference accompanying the text.
type Ref struct {
	Book    string
	Chapter int
	Verse   int
}

// Classify decides the language of text without reference context.
func Classify(text string) Result {
	return ClassifyRef(text, nil)
}

// ClassifyRef decides the language of text, optionally using a canonical
// verse reference for known-Aramaic-passage detection. Rules apply in strict
// priority order, first match wins:
//
//  1. Reference confirms a registered Aramaic passage and Hebrew script is
//     present: aramaic at fixed confidence. An explicit canonical reference
//     is ground truth and overrides statistical signals.
//  2. Imperial Aramaic code points present: aramaic. A script block unique
//     to Aramaic is unambiguous.
//  3. Aramaic vocabulary above threshold with Hebrew script present:
//     aramaic. Vocabulary is weaker than script.
//  4. Hebrew script present: hebrew. Most Hebrew-script OT text is Hebrew,
//     not Aramaic, so bare Hebrew presence defaults to Hebrew.
//  5. Greek script present: greek.
//  6. Otherwise: unknown.
//
// Pure function of static tables plus input; safe for concurrent use.
func ClassifyRef(text string, ref *Ref) Result {
	if text == "" {
		return Result{Language: Unknown}
	}

	m := script.Scan(text)
	hebrewCount := len(m.Hebrew)
	greekCount := len(m.Greek)
	imperialCount := len(m.ImperialAramaic)

	knownAramaic := false
	if ref != nil && ref.Book != "" && ref.Chapter > 0 && ref.Verse > 0 {
		knownAramaic = passages.IsAramaic(ref.Book, ref.Chapter, ref.Verse)
	}

	vocab := vocabulary.Scan(text)

	res := Result{
		Language:            Unknown,
		HebrewCount:         hebrewCount,
		GreekCount:          greekCount,
		AramaicWords:        vocab.Words,
		KnownAramaicPassage: knownAramaic,
	}

	switch {
	case knownAramaic && hebrewCount > 0:
		res.Language = Aramaic
		res.Matches = m.Hebrew
		res.AramaicCount = hebrewCount
		res.Confidence = referenceConfidence

	case imperialCount > 0:
		combined := make([]string, 0, hebrewCount+imperialCount)
		combined = append(combined, m.Hebrew...)
		combined = append(combined, m.ImperialAramaic...)
		res.Language = Aramaic
		res.Matches = combined
		res.AramaicCount = len(combined)
		total := hebrewCount + greekCount + imperialCount
		res.Confidence = float64(imperialCount) / float64(total)

	case vocab.Confidence > 0.5 && hebrewCount > 0:
		res.Language = Aramaic
		res.Matches = m.Hebrew
		res.AramaicCount = hebrewCount
		res.Confidence = vocab.Confidence

	case hebrewCount > 0:
		res.Language = Hebrew
		res.Matches = m.Hebrew
		if greekCount > 0 {
			res.Confidence = float64(hebrewCount) / float64(hebrewCount+greekCount)
		} else {
			res.Confidence = 1.0
		}

	case greekCount > 0:
		res.Language = Greek
		res.Matches = m.Greek
		res.Confidence = float64(greekCount) / float64(hebrewCount+greekCount)
	}

	return res
}
