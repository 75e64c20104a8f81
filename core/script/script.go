// Package script classifies Unicode code points into the script blocks used
// by ancient source texts: Hebrew square script, Greek (including the
// polytonic Greek Extended block), and the Imperial Aramaic inscriptional
// script. It groups maximal runs of same-script code points into matches,
// mirroring how the corpus pipeline extracts original-language spans from
// mixed content.
package script

import "strings"

// CodePointRange is an inclusive (Start, End) pair defining one script block.
// Ranges for a language never overlap within that language's set.
type CodePointRange struct {
	Start rune
	End   rune
}

// Contains reports whether r falls inside the range.
func (cr CodePointRange) Contains(r rune) bool {
	return r >= cr.Start && r <= cr.End
}

// Script identifies one of the supported script groups.
type Script int

const (
	// ScriptNone marks code points outside every supported block.
	ScriptNone Script = iota
	// ScriptHebrew is the Hebrew block (U+0590..U+05FF).
	ScriptHebrew
	// ScriptGreek is the Greek block plus Greek Extended (U+0370..U+03FF, U+1F00..U+1FFF).
	ScriptGreek
	// ScriptImperialAramaic is the Imperial Aramaic block (U+10840..U+1085F).
	ScriptImperialAramaic
)

// Block sets for each script group. Built once; read-only thereafter.
var (
	hebrewRanges = []CodePointRange{
		{Start: 0x0590, End: 0x05FF},
	}
	greekRanges = []CodePointRange{
		{Start: 0x0370, End: 0x03FF},
		{Start: 0x1F00, End: 0x1FFF},
	}
	imperialAramaicRanges = []CodePointRange{
		{Start: 0x10840, End: 0x1085F},
	}
)

// Matches holds the maximal same-script runs found in a text, in
// left-to-right order of appearance in the code-point stream. The stream
// order is kept even though Hebrew and Aramaic render right-to-left.
type Matches struct {
	Hebrew          []string
	Greek           []string
	ImperialAramaic []string
}

// Classify returns the script group of a single code point.
func Classify(r rune) Script {
	for _, cr := range hebrewRanges {
		if cr.Contains(r) {
			return ScriptHebrew
		}
	}
	for _, cr := range greekRanges {
		if cr.Contains(r) {
			return ScriptGreek
		}
	}
	for _, cr := range imperialAramaicRanges {
		if cr.Contains(r) {
			return ScriptImperialAramaic
		}
	}
	return ScriptNone
}

// Scan walks the code-point stream once and buckets maximal runs of
// same-script code points into matches. Any code point outside the current
// run's block set terminates the run; every returned match is non-empty.
// Pure function, no side effects.
func Scan(text string) Matches {
	var m Matches

	current := ScriptNone
	var run []rune

	flush := func() {
		if len(run) == 0 {
			return
		}
		s := string(run)
		switch current {
		case ScriptHebrew:
			m.Hebrew = append(m.Hebrew, s)
		case ScriptGreek:
			m.Greek = append(m.Greek, s)
		case ScriptImperialAramaic:
			m.ImperialAramaic = append(m.ImperialAramaic, s)
		}
		run = run[:0]
	}

	for _, r := range text {
		s := Classify(r)
		if s != current {
			flush()
			current = s
		}
		if s != ScriptNone {
			run = append(run, r)
		}
	}
	flush()

	return m
}

// HasHebrew reports whether text contains any Hebrew-block code point.
func HasHebrew(text string) bool {
	return hasScript(text, ScriptHebrew)
}

// HasGreek reports whether text contains any Greek-block code point.
func HasGreek(text string) bool {
	return hasScript(text, ScriptGreek)
}

// HasImperialAramaic reports whether text contains any Imperial Aramaic code point.
func HasImperialAramaic(text string) bool {
	return hasScript(text, ScriptImperialAramaic)
}

func hasScript(text string, want Script) bool {
	for _, r := range text {
		if Classify(r) == want {
			return true
		}
	}
	return false
}

// ExtractHebrew returns only the Hebrew runs of a mixed text, space-joined.
func ExtractHebrew(text string) string {
	return strings.Join(Scan(text).Hebrew, " ")
}

// ExtractGreek returns only the Greek runs of a mixed text, space-joined.
func ExtractGreek(text string) string {
	return strings.Join(Scan(text).Greek, " ")
}

// ExtractAramaic returns the Aramaic runs of a mixed text, space-joined.
// Hebrew-script runs count as Aramaic only when an Imperial Aramaic run is
// also present; bare Hebrew script is Hebrew, not Aramaic.
func ExtractAramaic(text string) string {
	m := Scan(text)
	if len(m.ImperialAramaic) == 0 {
		return ""
	}
	combined := make([]string, 0, len(m.Hebrew)+len(m.ImperialAramaic))
	combined = append(combined, m.Hebrew...)
	combined = append(combined, m.ImperialAramaic...)
	return strings.Join(combined, " ")
}
