package script

import (
	"reflect"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantHebrew   []string
		wantGreek    []string
		wantImperial []string
	}{
		{
			name: "empty text",
			text: "",
		},
		{
			name: "latin only",
			text: "In the beginning",
		},
		{
			name:       "hebrew single run",
			text:       "בראשית",
			wantHebrew: []string{"בראשית"},
		},
		{
			name:       "hebrew space separated runs",
			text:       "בְּרֵאשִׁית בָּרָא אֱלֹהִים",
			wantHebrew: []string{"בְּרֵאשִׁית", "בָּרָא", "אֱלֹהִים"},
		},
		{
			name:      "greek basic block",
			text:      "λογος",
			wantGreek: []string{"λογος"},
		},
		{
			name:      "greek extended block polytonic",
			text:      "Ἐν ἀρχῇ ἦν ὁ λόγος",
			wantGreek: []string{"Ἐν", "ἀρχῇ", "ἦν", "ὁ", "λόγος"},
		},
		{
			name:         "imperial aramaic block",
			text:         "\U00010840\U00010841",
			wantImperial: []string{"\U00010840\U00010841"},
		},
		{
			name:       "mixed hebrew and latin",
			text:       "Genesis בראשית 1:1",
			wantHebrew: []string{"בראשית"},
		},
		{
			name:       "mixed hebrew and greek preserves stream order",
			text:       "שלום λογος שלום",
			wantHebrew: []string{"שלום", "שלום"},
			wantGreek:  []string{"λογος"},
		},
		{
			name:         "adjacent scripts split without separator",
			text:         "שלוםλογος\U00010840",
			wantHebrew:   []string{"שלום"},
			wantGreek:    []string{"λογος"},
			wantImperial: []string{"\U00010840"},
		},
		{
			name:       "punctuation terminates a run",
			text:       "שלום,שלום",
			wantHebrew: []string{"שלום", "שלום"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.text)
			if !reflect.DeepEqual(got.Hebrew, tt.wantHebrew) {
				t.Errorf("Hebrew = %q, want %q", got.Hebrew, tt.wantHebrew)
			}
			if !reflect.DeepEqual(got.Greek, tt.wantGreek) {
				t.Errorf("Greek = %q, want %q", got.Greek, tt.wantGreek)
			}
			if !reflect.DeepEqual(got.ImperialAramaic, tt.wantImperial) {
				t.Errorf("ImperialAramaic = %q, want %q", got.ImperialAramaic, tt.wantImperial)
			}
			for _, group := range [][]string{got.Hebrew, got.Greek, got.ImperialAramaic} {
				for _, match := range group {
					if match == "" {
						t.Error("Scan returned an empty match")
					}
				}
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Script
	}{
		{"hebrew block start", 0x0590, ScriptHebrew},
		{"hebrew block end", 0x05FF, ScriptHebrew},
		{"before hebrew block", 0x058F, ScriptNone},
		{"after hebrew block", 0x0600, ScriptNone},
		{"greek block", 'λ', ScriptGreek},
		{"greek extended block", 0x1F00, ScriptGreek},
		{"imperial aramaic block start", 0x10840, ScriptImperialAramaic},
		{"imperial aramaic block end", 0x1085F, ScriptImperialAramaic},
		{"latin letter", 'a', ScriptNone},
		{"digit", '7', ScriptNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.r); got != tt.want {
				t.Errorf("Classify(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestHasHelpers(t *testing.T) {
	mixed := "Genesis בראשית λογος \U00010840"

	if !HasHebrew(mixed) {
		t.Error("HasHebrew = false, want true")
	}
	if !HasGreek(mixed) {
		t.Error("HasGreek = false, want true")
	}
	if !HasImperialAramaic(mixed) {
		t.Error("HasImperialAramaic = false, want true")
	}

	latin := "plain english"
	if HasHebrew(latin) || HasGreek(latin) || HasImperialAramaic(latin) {
		t.Error("Has helpers matched latin-only text")
	}
}

func TestExtractHebrew(t *testing.T) {
	got := ExtractHebrew("Genesis בראשית ברא 1:1")
	if got != "בראשית ברא" {
		t.Errorf("ExtractHebrew = %q", got)
	}
}

func TestExtractGreek(t *testing.T) {
	got := ExtractGreek("John: Ἐν ἀρχῇ")
	if got != "Ἐν ἀρχῇ" {
		t.Errorf("ExtractGreek = %q", got)
	}
}

func TestExtractAramaic(t *testing.T) {
	// Hebrew script alone is Hebrew, not Aramaic.
	if got := ExtractAramaic("בראשית"); got != "" {
		t.Errorf("ExtractAramaic(hebrew only) = %q, want empty", got)
	}

	// An Imperial Aramaic run flips the Hebrew runs into the Aramaic bucket.
	got := ExtractAramaic("שלום \U00010840\U00010841")
	want := "שלום \U00010840\U00010841"
	if got != want {
		t.Errorf("ExtractAramaic = %q, want %q", got, want)
	}
}
