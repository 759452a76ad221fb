package periodic

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// Tests the full Spell flow with our expected tie-break order.

// IMPORTANT to know:
// traversal order: `length-1 symbol > length-2 symbol > skip` at each position
func TestSpellScenarios(t *testing.T) {
	s := NewSpeller(nil)

	testCases := []struct {
		word        string
		canSpell    bool
		firstExact  Tiling   // only checked when canSpell
		missing     []string // first closest match, only checked when !canSpell
		missingN    int
		description string
	}{
		{"SnAsCs", true, Tiling{"S", "N", "As", "C", "S"}, nil, 0, "Concatenation of symbols"},
		{"He", true, Tiling{"He"}, nil, 0, "Single two-letter symbol"},
		{"", true, nil, nil, 0, "Empty word spells trivially"},
		{"Cobalt", false, nil, []string{"T"}, 1, "Trailing t has no symbol"},
		{"Xyz", false, nil, []string{"X", "Y", "Z"}, 3, "No letter forms any symbol"},
		{"w", true, Tiling{"W"}, nil, 0, "Single letter, lowercase input"},
		{"genius", true, Tiling{"Ge", "N", "I", "U", "S"}, nil, 0, "Classic spellable word"},
		{"café", false, nil, []string{"É"}, 1, "Accented letter has no symbol"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			result := s.Spell(tc.word)
			if result.CanSpell != tc.canSpell {
				t.Fatalf("Spell(%q).CanSpell = %v, want %v", tc.word, result.CanSpell, tc.canSpell)
			}
			if tc.canSpell {
				if len(result.Closest) != 0 {
					t.Errorf("Spell(%q) populated Closest despite exact solutions", tc.word)
				}
				if len(result.Exact) == 0 {
					t.Fatalf("Spell(%q) returned no exact tilings", tc.word)
				}
				if !reflect.DeepEqual(result.Exact[0], tc.firstExact) {
					t.Errorf("Spell(%q) first tiling = %v, want %v", tc.word, result.Exact[0], tc.firstExact)
				}
				return
			}
			if len(result.Exact) != 0 {
				t.Errorf("Spell(%q) returned exact tilings for unspellable word", tc.word)
			}
			if len(result.Closest) == 0 {
				t.Fatalf("Spell(%q) returned no closest matches", tc.word)
			}
			first := result.Closest[0]
			if first.MissingCount != tc.missingN {
				t.Errorf("Spell(%q) first missing count = %d, want %d", tc.word, first.MissingCount, tc.missingN)
			}
			if !reflect.DeepEqual(first.Missing, tc.missing) {
				t.Errorf("Spell(%q) first missing letters = %v, want %v", tc.word, first.Missing, tc.missing)
			}
		})
	}
}

// every exact tiling must concatenate back to the word, case-insensitively
func TestExactRoundTrip(t *testing.T) {
	s := NewSpeller(nil)
	words := []string{"SnAsCs", "He", "cocoa", "bacon", "iron", "NiCKel", "w", "osmosis"}

	for _, word := range words {
		t.Run(word, func(t *testing.T) {
			for _, tiling := range s.ExactTilings(word) {
				joined := strings.ToLower(strings.Join(tiling, ""))
				if joined != strings.ToLower(word) {
					t.Errorf("Tiling %v concatenates to %q, want %q", tiling, joined, strings.ToLower(word))
				}
			}
		})
	}
}

func TestEmptyWordSingleEmptyTiling(t *testing.T) {
	s := NewSpeller(nil)
	tilings := s.ExactTilings("")
	if len(tilings) != 1 || len(tilings[0]) != 0 {
		t.Errorf("ExactTilings(\"\") = %v, want one empty tiling", tilings)
	}
}

// "He" must not also yield H + e, since e alone is not a symbol
func TestHeHasSingleSolution(t *testing.T) {
	s := NewSpeller(nil)
	tilings := s.ExactTilings("He")
	if len(tilings) != 1 {
		t.Fatalf("ExactTilings(\"He\") = %v, want exactly one tiling", tilings)
	}
	if !reflect.DeepEqual(tilings[0], Tiling{"He"}) {
		t.Errorf("ExactTilings(\"He\") = %v, want [[He]]", tilings)
	}
}

func TestSpellIdempotent(t *testing.T) {
	s := NewSpeller(nil)
	for _, word := range []string{"Cobalt", "SnAsCs", "", "Xyz"} {
		first := s.Spell(word)
		second := s.Spell(word)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Spell(%q) is not idempotent:\nfirst:  %+v\nsecond: %+v", word, first, second)
		}
	}
}

func TestClosestMatchInvariants(t *testing.T) {
	s := NewSpeller(nil)
	words := []string{"Cobalt", "Xyz", "quartz", "jolly", "rhythm", "café", "naïve"}

	for _, word := range words {
		t.Run(word, func(t *testing.T) {
			matches := s.ClosestMatches(word)
			if len(matches) == 0 {
				t.Fatal("No closest matches returned")
			}
			wordLen := len([]rune(word))
			best := matches[0].MissingCount
			for _, m := range matches {
				used := 0
				for _, sym := range m.Tiling {
					used += len([]rune(sym))
				}
				if m.MissingCount != wordLen-used {
					t.Errorf("Tiling %v has MissingCount %d, want %d", m.Tiling, m.MissingCount, wordLen-used)
				}
				if m.MissingCount != best {
					t.Errorf("Tiling %v has MissingCount %d, others have %d", m.Tiling, m.MissingCount, best)
				}
				if len(m.Missing) != m.MissingCount {
					t.Errorf("Tiling %v reports %d missing letters, count says %d", m.Tiling, len(m.Missing), m.MissingCount)
				}
			}
		})
	}
}

// all-symbol word: the closest search degenerates to the exact one
func TestClosestOnSpellableWord(t *testing.T) {
	s := NewSpeller(nil)
	matches := s.ClosestMatches("He")
	if len(matches) != 1 {
		t.Fatalf("ClosestMatches(\"He\") = %v, want one match", matches)
	}
	if matches[0].MissingCount != 0 || len(matches[0].Missing) != 0 {
		t.Errorf("ClosestMatches(\"He\") reported missing letters for a spellable word: %+v", matches[0])
	}
}

func BenchmarkSpell(b *testing.B) {
	s := NewSpeller(nil)
	words := []string{"Cobalt", "osmosis", "functions", "xylophone", "bicarbonate"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Spell(words[i%len(words)])
	}
}

func BenchmarkClosestMatches(b *testing.B) {
	s := NewSpeller(nil)
	for i := 0; i < b.N; i++ {
		s.ClosestMatches(fmt.Sprintf("quizzical%d", i%10))
	}
}
