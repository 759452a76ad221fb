package periodic

import "testing"

func TestDefaultAlphabetSize(t *testing.T) {
	a := Default()
	if a.Len() != 118 {
		t.Errorf("Default alphabet has %d symbols, want 118", a.Len())
	}
}

func TestContainsCaseInsensitive(t *testing.T) {
	a := Default()

	testCases := []struct {
		candidate string
		want      bool
	}{
		{"He", true},
		{"he", true},
		{"HE", true},
		{"hE", true},
		{"Na", true},
		{"NA", true},
		{"H", true},
		{"h", true},
		{"e", false}, // single e is not an element
		{"T", false}, // tantalum is Ta
		{"Xx", false},
		{"", false},
		{"Xyz", false}, // longer than any symbol
	}

	for _, tc := range testCases {
		if got := a.Contains(tc.candidate); got != tc.want {
			t.Errorf("Contains(%q) = %v, want %v", tc.candidate, got, tc.want)
		}
	}
}

func TestCanonicalCase(t *testing.T) {
	a := Default()

	testCases := []struct {
		candidate string
		want      string
	}{
		{"na", "Na"},
		{"NA", "Na"},
		{"co", "Co"},
		{"w", "W"},
		{"og", "Og"},
	}

	for _, tc := range testCases {
		got, ok := a.Canonical(tc.candidate)
		if !ok {
			t.Errorf("Canonical(%q) not found", tc.candidate)
			continue
		}
		if got != tc.want {
			t.Errorf("Canonical(%q) = %q, want %q", tc.candidate, got, tc.want)
		}
	}

	if _, ok := a.Canonical("zz"); ok {
		t.Error("Canonical(\"zz\") should not be found")
	}
}

func TestSymbolLengthInvariant(t *testing.T) {
	for _, sym := range Default().Symbols() {
		if len(sym) < 1 || len(sym) > 2 {
			t.Errorf("Symbol %q violates the 1-2 character invariant", sym)
		}
	}
}

// custom alphabets drop anything that isn't 1-2 chars
func TestNewRejectsInvalidSymbols(t *testing.T) {
	a := New([]string{"He", "Xyz", "", "H", "He"})
	if a.Len() != 2 {
		t.Errorf("New kept %d symbols, want 2 (He and H)", a.Len())
	}
	if a.Contains("Xyz") {
		t.Error("3-character symbol should have been rejected")
	}
}
