package report

import (
	"strings"
	"testing"

	"github.com/bastiangx/elemspell/pkg/periodic"
)

func TestRenderTiling(t *testing.T) {
	testCases := []struct {
		tiling periodic.Tiling
		want   string
	}{
		{periodic.Tiling{"C", "O", "B", "Al"}, "C + O + B + Al"},
		{periodic.Tiling{"He"}, "He"},
		{nil, ""},
	}
	for _, tc := range testCases {
		if got := RenderTiling(tc.tiling); got != tc.want {
			t.Errorf("RenderTiling(%v) = %q, want %q", tc.tiling, got, tc.want)
		}
	}
}

func TestWriteResultSpellable(t *testing.T) {
	var b strings.Builder
	result := periodic.SpellResult{
		Word:     "He",
		CanSpell: true,
		Exact:    []periodic.Tiling{{"He"}},
	}
	if err := WriteResult(&b, result); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}
	out := b.String()
	for _, want := range []string{"Word: He", "Can be spelled with elements!", "1. He"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteResultUnspellable(t *testing.T) {
	var b strings.Builder
	result := periodic.SpellResult{
		Word: "Cobalt",
		Closest: []periodic.Match{
			{Tiling: periodic.Tiling{"C", "O", "B", "Al"}, MissingCount: 1, Missing: []string{"T"}},
		},
	}
	if err := WriteResult(&b, result); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}
	out := b.String()
	for _, want := range []string{"Cannot be spelled exactly", "Missing 1 letters: C + O + B + Al", "Letters needed: T"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestSummarizeUsesFirstMatchOnly(t *testing.T) {
	results := []periodic.SpellResult{
		{Word: "He", CanSpell: true, Exact: []periodic.Tiling{{"He"}}},
		{Word: "Cobalt", Closest: []periodic.Match{
			{Tiling: periodic.Tiling{"C", "O", "B", "Al"}, MissingCount: 1, Missing: []string{"T"}},
			{Tiling: periodic.Tiling{"Co", "B", "Al"}, MissingCount: 1, Missing: []string{"T"}},
		}},
	}
	entries := Summarize(results)
	if len(entries) != 1 {
		t.Fatalf("Summarize returned %d entries, want 1", len(entries))
	}
	if got := FormatEntry(entries[0]); got != "Cobalt: T" {
		t.Errorf("FormatEntry = %q, want %q", got, "Cobalt: T")
	}
}

func TestParseEntry(t *testing.T) {
	testCases := []struct {
		line    string
		word    string
		letters []string
		ok      bool
	}{
		{"Austria: T, R, A", "Austria", []string{"T", "R", "A"}, true},
		{"Italy: L", "Italy", []string{"L"}, true},
		{"no colon here", "", nil, false},
	}
	for _, tc := range testCases {
		entry, ok := ParseEntry(tc.line)
		if ok != tc.ok {
			t.Errorf("ParseEntry(%q) ok = %v, want %v", tc.line, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}
		if entry.Word != tc.word || len(entry.Letters) != len(tc.letters) {
			t.Errorf("ParseEntry(%q) = %+v, want word %q letters %v", tc.line, entry, tc.word, tc.letters)
		}
	}
}

func TestGroupBySingleMissing(t *testing.T) {
	entries := []SummaryEntry{
		{Word: "Albania", Letters: []string{"A"}},
		{Word: "Croatia", Letters: []string{"A"}},
		{Word: "Hungary", Letters: []string{"R"}},
		{Word: "Hungary", Letters: []string{"G"}},
		{Word: "Austria", Letters: []string{"T", "R", "A"}}, // multi-letter, ignored
	}
	groups := GroupBySingleMissing(entries)
	if len(groups) != 3 {
		t.Fatalf("GroupBySingleMissing returned %d groups, want 3", len(groups))
	}
	if groups[0].Letter != "A" || len(groups[0].Words) != 2 {
		t.Errorf("Largest group = %+v, want letter A with 2 words", groups[0])
	}

	out := FormatGroups(groups)
	if !strings.Contains(out, "+A = +2 words:") {
		t.Errorf("FormatGroups output missing group header:\n%s", out)
	}
	if !strings.Contains(out, "Albania, Croatia") {
		t.Errorf("FormatGroups output missing word list:\n%s", out)
	}
}

func TestReadSummaryRoundTrip(t *testing.T) {
	entries := []SummaryEntry{
		{Word: "Cobalt", Letters: []string{"T"}},
		{Word: "Xyz", Letters: []string{"X", "Y", "Z"}},
	}
	var b strings.Builder
	if err := WriteSummary(&b, entries); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	parsed, err := ReadSummary(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ReadSummary failed: %v", err)
	}
	if len(parsed) != len(entries) {
		t.Fatalf("Round trip lost entries: got %d, want %d", len(parsed), len(entries))
	}
	for i := range parsed {
		if parsed[i].Word != entries[i].Word || len(parsed[i].Letters) != len(entries[i].Letters) {
			t.Errorf("Entry %d = %+v, want %+v", i, parsed[i], entries[i])
		}
	}
}
