package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bastiangx/elemspell/pkg/periodic"
	"github.com/charmbracelet/log"
)

// SummaryEntry is one missing-letters summary line: a word and the
// letters its best closest match could not cover.
type SummaryEntry struct {
	Word    string
	Letters []string
}

// Summarize collects a summary entry for every unspellable word whose
// first closest match (traversal order) has a non-empty missing list.
func Summarize(results []periodic.SpellResult) []SummaryEntry {
	var entries []SummaryEntry
	for _, result := range results {
		if result.CanSpell || len(result.Closest) == 0 {
			continue
		}
		best := result.Closest[0]
		if len(best.Missing) == 0 {
			continue
		}
		entries = append(entries, SummaryEntry{
			Word:    result.Word,
			Letters: best.Missing,
		})
	}
	return entries
}

// FormatEntry renders an entry as a summary line: "word: A, B".
func FormatEntry(e SummaryEntry) string {
	return fmt.Sprintf("%s: %s", e.Word, RenderMissing(e.Letters))
}

// WriteSummary writes one summary line per entry.
func WriteSummary(w io.Writer, entries []SummaryEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, FormatEntry(e)); err != nil {
			return err
		}
	}
	return nil
}

// ParseEntry parses a summary line back into an entry.
// Lines without a colon are rejected.
func ParseEntry(line string) (SummaryEntry, bool) {
	word, letters, found := strings.Cut(line, ":")
	if !found {
		return SummaryEntry{}, false
	}
	entry := SummaryEntry{Word: strings.TrimSpace(word)}
	for _, l := range strings.Split(letters, ",") {
		l = strings.TrimSpace(l)
		if l != "" {
			entry.Letters = append(entry.Letters, l)
		}
	}
	return entry, true
}

// ReadSummary parses a summary file, skipping malformed lines.
func ReadSummary(r io.Reader) ([]SummaryEntry, error) {
	var entries []SummaryEntry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		entry, ok := ParseEntry(line)
		if !ok {
			log.Debugf("Skipping malformed summary line: %q", line)
			continue
		}
		entries = append(entries, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading summary: %w", err)
	}
	return entries, nil
}

// LetterGroup is a set of words that all miss the same single letter.
type LetterGroup struct {
	Letter string
	Words  []string
}

// GroupBySingleMissing groups entries that miss exactly one letter by
// that letter. Entries missing zero or several letters are ignored.
// Groups come back sorted by descending size, ties by letter.
func GroupBySingleMissing(entries []SummaryEntry) []LetterGroup {
	byLetter := make(map[string][]string)
	for _, e := range entries {
		if len(e.Letters) != 1 {
			continue
		}
		letter := e.Letters[0]
		byLetter[letter] = append(byLetter[letter], e.Word)
	}

	groups := make([]LetterGroup, 0, len(byLetter))
	for letter, words := range byLetter {
		groups = append(groups, LetterGroup{Letter: letter, Words: words})
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].Words) != len(groups[j].Words) {
			return len(groups[i].Words) > len(groups[j].Words)
		}
		return groups[i].Letter < groups[j].Letter
	})
	return groups
}

// FormatGroups renders the single-missing-letter analysis:
//
//	+T = +5 words:
//	austria, estonia, ...
func FormatGroups(groups []LetterGroup) string {
	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "+%s = +%d words:\n", g.Letter, len(g.Words))
		b.WriteString(strings.Join(g.Words, ", "))
		b.WriteString("\n\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
