// Package report renders spell results for humans and files, and
// aggregates missing-letter summaries across a word list.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/elemspell/pkg/periodic"
)

// RenderTiling joins a tiling's symbols with " + " ("C + O + B + Al").
func RenderTiling(t periodic.Tiling) string {
	return strings.Join(t, " + ")
}

// RenderMissing joins missing letters with ", " ("X, Y, Z").
func RenderMissing(letters []string) string {
	return strings.Join(letters, ", ")
}

// WriteResult writes the per-word file block for a single result.
func WriteResult(w io.Writer, result periodic.SpellResult) error {
	if _, err := fmt.Fprintf(w, "\nWord: %s\n", result.Word); err != nil {
		return err
	}
	if result.CanSpell {
		fmt.Fprint(w, "Can be spelled with elements!\n")
		fmt.Fprint(w, "Solutions:\n")
		for i, tiling := range result.Exact {
			if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, RenderTiling(tiling)); err != nil {
				return err
			}
		}
		return nil
	}
	fmt.Fprint(w, "Cannot be spelled exactly with elements\n")
	fmt.Fprint(w, "Closest matches:\n")
	for _, match := range result.Closest {
		if _, err := fmt.Fprintf(w, "Missing %d letters: %s\n", match.MissingCount, RenderTiling(match.Tiling)); err != nil {
			return err
		}
		if len(match.Missing) > 0 {
			if _, err := fmt.Fprintf(w, "Letters needed: %s\n", RenderMissing(match.Missing)); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteResults writes the file blocks for a whole run.
func WriteResults(w io.Writer, results []periodic.SpellResult) error {
	for _, result := range results {
		if err := WriteResult(w, result); err != nil {
			return err
		}
	}
	return nil
}
