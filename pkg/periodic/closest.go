package periodic

import (
	"slices"
	"strings"
)

// ClosestMatches enumerates all partial tilings of word that skip the
// fewest letters. Intended for words with no exact tiling; running it on
// a spellable word returns its exact tilings with MissingCount 0.
//
// Positions and counts are in runes, matching the letter accounting of
// MissingLetters, so multibyte input like "café" reports consistent
// missing counts.
//
// Every recursive branch advances the position by at least one, so the
// search terminates at depth <= len(word). No pruning is applied beyond
// the running best: ties accumulate, a strictly better result resets the
// set. Results come back in DFS order, length-1 before length-2 before
// skip at each position.
func (s *Speller) ClosestMatches(word string) []Match {
	letters := []rune(strings.ToLower(word))

	best := len(letters) + 1
	var results []Match
	var path Tiling

	var walk func(pos, used int)
	walk = func(pos, used int) {
		if pos >= len(letters) {
			missing := len(letters) - used
			if missing > best {
				return
			}
			if missing < best {
				best = missing
				results = results[:0]
			}
			tiling := slices.Clone(path)
			results = append(results, Match{
				Tiling:       tiling,
				MissingCount: missing,
				Missing:      s.MissingLetters(word, tiling),
			})
			return
		}
		for _, n := range chunkLens {
			if pos+n > len(letters) {
				break
			}
			sym, ok := s.alphabet.Canonical(string(letters[pos : pos+n]))
			if !ok {
				continue
			}
			path = append(path, sym)
			walk(pos+n, used+n)
			path = path[:len(path)-1]
		}
		// skip branch: leave this letter uncovered
		walk(pos+1, used)
	}
	walk(0, 0)
	return results
}
