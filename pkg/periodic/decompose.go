package periodic

import (
	"slices"
	"strings"
)

// chunkLens are the symbol lengths tried at each position, in order.
// The order is load-bearing: it fixes the enumeration order of results,
// and consumers rely on "first match" being the length-1-first traversal.
var chunkLens = [2]int{1, 2}

// ExactTilings returns every full tiling of word into alphabet symbols.
// Matching is case-insensitive; returned symbols are canonical case.
// Positions advance in runes so multibyte letters are never split
// mid-character. The empty word has exactly one tiling, the empty one.
func (s *Speller) ExactTilings(word string) []Tiling {
	letters := []rune(strings.ToLower(word))

	var results []Tiling
	var path Tiling

	var walk func(pos int)
	walk = func(pos int) {
		if pos == len(letters) {
			results = append(results, slices.Clone(path))
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
			walk(pos + n)
			path = path[:len(path)-1]
		}
	}
	walk(0)
	return results
}
