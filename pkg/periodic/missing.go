package periodic

import "strings"

// MissingLetters returns the word's letters not balanced out by the
// letters of the tiling's symbols, uppercased, in original relative order.
//
// This is a multiset difference, not a positional alignment: each covered
// letter cancels one occurrence anywhere in the word, and covered letters
// with no occurrence left are silently ignored. Anagrams given the same
// tiling yield the same result. Cancellation removes the earliest
// occurrence, so later duplicates are the ones reported.
func (s *Speller) MissingLetters(word string, tiling Tiling) []string {
	lower := strings.ToLower(word)

	counts := make(map[rune]int, len(lower))
	for _, r := range lower {
		counts[r]++
	}

	consumed := make(map[rune]int, len(tiling))
	for _, sym := range tiling {
		for _, r := range strings.ToLower(sym) {
			if counts[r] > 0 {
				counts[r]--
				consumed[r]++
			}
		}
	}

	var missing []string
	for _, r := range lower {
		if consumed[r] > 0 {
			consumed[r]--
			continue
		}
		missing = append(missing, strings.ToUpper(string(r)))
	}
	return missing
}
