// Package periodic is the core, decomposing words into tilings of chemical
// element symbols and finding the closest partial covers when no exact
// tiling exists.
package periodic

// Tiling is an ordered sequence of canonical-case symbols whose lowercase
// concatenation covers the word (fully for exact results, partially for
// closest matches).
type Tiling []string

// Match is a partial tiling achieving the minimum missing-letter count,
// paired with that count and the unmatched letters of the word.
type Match struct {
	Tiling       Tiling
	MissingCount int
	Missing      []string
}

// SpellResult is the full report for a single word.
// Closest is populated only when Exact is empty.
type SpellResult struct {
	Word     string
	CanSpell bool
	Exact    []Tiling
	Closest  []Match
}

// ISpeller defines the interface for element spelling engines
type ISpeller interface {
	// Spell returns the full decomposition report for a word
	Spell(word string) SpellResult

	// Alphabet returns the symbol set the engine matches against
	Alphabet() *Alphabet
}

// Speller decomposes words against a fixed Alphabet.
// It holds no per-word state; a single Speller is safe for
// concurrent read-only use across goroutines.
type Speller struct {
	alphabet *Alphabet
}

// NewSpeller creates a Speller over the given alphabet.
// A nil alphabet falls back to the default 118-symbol set.
func NewSpeller(alphabet *Alphabet) *Speller {
	if alphabet == nil {
		alphabet = Default()
	}
	return &Speller{alphabet: alphabet}
}

// Alphabet returns the symbol set this speller matches against.
func (s *Speller) Alphabet() *Alphabet {
	return s.alphabet
}

// Spell is the single entry point callers need: it tries the exact
// decomposition first and falls back to the closest-match search only
// when no full tiling exists. Pure function of the word and alphabet.
func (s *Speller) Spell(word string) SpellResult {
	exact := s.ExactTilings(word)
	result := SpellResult{
		Word:     word,
		CanSpell: len(exact) > 0,
		Exact:    exact,
	}
	if len(exact) == 0 {
		result.Closest = s.ClosestMatches(word)
	}
	return result
}
