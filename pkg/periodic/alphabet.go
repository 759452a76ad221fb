package periodic

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// elementSymbols holds the 118 IUPAC symbols in atomic-number order.
// Canonical casing is kept as-is; lookups go through the lowercase trie.
var elementSymbols = []string{
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// Alphabet is the fixed set of element symbols a Speller matches against.
// Symbols are stored in a patricia trie keyed by their lowercase form with
// the canonical mixed-case form as the item. Never mutated after New.
type Alphabet struct {
	trie    *patricia.Trie
	symbols []string
}

// New builds an Alphabet from the given canonical-case symbols.
// Entries that are empty or longer than 2 characters are skipped with a warning.
func New(symbols []string) *Alphabet {
	a := &Alphabet{
		trie:    patricia.NewTrie(),
		symbols: make([]string, 0, len(symbols)),
	}
	for _, sym := range symbols {
		if len(sym) == 0 || len(sym) > 2 {
			log.Warnf("Skipping invalid symbol %q: must be 1-2 characters", sym)
			continue
		}
		lower := strings.ToLower(sym)
		if item := a.trie.Get(patricia.Prefix(lower)); item != nil {
			log.Debugf("Duplicate symbol %q ignored", sym)
			continue
		}
		a.trie.Insert(patricia.Prefix(lower), sym)
		a.symbols = append(a.symbols, sym)
	}
	return a
}

// Default returns the alphabet of all 118 element symbols.
func Default() *Alphabet {
	return New(elementSymbols)
}

// Contains reports whether candidate is a symbol, case-insensitively.
func (a *Alphabet) Contains(candidate string) bool {
	_, ok := a.Canonical(candidate)
	return ok
}

// Canonical returns the stored mixed-case form of candidate ("na" -> "Na").
// The second return is false when candidate is not in the alphabet.
func (a *Alphabet) Canonical(candidate string) (string, bool) {
	if len(candidate) == 0 || len(candidate) > 2 {
		return "", false
	}
	item := a.trie.Get(patricia.Prefix(strings.ToLower(candidate)))
	if item == nil {
		return "", false
	}
	sym, ok := item.(string)
	if !ok {
		log.Errorf("Unknown item type: %T for symbol %s", item, candidate)
		return "", false
	}
	return sym, true
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns the canonical symbols in insertion order.
// The returned slice is a copy, safe for the caller to modify.
func (a *Alphabet) Symbols() []string {
	out := make([]string, len(a.symbols))
	copy(out, a.symbols)
	return out
}
