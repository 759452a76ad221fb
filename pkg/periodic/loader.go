package periodic

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// LoadAlphabetFile builds an Alphabet from a text file with one symbol
// per line. Blank lines and lines starting with '#' are skipped; entries
// longer than 2 characters are dropped by New with a warning. Meant for
// experimenting with reduced or extended symbol sets.
func LoadAlphabetFile(path string) (*Alphabet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open alphabet file %s: %w", path, err)
	}
	defer file.Close()

	var symbols []string
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		symbols = append(symbols, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading alphabet file %s: %w", path, err)
	}

	if len(symbols) == 0 {
		return nil, fmt.Errorf("alphabet file %s contains no symbols", path)
	}

	alphabet := New(symbols)
	log.Debugf("Loaded %d symbols from %s", alphabet.Len(), path)
	return alphabet, nil
}
