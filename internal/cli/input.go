// Package cli handles cmd line input and batch word files for testing and everyday use
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/elemspell/internal/logger"
	"github.com/bastiangx/elemspell/internal/utils"
	"github.com/bastiangx/elemspell/pkg/periodic"
	"github.com/bastiangx/elemspell/pkg/report"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, spelling each word with
// element symbols. It accepts flags to control behavior such as maximum
// word length, result limits, and filtering options.
type InputHandler struct {
	speller      periodic.ISpeller
	ui           *log.Logger
	maxWordLen   int
	resultLimit  int
	requestCount int
	noFilter     bool
	showTiming   bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(speller periodic.ISpeller, maxWordLen, limit int, noFilter, showTiming bool) *InputHandler {
	return &InputHandler{
		speller:     speller,
		ui:          logger.Default(""),
		maxWordLen:  maxWordLen,
		resultLimit: limit,
		noFilter:    noFilter,
		showTiming:  showTiming,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed word to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	h.ui.Print("ElemSpell CLI")
	reader := bufio.NewReader(os.Stdin)
	h.ui.Print("type a word and press Enter to see its element spellings (Ctrl+C to exit):")

	for {
		h.ui.Print("> ")
		word, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		h.handleInput(word)
	}
}

// handleInput processes a single word. It validates the word's length and
// content, then asks the speller for a result. Exact spellings are listed
// in traversal order; otherwise the closest matches are shown with their
// missing letters.
func (h *InputHandler) handleInput(word string) {
	h.requestCount++

	if h.maxWordLen > 0 && len(word) > h.maxWordLen {
		log.Errorf("Word too long: %s", word)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidWord(word) {
			log.Warnf("Skipping '%s': not a plain word", word)
			return
		}
	} else {
		log.Debug("Input filtering disabled - spelling raw input")
	}

	start := time.Now()
	log.Debug("Processing request for", "word", word)

	result := h.speller.Spell(word)

	elapsed := time.Since(start)
	if h.showTiming {
		h.ui.Printf("Took [ %v ] for '%s'", elapsed, word)
	} else {
		log.Debugf("Took [ %v ] for '%s'", elapsed, word)
	}

	printResult(h.ui, result, h.resultLimit)
}

// printResult pretty-prints a spell result
func printResult(ui *log.Logger, result periodic.SpellResult, limit int) {
	clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", result.Word)

	if result.CanSpell {
		exact := result.Exact
		if limit > 0 && len(exact) > limit {
			log.Debugf("Showing %d of %d spellings", limit, len(exact))
			exact = exact[:limit]
		}
		ui.Printf("%s can be spelled with elements! %d spelling(s):", clWord, len(result.Exact))
		for i, tiling := range exact {
			ui.Printf("%2d. %s", i+1, report.RenderTiling(tiling))
		}
		return
	}

	ui.Printf("%s cannot be spelled exactly with elements", clWord)
	closest := result.Closest
	if limit > 0 && len(closest) > limit {
		log.Debugf("Showing %d of %d closest matches", limit, len(closest))
		closest = closest[:limit]
	}
	ui.Print("Closest matches:")
	for _, match := range closest {
		ui.Printf("Missing %d letters: %s", match.MissingCount, report.RenderTiling(match.Tiling))
		if len(match.Missing) > 0 {
			ui.Printf("Letters needed: %s", report.RenderMissing(match.Missing))
		}
	}
}
