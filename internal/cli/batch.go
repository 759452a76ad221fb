package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bastiangx/elemspell/internal/logger"
	"github.com/bastiangx/elemspell/internal/utils"
	"github.com/bastiangx/elemspell/pkg/periodic"
	"github.com/bastiangx/elemspell/pkg/report"
	"github.com/charmbracelet/log"
)

// BatchProcessor spells every word of an input file and optionally writes
// a results file and a missing-letters summary file.
type BatchProcessor struct {
	speller     periodic.ISpeller
	ui          *log.Logger
	maxWordLen  int
	resultLimit int
	noFilter    bool
}

// NewBatchProcessor creates a processor with the same limits as the interactive handler
func NewBatchProcessor(speller periodic.ISpeller, maxWordLen, limit int, noFilter bool) *BatchProcessor {
	return &BatchProcessor{
		speller:     speller,
		ui:          logger.Default(""),
		maxWordLen:  maxWordLen,
		resultLimit: limit,
		noFilter:    noFilter,
	}
}

// ProcessFile reads words from inputPath (one per line, trimmed, empties
// skipped), spells each and logs a per-word report. When outputPath is
// non-empty the full results are written there; when summaryPath is
// non-empty, a "<word>: A, B" line is written for every unspellable word
// whose best match leaves letters missing.
func (p *BatchProcessor) ProcessFile(inputPath, outputPath, summaryPath string) error {
	words, err := readWords(inputPath)
	if err != nil {
		return err
	}
	log.Debugf("Read %d words from %s", len(words), inputPath)

	results := make([]periodic.SpellResult, 0, len(words))
	for _, word := range words {
		if p.maxWordLen > 0 && len(word) > p.maxWordLen {
			log.Warnf("Skipping '%s': longer than %d characters", word, p.maxWordLen)
			continue
		}
		if !p.noFilter && !utils.IsValidWord(word) {
			log.Warnf("Skipping '%s': not a plain word", word)
			continue
		}

		result := p.speller.Spell(word)
		results = append(results, result)

		p.ui.Printf("Analyzing: %s", word)
		printResult(p.ui, result, p.resultLimit)
	}

	if outputPath != "" {
		if err := writeResultsFile(outputPath, results); err != nil {
			return err
		}
		p.ui.Printf("Results have been saved to %s", outputPath)
	}

	if summaryPath != "" {
		entries := report.Summarize(results)
		if len(entries) > 0 {
			if err := writeSummaryFile(summaryPath, entries); err != nil {
				return err
			}
			p.ui.Printf("Missing letters summary saved to %s", summaryPath)
		} else {
			log.Debug("No missing-letter entries, summary file not written")
		}
	}

	return nil
}

// AnalyzeSummaryFile reads an existing summary file and logs the
// single-missing-letter grouping report.
func AnalyzeSummaryFile(summaryPath string) error {
	file, err := os.Open(summaryPath)
	if err != nil {
		return fmt.Errorf("could not open summary file %s: %w", summaryPath, err)
	}
	defer file.Close()

	entries, err := report.ReadSummary(file)
	if err != nil {
		return err
	}
	groups := report.GroupBySingleMissing(entries)
	if len(groups) == 0 {
		log.Warn("No entries with exactly one missing letter")
		return nil
	}
	ui := logger.Default("")
	for _, line := range strings.Split(report.FormatGroups(groups), "\n") {
		ui.Print(line)
	}
	return nil
}

// readWords collects the trimmed, non-empty lines of a word file
func readWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input file %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input file %s: %w", path, err)
	}
	return words, nil
}

func writeResultsFile(path string, results []periodic.SpellResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create results file %s: %w", path, err)
	}
	defer file.Close()
	return report.WriteResults(file, results)
}

func writeSummaryFile(path string, entries []report.SummaryEntry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create summary file %s: %w", path, err)
	}
	defer file.Close()
	return report.WriteSummary(file, entries)
}
