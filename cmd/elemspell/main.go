/*
Package main implements the element spelling server and CLI application.

ElemSpell decomposes words into tilings of chemical element symbols
("genius" -> Ge + N + I + U + S). When a word has no exact tiling, it
reports the partial tilings that skip the fewest letters, together with
the letters still missing.

# Usage

Spell a word file and save the results:

	elemspell -i words.txt -o results.txt -m missing.txt

Run in CLI mode for interactive use:

	elemspell -c -limit 10

Group an existing missing-letters summary by single missing letter:

	elemspell -analyze missing.txt

With no mode flags, elemspell starts a msgpack IPC server over
stdin/stdout for integration with editors and other tooling.

# Configuration

Runtime configuration is managed through a TOML file:

	[speller]
	max_word_len = 60
	max_results = 0

	[batch]
	results_file = ""
	summary_file = ""

	[cli]
	default_no_filter = false
	show_timing = false

The config file is automatically created with defaults if it doesn't exist.
Server mode reloads configuration periodically without restart.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Spell requests
are processed synchronously with microsecond timing information included
in responses.

Send a spell request:

	{"id": "req1", "w": "cobalt", "l": 20}

Receive tilings in traversal order:

	{"id": "req1", "ok": false, "cm": [{"sym": ["C", "O", "B", "Al"], "n": 1, "m": ["T"]}], "c": 1, "t": 145}

# Command Line Flags

The following flags control application behavior:

	-i string
	    Input word file, one word per line (batch mode)
	-o string
	    Results output file (batch mode)
	-m string
	    Missing-letters summary output file (batch mode)
	-analyze string
	    Group an existing summary file by single missing letter
	-c  Run in CLI mode instead of server mode
	-d  Enable debug mode with detailed logging
	-config string
	    Custom config file path
	-limit int
	    Maximum tilings shown per word (0 for all)
	-maxlen int
	    Maximum word length accepted
	-alphabet string
	    Custom alphabet file, one symbol per line (default: the 118 elements)
	-no-filter
	    Disable input filtering - spells raw input (numbers, symbols, etc)
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/elemspell/internal/cli"
	"github.com/bastiangx/elemspell/pkg/config"
	"github.com/bastiangx/elemspell/pkg/periodic"
	"github.com/bastiangx/elemspell/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "1.1.0"
	AppName = "elemspell"
	gh      = "https://github.com/bastiangx/elemspell"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to run batch, CLI or server mode.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- interactive word spelling")
	configPath := flag.String("config", "", "Custom config file path")
	inputFile := flag.String("i", "", "Input word file, one word per line")
	outputFile := flag.String("o", defaultConfig.Batch.ResultsFile, "Results output file")
	summaryFile := flag.String("m", defaultConfig.Batch.SummaryFile, "Missing-letters summary output file")
	analyzeFile := flag.String("analyze", "", "Group an existing summary file by single missing letter")
	alphabetFile := flag.String("alphabet", "", "Custom alphabet file, one symbol per line (default: the 118 elements)")
	limit := flag.Int("limit", defaultConfig.Speller.MaxResults, "Maximum tilings shown per word (0 for all)")
	maxWordLen := flag.Int("maxlen", defaultConfig.Speller.MaxWordLen, "Maximum word length accepted")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering - spells raw input (numbers, symbols, etc)")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activeConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfigPath))

	// flags win over config file values
	if *maxWordLen != defaultConfig.Speller.MaxWordLen {
		appConfig.Speller.MaxWordLen = *maxWordLen
	}
	if *limit != defaultConfig.Speller.MaxResults {
		appConfig.Speller.MaxResults = *limit
	}

	alphabet := periodic.Default()
	if *alphabetFile != "" {
		alphabet, err = periodic.LoadAlphabetFile(*alphabetFile)
		if err != nil {
			log.Fatalf("Failed to load alphabet: %v", err)
			os.Exit(1)
		}
	}
	speller := periodic.NewSpeller(alphabet)
	log.Debugf("Alphabet loaded: %d symbols", speller.Alphabet().Len())

	if *analyzeFile != "" {
		log.SetReportTimestamp(false)
		if err := cli.AnalyzeSummaryFile(*analyzeFile); err != nil {
			log.Fatalf("Analysis error: %v", err)
			os.Exit(1)
		}
		return
	}

	if *inputFile != "" {
		log.SetReportTimestamp(false)
		processor := cli.NewBatchProcessor(speller, appConfig.Speller.MaxWordLen, appConfig.Speller.MaxResults, *noFilter)
		if err := processor.ProcessFile(*inputFile, *outputFile, *summaryFile); err != nil {
			log.Fatalf("Batch error: %v", err)
			os.Exit(1)
		}
		return
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"maxWordLen", appConfig.Speller.MaxWordLen,
			"limit", appConfig.Speller.MaxResults,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(speller, appConfig.Speller.MaxWordLen, appConfig.Speller.MaxResults, *noFilter, appConfig.CLI.ShowTiming)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(speller, appConfig, activeConfigPath)

	showStartupInfo(speller.Alphabet().Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showVersionInfo prints the styled version banner.
func showVersionInfo() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["version"] = lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ ElemSpell ] Spells words with the periodic table!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(symbolCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" ElemSpell ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("alphabet: [ %d symbols ]", symbolCount)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
