/*
Package config manages TOML config for the elemspell services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/elemspell/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Speller SpellerConfig `toml:"speller"`
	Batch   BatchConfig   `toml:"batch"`
	CLI     CliConfig     `toml:"cli"`
}

// SpellerConfig has decomposition related options.
type SpellerConfig struct {
	// MaxWordLen bounds the closest-match search; words longer than this
	// are rejected before the core runs.
	MaxWordLen int `toml:"max_word_len"`
	// MaxResults caps how many tilings are shown per word (0 for all).
	MaxResults int `toml:"max_results"`
}

// BatchConfig holds default output paths for file processing.
type BatchConfig struct {
	ResultsFile string `toml:"results_file"`
	SummaryFile string `toml:"summary_file"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultNoFilter bool `toml:"default_no_filter"`
	ShowTiming      bool `toml:"show_timing"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "elemspell")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "elemspell")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/elemspell/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Speller: SpellerConfig{
			MaxWordLen: 60,
			MaxResults: 0,
		},
		Batch: BatchConfig{
			ResultsFile: "",
			SummaryFile: "",
		},
		CLI: CliConfig{
			DefaultNoFilter: false,
			ShowTiming:      false,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if spellerSection, ok := utils.ExtractSection(tempConfig, "speller"); ok {
		extractSpellerConfig(spellerSection, &config.Speller)
	}
	if batchSection, ok := utils.ExtractSection(tempConfig, "batch"); ok {
		extractBatchConfig(batchSection, &config.Batch)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

// extractSpellerConfig extracts speller configuration from a map
func extractSpellerConfig(data map[string]any, speller *SpellerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		speller.MaxWordLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_results"); ok {
		speller.MaxResults = val
	}
}

// extractBatchConfig extracts batch configuration from a map
func extractBatchConfig(data map[string]any, batch *BatchConfig) {
	if val, ok := utils.ExtractString(data, "results_file"); ok {
		batch.ResultsFile = val
	}
	if val, ok := utils.ExtractString(data, "summary_file"); ok {
		batch.SummaryFile = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "default_no_filter"); ok {
		cli.DefaultNoFilter = val
	}
	if val, ok := utils.ExtractBool(data, "show_timing"); ok {
		cli.ShowTiming = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the config values and saves to file
func (c *Config) Update(configPath string, maxWordLen, maxResults *int) error {
	speller := &c.Speller
	if maxWordLen != nil {
		speller.MaxWordLen = *maxWordLen
	}
	if maxResults != nil {
		speller.MaxResults = *maxResults
	}
	return SaveConfig(c, configPath)
}
