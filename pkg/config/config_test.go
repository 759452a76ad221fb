package config

import (
	"path/filepath"
	"testing"
)

func TestUpdatePersistsLimits(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	if err := SaveConfig(cfg, configPath); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	maxWordLen := 80
	maxResults := 12
	if err := cfg.Update(configPath, &maxWordLen, &maxResults); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if cfg.Speller.MaxWordLen != 80 || cfg.Speller.MaxResults != 12 {
		t.Errorf("Update left in-memory limits at %d/%d, want 80/12",
			cfg.Speller.MaxWordLen, cfg.Speller.MaxResults)
	}

	reloaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if reloaded.Speller.MaxWordLen != 80 {
		t.Errorf("Reloaded max_word_len = %d, want 80", reloaded.Speller.MaxWordLen)
	}
	if reloaded.Speller.MaxResults != 12 {
		t.Errorf("Reloaded max_results = %d, want 12", reloaded.Speller.MaxResults)
	}
}

// nil fields must leave the current values alone
func TestUpdateNilKeepsValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	maxResults := 5
	if err := cfg.Update(configPath, nil, &maxResults); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if cfg.Speller.MaxWordLen != DefaultConfig().Speller.MaxWordLen {
		t.Errorf("Update with nil max_word_len changed it to %d", cfg.Speller.MaxWordLen)
	}
	if cfg.Speller.MaxResults != 5 {
		t.Errorf("Update set max_results to %d, want 5", cfg.Speller.MaxResults)
	}

	reloaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if reloaded.Speller.MaxResults != 5 {
		t.Errorf("Reloaded max_results = %d, want 5", reloaded.Speller.MaxResults)
	}
}
