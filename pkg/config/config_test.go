package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Spell.MaxEditDistance != 2 {
		t.Errorf("default max_edit_distance = %d; want 2", cfg.Spell.MaxEditDistance)
	}
	if cfg.Spell.PrefixLength != 7 {
		t.Errorf("default prefix_length = %d; want 7", cfg.Spell.PrefixLength)
	}
	if cfg.Spell.CountThreshold != 1 {
		t.Errorf("default count_threshold = %d; want 1", cfg.Spell.CountThreshold)
	}
	if cfg.CLI.DefaultVerbosity != "top" {
		t.Errorf("default verbosity = %q; want %q", cfg.CLI.DefaultVerbosity, "top")
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if cfg.Spell.MaxEditDistance != 2 {
		t.Errorf("created config max_edit_distance = %d; want 2", cfg.Spell.MaxEditDistance)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	want := DefaultConfig()
	want.Spell.MaxEditDistance = 1
	want.Spell.CountThreshold = 10
	want.Server.DefaultLimit = 32
	want.CLI.DefaultVerbosity = "all"
	if err := SaveConfig(want, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got.Spell.MaxEditDistance != 1 || got.Spell.CountThreshold != 10 {
		t.Errorf("spell section = %+v; want %+v", got.Spell, want.Spell)
	}
	if got.Server.DefaultLimit != 32 {
		t.Errorf("server default_limit = %d; want 32", got.Server.DefaultLimit)
	}
	if got.CLI.DefaultVerbosity != "all" {
		t.Errorf("cli default_verbosity = %q; want %q", got.CLI.DefaultVerbosity, "all")
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[spell]\nmax_edit_distance = 3\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Spell.MaxEditDistance != 3 {
		t.Errorf("max_edit_distance = %d; want 3", cfg.Spell.MaxEditDistance)
	}
	// untouched sections keep their defaults
	if cfg.Server.DefaultLimit != 16 {
		t.Errorf("server default_limit = %d; want default 16", cfg.Server.DefaultLimit)
	}
}

func TestLoadConfigSanitizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	bad := "[spell]\nmax_edit_distance = -4\nprefix_length = 0\n"
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Spell.MaxEditDistance != 2 {
		t.Errorf("max_edit_distance = %d; want sanitized default 2", cfg.Spell.MaxEditDistance)
	}
	if cfg.Spell.PrefixLength != 7 {
		t.Errorf("prefix_length = %d; want sanitized default 7", cfg.Spell.PrefixLength)
	}
}
