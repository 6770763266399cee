package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	// Test a few key bindings
	if defaults.Send != "enter" {
		t.Errorf("Default Send key = %s, want enter", defaults.Send)
	}
	if defaults.InsertNewline != "shift+enter" {
		t.Errorf("Default InsertNewline key = %s, want shift+enter", defaults.InsertNewline)
	}
	if defaults.NewChat != "ctrl+n" {
		t.Errorf("Default NewChat key = %s, want ctrl+n", defaults.NewChat)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Set to a temp dir that doesn't have a config
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.KeyMappings.Send != "enter" {
		t.Errorf("Loaded config Send key = %s, want enter (default)", cfg.KeyMappings.Send)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Create temp dir with config
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "folio")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	// Write custom config
	configContent := `key_mappings:
  send: "ctrl+s"
  new_chat: "ctrl+t"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	// Should load custom values
	if cfg.KeyMappings.Send != "ctrl+s" {
		t.Errorf("Loaded Send key = %s, want ctrl+s", cfg.KeyMappings.Send)
	}
	if cfg.KeyMappings.NewChat != "ctrl+t" {
		t.Errorf("Loaded NewChat key = %s, want ctrl+t", cfg.KeyMappings.NewChat)
	}

	// Missing values should fall back to defaults
	if cfg.KeyMappings.InsertNewline != "shift+enter" {
		t.Errorf("Missing InsertNewline = %s, want shift+enter (default)", cfg.KeyMappings.InsertNewline)
	}
	if cfg.KeyMappings.Quit != "ctrl+c" {
		t.Errorf("Missing Quit = %s, want ctrl+c (default)", cfg.KeyMappings.Quit)
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.KeyMappings.Send = "ctrl+enter"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save failed: %v", err)
	}
	if loaded.KeyMappings.Send != "ctrl+enter" {
		t.Errorf("Reloaded Send key = %s, want ctrl+enter", loaded.KeyMappings.Send)
	}
}
