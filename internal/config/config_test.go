package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Download.Mode != "audio" {
		t.Errorf("Expected default mode audio, got %q", cfg.Download.Mode)
	}
	if cfg.Download.AudioFormat != "best" {
		t.Errorf("Expected default format best, got %q", cfg.Download.AudioFormat)
	}
	if cfg.Whisper.Binary != "whisper-cli" {
		t.Errorf("Expected default whisper binary, got %q", cfg.Whisper.Binary)
	}
	if cfg.Whisper.Model != "base" {
		t.Errorf("Expected default model base, got %q", cfg.Whisper.Model)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
download:
  mode: video
whisper:
  model: small
  language: de
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Download.Mode != "video" {
		t.Errorf("Expected mode video from file, got %q", cfg.Download.Mode)
	}
	if cfg.Download.AudioFormat != "best" {
		t.Errorf("Expected unset key to keep its default, got %q", cfg.Download.AudioFormat)
	}
	if cfg.Whisper.Model != "small" || cfg.Whisper.Language != "de" {
		t.Errorf("Unexpected whisper config: %+v", cfg.Whisper)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug level, got %q", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("whisper:\n  model: small\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Setenv("XSCRIBE_WHISPER_MODEL", "medium")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Whisper.Model != "medium" {
		t.Errorf("Expected env to win over file, got %q", cfg.Whisper.Model)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for an explicitly named missing config file")
	}
}
