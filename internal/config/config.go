// Package config loads application configuration from defaults, an optional
// config file, and environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Download DownloadConfig `mapstructure:"download"`
	Whisper  WhisperConfig  `mapstructure:"whisper"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DownloadConfig holds acquisition defaults.
type DownloadConfig struct {
	Mode        string `mapstructure:"mode"`
	AudioFormat string `mapstructure:"audio_format"`
}

// WhisperConfig holds transcription engine configuration.
type WhisperConfig struct {
	Binary   string `mapstructure:"binary"`
	Model    string `mapstructure:"model"`
	ModelDir string `mapstructure:"model_dir"`
	Language string `mapstructure:"language"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Download: DownloadConfig{
			Mode:        "audio",
			AudioFormat: "best",
		},
		Whisper: WhisperConfig{
			Binary:   "whisper-cli",
			Model:    "base",
			ModelDir: defaultModelDir(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from file and environment variables.
// Priority: environment variables > config file > defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.xscribe")
	}

	v.SetEnvPrefix("XSCRIBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file in search mode just means defaults apply; an
	// explicitly named file must exist and parse
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("download.mode", defaults.Download.Mode)
	v.SetDefault("download.audio_format", defaults.Download.AudioFormat)
	v.SetDefault("whisper.binary", defaults.Whisper.Binary)
	v.SetDefault("whisper.model", defaults.Whisper.Model)
	v.SetDefault("whisper.model_dir", defaults.Whisper.ModelDir)
	v.SetDefault("whisper.language", defaults.Whisper.Language)
	v.SetDefault("logging.level", defaults.Logging.Level)
}

func defaultModelDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "xscribe-models")
	}
	return filepath.Join(home, ".xscribe", "models")
}
