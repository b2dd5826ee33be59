package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/vocanote"
	"github.com/fwojciec/vocanote/gemini"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

// Storage backends.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config holds settings read from the environment.
type Config struct {
	Storage   string `env:"VOCANOTE_STORAGE" env-default:"file" env-description:"Storage backend: file or sqlite"`
	Dir       string `env:"VOCANOTE_DIR" env-description:"Data directory (default ~/.vocanote)"`
	Lang      string `env:"VOCANOTE_LANG" env-default:"pt-BR" env-description:"Dictation language tag"`
	LogLevel  string `env:"VOCANOTE_LOG_LEVEL" env-default:"warn"`
	LogPretty bool   `env:"VOCANOTE_LOG_PRETTY" env-default:"true"`
	Model     string `env:"VOCANOTE_MODEL" env-description:"Gemini model used for dictation"`
	APIKey    string `env:"GEMINI_API_KEY"`
}

// LoadConfig reads configuration from the environment, after loading a
// .env file from the working directory if one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Dir == "" {
		cfg.Dir = defaultDir()
	}
	if cfg.Model == "" {
		cfg.Model = gemini.DefaultModel
	}
	return &cfg, nil
}

// RecognitionOptions returns dictation options for the configured language.
func (c *Config) RecognitionOptions() vocanote.RecognitionOptions {
	opts := vocanote.DefaultRecognitionOptions()
	if c.Lang != "" {
		opts.Lang = c.Lang
	}
	return opts
}

// NewLogger builds the process logger. Pretty output uses tint for
// terminals; otherwise records are JSON.
func NewLogger(w io.Writer, level string, pretty bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var handler slog.Handler
	if pretty {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: lvl,
		})
	}
	return slog.New(handler), nil
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vocanote"
	}
	return filepath.Join(home, ".vocanote")
}
