package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/orgoj/daylog/internal/logrecord"
)

// LoggerRule configures the facades whose names match Pattern. The first
// matching rule wins when a logger is created; names that match no rule
// get the built-in defaults (INFO, text and json day files, no console).
type LoggerRule struct {
	Pattern string `yaml:"pattern" validate:"required"`
	Level   string `yaml:"level,omitempty" validate:"omitempty,oneof=DEBUG INFO WARN ERROR FATAL"`
	Console bool   `yaml:"console,omitempty"`
	Text    bool   `yaml:"text"`
	JSON    bool   `yaml:"json"`
}

// MinLevel returns the rule's minimum level, INFO when unset.
func (r *LoggerRule) MinLevel() logrecord.Level {
	if r.Level == "" {
		return logrecord.INFO
	}
	level, err := logrecord.ParseLevel(r.Level)
	if err != nil {
		return logrecord.INFO
	}
	return level
}

// AppLog configures the process diagnostic logger. File is optional;
// when set, diagnostics are mirrored to a size-rotated file.
type AppLog struct {
	Level      string `yaml:"level,omitempty" validate:"omitempty,oneof=DEBUG INFO WARN ERROR FATAL"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups,omitempty" validate:"gte=0"`
	Compress   bool   `yaml:"compress,omitempty"`
}

// Config represents the application configuration
type Config struct {
	// LogsRoot is the directory that holds one subdirectory of day files
	// per logger name.
	LogsRoot string `yaml:"logs_root" validate:"required"`

	AppLog  AppLog       `yaml:"app_log"`
	Loggers []LoggerRule `yaml:"loggers" validate:"dive"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		LogsRoot: "logs",
		AppLog:   AppLog{Level: "WARN"},
	}
}

// LoadConfig loads and validates the configuration from a file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file '%s': %w", path, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ValidateConfig performs structural and semantic validation of the
// configuration.
func ValidateConfig(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return err
	}

	for i, rule := range cfg.Loggers {
		if _, err := glob.Compile(rule.Pattern); err != nil {
			return fmt.Errorf("loggers[%d]: invalid pattern '%s': %w", i, rule.Pattern, err)
		}
		if !rule.Text && !rule.JSON && !rule.Console {
			return fmt.Errorf("loggers[%d]: pattern '%s' enables no output (text, json and console all disabled)", i, rule.Pattern)
		}
	}

	if cfg.AppLog.File == "" && (cfg.AppLog.MaxSizeMB > 0 || cfg.AppLog.MaxBackups > 0 || cfg.AppLog.Compress) {
		return errors.New("app_log rotation settings require app_log.file")
	}

	return nil
}
