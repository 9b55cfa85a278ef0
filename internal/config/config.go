package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// Script execution modes
const (
	ModeStrict  = "strict"
	ModeLenient = "lenient"
)

// StdoutPath selects standard output as the emitter sink
const StdoutPath = "-"

// Config represents the complete configuration for the script runner
type Config struct {
	Output     OutputConfig     `yaml:"output" toml:"output"`
	Transcript TranscriptConfig `yaml:"transcript" toml:"transcript"`
	Mode       string           `yaml:"mode" toml:"mode"`
}

// OutputConfig selects where emitted lines go
type OutputConfig struct {
	Path string `yaml:"path" toml:"path"` // "-" for stdout
}

// TranscriptConfig holds the JSONL transcript settings
type TranscriptConfig struct {
	Enabled    bool   `yaml:"enabled" toml:"enabled"`
	Dir        string `yaml:"dir" toml:"dir"`
	MaxSizeMB  int    `yaml:"maxSizeMb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"maxBackups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"maxAgeDays" toml:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

// Load builds the configuration from defaults, an optional file and
// environment variables. An empty path falls back to TURTLE_CONFIG.
func Load(path string) (*Config, error) {
	cfg := getDefaultConfig()

	if path == "" {
		path = os.Getenv("TURTLE_CONFIG")
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Path: StdoutPath,
		},
		Transcript: TranscriptConfig{
			Enabled:    false,
			Dir:        "logs",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   false,
		},
		Mode: ModeStrict,
	}
}

// loadFromFile loads configuration from a YAML or TOML file, chosen by extension
func loadFromFile(cfg *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
		return err
	case ".yaml", ".yml", "":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(filename))
	}
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(cfg *Config) {
	if mode := os.Getenv("TURTLE_MODE"); mode != "" {
		cfg.Mode = mode
	}

	if out := os.Getenv("TURTLE_OUTPUT"); out != "" {
		cfg.Output.Path = out
	}

	if dir := os.Getenv("TURTLE_TRANSCRIPT_DIR"); dir != "" {
		cfg.Transcript.Dir = dir
	}

	if enabled := os.Getenv("TURTLE_TRANSCRIPT_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			cfg.Transcript.Enabled = b
		}
	}
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	validModes := []string{ModeStrict, ModeLenient}
	if !contains(validModes, cfg.Mode) {
		return fmt.Errorf("invalid mode %s, must be one of: %v", cfg.Mode, validModes)
	}

	if cfg.Output.Path == "" {
		return fmt.Errorf("output.path must not be empty (use %q for stdout)", StdoutPath)
	}

	if cfg.Transcript.Enabled {
		if cfg.Transcript.Dir == "" {
			return fmt.Errorf("transcript.dir must be set when the transcript is enabled")
		}
		if cfg.Transcript.MaxSizeMB <= 0 {
			return fmt.Errorf("transcript.maxSizeMb %d must be positive", cfg.Transcript.MaxSizeMB)
		}
	}

	if cfg.Transcript.MaxBackups < 0 {
		return fmt.Errorf("transcript.maxBackups %d must not be negative", cfg.Transcript.MaxBackups)
	}
	if cfg.Transcript.MaxAgeDays < 0 {
		return fmt.Errorf("transcript.maxAgeDays %d must not be negative", cfg.Transcript.MaxAgeDays)
	}

	return nil
}

// contains checks if a string slice contains a specific string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
