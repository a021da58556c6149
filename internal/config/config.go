// Package config loads CLI configuration from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all verdict CLI configuration.
type Config struct {
	ModelPath  string `yaml:"model_path"`
	OrtLibPath string `yaml:"ort_lib_path"` // empty means next to the model
	LabelsPath string `yaml:"labels_path"`
	TopK       int    `yaml:"top_k"`
	Format     string `yaml:"format"`    // "text" or "json"
	LogLevel   string `yaml:"log_level"` // "debug", "info", "warn", "error"
}

// Load reads configuration from a YAML file, then applies environment
// overrides (VERDICT_MODEL_PATH, VERDICT_ORT_LIB_PATH, VERDICT_LABELS_PATH,
// VERDICT_TOP_K, VERDICT_FORMAT, VERDICT_LOG_LEVEL). A missing file yields
// the defaults with no error.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		TopK:     5,
		Format:   "text",
		LogLevel: "info",
	}
}

func applyEnv(cfg *Config) {
	cfg.ModelPath = getenv("VERDICT_MODEL_PATH", cfg.ModelPath)
	cfg.OrtLibPath = getenv("VERDICT_ORT_LIB_PATH", cfg.OrtLibPath)
	cfg.LabelsPath = getenv("VERDICT_LABELS_PATH", cfg.LabelsPath)
	cfg.TopK = getenvInt("VERDICT_TOP_K", cfg.TopK)
	cfg.Format = getenv("VERDICT_FORMAT", cfg.Format)
	cfg.LogLevel = getenv("VERDICT_LOG_LEVEL", cfg.LogLevel)
}

func validate(cfg *Config) error {
	if cfg.TopK < 0 {
		return fmt.Errorf("config: top_k must be non-negative, got %d", cfg.TopK)
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return fmt.Errorf("config: format must be \"text\" or \"json\", got %q", cfg.Format)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
