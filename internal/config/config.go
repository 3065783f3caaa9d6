package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"harmonia/internal/harmony"
)

type Config struct {
	Project struct {
		Root    string   `yaml:"root"`
		Include []string `yaml:"include"` // doublestar globs, default **/*.py
		Ignore  []string `yaml:"ignore"`  // directory names to skip
	} `yaml:"project"`
	Thresholds harmony.Thresholds `yaml:"thresholds"`
	Vocabulary struct {
		Overlay string `yaml:"overlay"` // optional YAML extension file
	} `yaml:"vocabulary"`
	AI struct {
		Model  string `yaml:"model"`
		APIKey string `yaml:"api_key"`
	} `yaml:"ai"`
}

// LoadConfig reads the YAML config, falling back to defaults when the file is
// absent. Environment variables override file values.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := defaults()

	// 2. Load YAML config
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if apiKey := os.Getenv("HARMONIA_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if model := os.Getenv("HARMONIA_AI_MODEL"); model != "" {
		cfg.AI.Model = model
	}
	if overlay := os.Getenv("HARMONIA_VOCABULARY"); overlay != "" {
		cfg.Vocabulary.Overlay = overlay
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Project.Root = "."
	cfg.Project.Include = []string{"**/*.py"}
	cfg.Project.Ignore = []string{
		".git", "venv", ".venv", "env", ".env", "__pycache__",
		".pytest_cache", ".mypy_cache", ".tox", ".eggs",
		"site-packages", "node_modules", "vendor", "dist", "build",
	}
	cfg.Thresholds = harmony.DefaultThresholds()
	cfg.AI.Model = "gemini-2.0-flash"
	return cfg
}
