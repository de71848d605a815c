package session

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds per-workspace settings for analysis sessions, usually
// loaded from a fsview.yaml in the workspace.
type Config struct {
	LogLevel        string   `yaml:"log_level"`        // logging level: trace, debug, info, warn, off (default: off)
	LockFile        string   `yaml:"lock_file"`        // exclusive workspace lock path; empty disables locking
	Excludes        []string `yaml:"excludes"`         // gitignore-syntax patterns the analyzer skips
	LanguageVersion string   `yaml:"language_version"` // version the sources target, e.g. "3.12"
}

// ApplyDefaults fills zero-value fields with their defaults.
func (cfg *Config) ApplyDefaults() {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "off"
	}
	if cfg.LanguageVersion == "" {
		cfg.LanguageVersion = "3.13"
	}
}

// Version parses LanguageVersion into major and minor numbers. Malformed
// values fall back to the current major version.
func (cfg *Config) Version() (major, minor int) {
	head, tail, _ := strings.Cut(cfg.LanguageVersion, ".")
	major, err := strconv.Atoi(head)
	if err != nil || major <= 0 {
		return 3, 0
	}
	minor, err = strconv.Atoi(tail)
	if err != nil || minor < 0 {
		minor = 0
	}
	return major, minor
}

// LoadConfig loads a session config from path. Returns nil if the file
// does not exist. A .env file next to the config is loaded into the
// environment first, then FSVIEW_* variables override file values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))
	cfg.applyEnvOverrides()
	cfg.ApplyDefaults()
	return &cfg, nil
}

func (cfg *Config) applyEnvOverrides() {
	if v := os.Getenv("FSVIEW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FSVIEW_LOCK_FILE"); v != "" {
		cfg.LockFile = v
	}
	if v := os.Getenv("FSVIEW_LANGUAGE_VERSION"); v != "" {
		cfg.LanguageVersion = v
	}
}
