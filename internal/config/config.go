// Package config loads the tool's configuration from an optional YAML file
// with environment-variable overrides. The result is an explicit struct that
// callers pass down; there is no ambient singleton.
package config

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
	UserName string `yaml:"user_name"`

	LogsDir    string `yaml:"logs_dir"`
	ReportsDir string `yaml:"reports_dir"`

	Storage StorageConfig `yaml:"storage"`
	LLM     LLMConfig     `yaml:"llm"`
}

type StorageConfig struct {
	Backend     string `yaml:"backend"` // file, sqlite, postgres
	SQLitePath  string `yaml:"sqlite_path"`
	PostgresDSN string `yaml:"postgres_dsn"`
}

type LLMConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Load reads the config file at path when it exists (an empty path is fine),
// applies environment overrides on top, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Env:        "development",
		LogLevel:   "info",
		UserName:   "user",
		LogsDir:    "data/daily_logs",
		ReportsDir: "data/weekly_reports",
		Storage: StorageConfig{
			Backend:    "file",
			SQLitePath: "data/coach.db",
		},
		LLM: LLMConfig{
			Model:          "gpt-4o-mini",
			TimeoutSeconds: 30,
		},
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "file":
		if c.LogsDir == "" {
			return errors.New("file storage requires logs_dir to be set")
		}
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return errors.New("sqlite storage requires sqlite_path to be set")
		}
	case "postgres":
		if c.Storage.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	default:
		return errors.New("storage backend must be one of: file, sqlite, postgres")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("env must be one of: development, staging, production")
	}
	return nil
}

func applyEnv(cfg *Config) {
	setEnv(&cfg.Env, "APP_ENV")
	setEnv(&cfg.LogLevel, "LOG_LEVEL")
	setEnv(&cfg.UserName, "COACH_USER")
	setEnv(&cfg.LogsDir, "LOGS_DIR")
	setEnv(&cfg.ReportsDir, "REPORTS_DIR")
	setEnv(&cfg.Storage.Backend, "STORAGE_BACKEND")
	setEnv(&cfg.Storage.SQLitePath, "SQLITE_PATH")
	setEnv(&cfg.Storage.PostgresDSN, "POSTGRES_DSN")
	setEnv(&cfg.LLM.BaseURL, "LLM_BASE_URL")
	setEnv(&cfg.LLM.APIKey, "LLM_API_KEY")
	setEnv(&cfg.LLM.Model, "LLM_MODEL")
	if v := os.Getenv("LLM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LLM.TimeoutSeconds = n
		}
	}
}

func setEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
