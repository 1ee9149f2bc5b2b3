package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level ledgerflow.yaml configuration.
type Config struct {
	SourceDir string    `yaml:"source_dir"` // directory scanned for ledger CSV files
	ReportDir string    `yaml:"report_dir"` // directory report files are written to
	QueueDB   string    `yaml:"queue_db"`   // path to the SQLite job-queue database
	Strict    bool      `yaml:"strict"`     // error on malformed numeric fields instead of zeroing
	Worker    Worker    `yaml:"worker"`
	Log       LogConfig `yaml:"log"`
}

// Worker controls the queue-polling worker.
type Worker struct {
	PollInterval string `yaml:"poll_interval"` // Go duration, e.g. "500ms"
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// Load reads a ledgerflow.yaml file from disk, then applies any
// LEDGERFLOW_* environment overrides (including a .env file if present).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyEnv()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		SourceDir: "tmp",
		ReportDir: "out",
		QueueDB:   "ledgerflow.db",
		Strict:    false,
		Worker: Worker{
			PollInterval: "500ms",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// applyEnv overrides config fields from the environment. A .env file in the
// working directory is loaded first; missing files are ignored.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("LEDGERFLOW_SOURCE_DIR"); v != "" {
		c.SourceDir = v
	}
	if v := os.Getenv("LEDGERFLOW_REPORT_DIR"); v != "" {
		c.ReportDir = v
	}
	if v := os.Getenv("LEDGERFLOW_QUEUE_DB"); v != "" {
		c.QueueDB = v
	}
	if v := os.Getenv("LEDGERFLOW_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}
