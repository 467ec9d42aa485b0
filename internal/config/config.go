package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Calc    CalcConfig    `yaml:"calc"`
	Report  ReportConfig  `yaml:"report"`
	Admin   AdminConfig   `yaml:"admin"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr         string  `yaml:"addr"`
	TLSCert      string  `yaml:"tls_cert"`
	TLSKey       string  `yaml:"tls_key"`
	RatePerSec   float64 `yaml:"rate_per_sec"`
	RateBurst    int     `yaml:"rate_burst"`
	ShutdownSecs int     `yaml:"shutdown_secs"`
}

type CalcConfig struct {
	MaxAmount float64 `yaml:"max_amount"`
}

type ReportConfig struct {
	Key        string `yaml:"key"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

type AdminConfig struct {
	User         string `yaml:"user"`
	PasswordHash string `yaml:"password_hash"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) ReportTTL() time.Duration {
	return time.Duration(c.Report.TTLMinutes) * time.Minute
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownSecs) * time.Second
}

func (c *Config) TLSEnabled() bool {
	return c.Server.TLSCert != "" && c.Server.TLSKey != ""
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			RatePerSec:   5,
			RateBurst:    10,
			ShutdownSecs: 5,
		},
		Calc:    CalcConfig{MaxAmount: 10000},
		Report:  ReportConfig{TTLMinutes: 15},
		Admin:   AdminConfig{User: "admin"},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// Load applies, in order: defaults, the .env file in the working directory
// (if any), the YAML file at path (if set), then LCA_* environment variables.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("LCA_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LCA_TLS_CERT"); v != "" {
		cfg.Server.TLSCert = v
	}
	if v := os.Getenv("LCA_TLS_KEY"); v != "" {
		cfg.Server.TLSKey = v
	}
	if v := os.Getenv("LCA_RATE_PER_SEC"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("LCA_RATE_PER_SEC: %w", err)
		}
		cfg.Server.RatePerSec = n
	}
	if v := os.Getenv("LCA_RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LCA_RATE_BURST: %w", err)
		}
		cfg.Server.RateBurst = n
	}
	if v := os.Getenv("LCA_MAX_AMOUNT"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("LCA_MAX_AMOUNT: %w", err)
		}
		cfg.Calc.MaxAmount = n
	}
	if v := os.Getenv("LCA_REPORT_KEY"); v != "" {
		cfg.Report.Key = v
	}
	if v := os.Getenv("LCA_REPORT_TTL_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LCA_REPORT_TTL_MINUTES: %w", err)
		}
		cfg.Report.TTLMinutes = n
	}
	if v := os.Getenv("LCA_ADMIN_USER"); v != "" {
		cfg.Admin.User = v
	}
	if v := os.Getenv("LCA_ADMIN_PASSWORD_HASH"); v != "" {
		cfg.Admin.PasswordHash = v
	}
	if v := os.Getenv("LCA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LCA_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Calc.MaxAmount <= 0 {
		return fmt.Errorf("calc.max_amount must be > 0, got %g", c.Calc.MaxAmount)
	}
	if c.Report.TTLMinutes <= 0 {
		return fmt.Errorf("report.ttl_minutes must be > 0, got %d", c.Report.TTLMinutes)
	}
	if c.Server.RatePerSec <= 0 || c.Server.RateBurst <= 0 {
		return fmt.Errorf("server rate limit must be positive")
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		return fmt.Errorf("tls_cert and tls_key must be set together")
	}
	return nil
}
