package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Symbol     string `yaml:"symbol"`
	WeeksAhead int    `yaml:"weeks_ahead"`
	DataSource struct {
		Provider string `yaml:"provider"` // yahoo, quoteapi or mock
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"data_source"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		AnalysisCron string `yaml:"analysis_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Charts struct {
		OutputDir string `yaml:"output_dir"`
	} `yaml:"charts"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.Symbol = v
	}
	if v := os.Getenv("WEEKS_AHEAD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.WeeksAhead = n
		}
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("QUOTEAPI_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("QUOTEAPI_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("CRON_ANALYSIS"); v != "" {
		cfg.Schedule.AnalysisCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CHART_DIR"); v != "" {
		cfg.Charts.OutputDir = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Symbol == "" {
		cfg.Symbol = "AAPL"
	}
	if cfg.WeeksAhead == 0 {
		cfg.WeeksAhead = 1
	}
	if cfg.DataSource.Provider == "" {
		if cfg.DataSource.BaseURL != "" {
			cfg.DataSource.Provider = "quoteapi"
		} else {
			cfg.DataSource.Provider = "yahoo"
		}
	}
	if cfg.Schedule.AnalysisCron == "" {
		// Friday 17:00, after the US close.
		cfg.Schedule.AnalysisCron = "0 0 17 * * 5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/weeklypulse.db"
	}
	if cfg.Charts.OutputDir == "" {
		cfg.Charts.OutputDir = "data/charts"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if c.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if c.WeeksAhead < 1 {
		return fmt.Errorf("weeks_ahead must be >= 1, got %d", c.WeeksAhead)
	}
	switch c.DataSource.Provider {
	case "yahoo", "mock":
	case "quoteapi":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the quoteapi provider")
		}
	default:
		return fmt.Errorf("unknown data_source.provider %q", c.DataSource.Provider)
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when bot_token is set")
	}
	return nil
}
