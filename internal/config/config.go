package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Entsoe struct {
		Token      string `yaml:"token"`
		Zone       string `yaml:"zone"`
		DataSource string `yaml:"data_source"` // "entsoe" (default) or "mock"
	} `yaml:"entsoe"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		PublishCron string `yaml:"publish_cron"`
		RecapCron   string `yaml:"recap_cron"`
	} `yaml:"schedule"`
	Alerts struct {
		HighAverage      float64 `yaml:"high_average"`
		Spike            float64 `yaml:"spike"`
		CheapestRunHours int     `yaml:"cheapest_run_hours"`
	} `yaml:"alerts"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Timezone string `yaml:"timezone"`
	Proxy    string `yaml:"proxy"`
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
	if v := os.Getenv("ENTSOE_TOKEN"); v != "" {
		cfg.Entsoe.Token = v
	}
	if v := os.Getenv("ENTSOE_ZONE"); v != "" {
		cfg.Entsoe.Zone = v
	}
	if v := os.Getenv("DATA_SOURCE"); v != "" {
		cfg.Entsoe.DataSource = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Entsoe.Zone == "" {
		cfg.Entsoe.Zone = "10YFI-1--------U" // Finland
	}
	if cfg.Entsoe.DataSource == "" {
		cfg.Entsoe.DataSource = "entsoe"
	}
	if cfg.Schedule.PublishCron == "" {
		// day-ahead auction results are out by early afternoon CET
		cfg.Schedule.PublishCron = "0 15 14 * * *"
	}
	if cfg.Schedule.RecapCron == "" {
		cfg.Schedule.RecapCron = "0 0 7 * * *"
	}
	if cfg.Alerts.HighAverage == 0 {
		cfg.Alerts.HighAverage = 150
	}
	if cfg.Alerts.Spike == 0 {
		cfg.Alerts.Spike = 300
	}
	if cfg.Alerts.CheapestRunHours == 0 {
		cfg.Alerts.CheapestRunHours = 3
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Europe/Helsinki"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.Entsoe.DataSource {
	case "entsoe", "":
		if c.Entsoe.Token == "" {
			return fmt.Errorf("entsoe.token is required (or set ENTSOE_TOKEN)")
		}
	case "mock":
		// no credentials needed
	default:
		return fmt.Errorf("entsoe.data_source must be \"entsoe\" or \"mock\", got %q", c.Entsoe.DataSource)
	}
	if c.Entsoe.Zone == "" {
		return fmt.Errorf("entsoe.zone is required")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	if c.Alerts.CheapestRunHours < 0 {
		return fmt.Errorf("alerts.cheapest_run_hours must not be negative")
	}
	return nil
}
