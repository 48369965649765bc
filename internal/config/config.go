package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                string   `mapstructure:"PORT"`
	Env                 string   `mapstructure:"ENV"`
	CORSOrigins         []string `mapstructure:"CORS_ORIGINS"`
	PractitionerName    string   `mapstructure:"PRACTITIONER_NAME"`
	ChatResponseDelayMS int      `mapstructure:"CHAT_RESPONSE_DELAY_MS"`
	NurseResetSeconds   int      `mapstructure:"NURSE_RESET_SECONDS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("PRACTITIONER_NAME", "Dr. Carter")
	v.SetDefault("CHAT_RESPONSE_DELAY_MS", 1500)
	v.SetDefault("NURSE_RESET_SECONDS", 30)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("PRACTITIONER_NAME")
	v.BindEnv("CHAT_RESPONSE_DELAY_MS")
	v.BindEnv("NURSE_RESET_SECONDS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ChatResponseDelay returns the simulated assistant latency.
func (c *Config) ChatResponseDelay() time.Duration {
	return time.Duration(c.ChatResponseDelayMS) * time.Millisecond
}

// NurseReset returns the nurse-call auto-reset countdown.
func (c *Config) NurseReset() time.Duration {
	return time.Duration(c.NurseResetSeconds) * time.Second
}

// Validate checks that the configuration is safe to run.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.ChatResponseDelayMS < 0 {
		return fmt.Errorf("CHAT_RESPONSE_DELAY_MS must not be negative, got %d", c.ChatResponseDelayMS)
	}
	if c.NurseResetSeconds <= 0 {
		return fmt.Errorf("NURSE_RESET_SECONDS must be positive, got %d", c.NurseResetSeconds)
	}
	return nil
}
