package configs

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL        = "https://payout.1-2-pay.com/"
	DefaultTimeoutSeconds = 185
	DefaultMaxPoolSize    = 8
)

type Config struct {
	ENV            string   `json:"env" mapstructure:"env"`
	BaseURL        string   `json:"base_url" mapstructure:"base_url"`
	APIKey         string   `json:"api_key" mapstructure:"api_key"`
	PartnerCode    string   `json:"partner_code" mapstructure:"partner_code"`
	Channel        string   `json:"channel" mapstructure:"channel"`
	TimeoutSeconds int      `json:"timeout_seconds" mapstructure:"timeout_seconds"`
	MaxPoolSize    int      `json:"max_pool_size" mapstructure:"max_pool_size"`
	Telegram       Telegram `json:"telegram" mapstructure:"telegram"`
}

// Telegram is optional; payout notifications are skipped when Token is empty.
type Telegram struct {
	Token     string `json:"token" mapstructure:"token"`
	ChannelID int64  `json:"channel_id" mapstructure:"channel_id"`
}

var envBindings = map[string]string{
	"env":                 "PAYOUT_ENV",
	"base_url":            "PAYOUT_BASE_URL",
	"api_key":             "API_KEY",
	"partner_code":        "PARTNER_CODE",
	"channel":             "CHANNEL",
	"timeout_seconds":     "PAYOUT_TIMEOUT_SECONDS",
	"max_pool_size":       "PAYOUT_MAX_POOL_SIZE",
	"telegram.token":      "TELEGRAM_TOKEN",
	"telegram.channel_id": "TELEGRAM_CHANNEL_ID",
}

// NewViper prepares a viper instance with defaults and environment bindings.
// Callers may bind command line flags on top before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("env", "production")
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout_seconds", DefaultTimeoutSeconds)
	v.SetDefault("max_pool_size", DefaultMaxPoolSize)
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
	return v
}

// LoadConfig reads config.json from path if present, then environment variables.
func LoadConfig(path string) (*Config, error) {
	return Load(NewViper(), path)
}

// Load reads an optional config.json from path into v and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.AddConfigPath(path)
		v.SetConfigType("json")
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	result := &Config{}
	if err := v.Unmarshal(result); err != nil {
		return nil, err
	}
	// env values arrive as strings
	result.TimeoutSeconds = cast.ToInt(v.Get("timeout_seconds"))
	result.MaxPoolSize = cast.ToInt(v.Get("max_pool_size"))
	result.Telegram.ChannelID = cast.ToInt64(v.Get("telegram.channel_id"))
	if !strings.HasSuffix(result.BaseURL, "/") {
		result.BaseURL += "/"
	}
	return result, nil
}

// Validate reports missing credentials. It does not check them with the gateway.
func (c *Config) Validate() error {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, "api_key")
	}
	if c.PartnerCode == "" {
		missing = append(missing, "partner_code")
	}
	if c.Channel == "" {
		missing = append(missing, "channel")
	}
	if len(missing) > 0 {
		return errors.New("missing config: " + strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) PoolSize() int {
	if c.MaxPoolSize <= 0 {
		return DefaultMaxPoolSize
	}
	return c.MaxPoolSize
}

func (c *Config) TelegramEnabled() bool {
	return c.Telegram.Token != "" && c.Telegram.ChannelID != 0
}
