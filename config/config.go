package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTwitterVerifyCredentialsURL = "https://api.twitter.com/1.1/account/verify_credentials.json?include_email=true"
	DefaultTwitterUserURL              = "https://api.twitter.com/1.1/users/lookup.json?user_id=%s"
	DefaultFacebookUserURL             = "https://graph.facebook.com/v2.8/me?access_token=%s"
	DefaultYammerUserURL               = "https://www.yammer.com/api/v1/users/%s.json"
)

type Configs struct {
	Env string `toml:"env"`

	Log      LogConfigs      `toml:"log"`
	HTTP     HTTPConfigs     `toml:"http"`
	Twitter  TwitterConfigs  `toml:"twitter"`
	Facebook FacebookConfigs `toml:"facebook"`
	Yammer   YammerConfigs   `toml:"yammer"`
}

type LogConfigs struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`

	// File enables a rotated JSON log file in addition to stderr.
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

type HTTPConfigs struct {
	Timeout time.Duration `toml:"timeout"`
}

type TwitterConfigs struct {
	VerifyCredentialsURL string `toml:"verify_credentials_url"`
	UserURL              string `toml:"user_url"`

	// Credentials used by the command line tool only; the gateway always takes them per call.
	ConsumerAPIKey    string `toml:"consumer_api_key"`
	ConsumerAPISecret string `toml:"consumer_api_secret"`
	AccessToken       string `toml:"access_token"`
	AccessTokenSecret string `toml:"access_token_secret"`
}

type FacebookConfigs struct {
	UserURL string `toml:"user_url"`
}

type YammerConfigs struct {
	UserURL string `toml:"user_url"`
}

func Default() Configs {
	return Configs{
		Env: "production",
		Log: LogConfigs{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		HTTP: HTTPConfigs{
			Timeout: 30 * time.Second,
		},
		Twitter: TwitterConfigs{
			VerifyCredentialsURL: DefaultTwitterVerifyCredentialsURL,
			UserURL:              DefaultTwitterUserURL,
		},
		Facebook: FacebookConfigs{
			UserURL: DefaultFacebookUserURL,
		},
		Yammer: YammerConfigs{
			UserURL: DefaultYammerUserURL,
		},
	}
}

// Load reads a TOML file on top of Default. Keys missing from the file keep their default value.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Configs{}, err
	}

	return cfg, nil
}

func (c Configs) Validate() error {
	templates := []struct {
		name         string
		value        string
		placeholders int
	}{
		{"twitter.verify_credentials_url", c.Twitter.VerifyCredentialsURL, 0},
		{"twitter.user_url", c.Twitter.UserURL, 1},
		{"facebook.user_url", c.Facebook.UserURL, 1},
		{"yammer.user_url", c.Yammer.UserURL, 1},
	}

	for _, t := range templates {
		if t.value == "" {
			return fmt.Errorf("%s must not be empty", t.name)
		}

		if n := strings.Count(t.value, "%s"); n != t.placeholders {
			return fmt.Errorf("%s must contain %d %%s placeholder(s), got %d", t.name, t.placeholders, n)
		}
	}

	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must not be negative")
	}

	return nil
}
