package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type TokensConfig struct {
	// Path of the durable file holding the access/refresh token pair.
	Path string
}

type RegistrationConfig struct {
	// AgeValidation gates the age-range check at registration.
	AgeValidation bool
	MinAge        int
	MaxAge        int
}

type AppConfig struct {
	Environment string
	// LogLevel overrides the environment-derived default ("debug", "info",
	// "warn", ...); empty keeps the default.
	LogLevel     string
	API          APIConfig
	Tokens       TokensConfig
	Registration RegistrationConfig
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.prosono")

	v.SetEnvPrefix("PROSONO")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.StringToTimeDurationHookFunc()
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("loglevel", "")

	v.SetDefault("api.baseurl", "http://localhost:3001")
	v.SetDefault("api.timeout", "15s")

	v.SetDefault("tokens.path", "prosono_tokens.json")

	v.SetDefault("registration.agevalidation", false)
	v.SetDefault("registration.minage", 15)
	v.SetDefault("registration.maxage", 18)
}
