package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type SessionConfig struct {
	TokenTTLDays int `mapstructure:"token_ttl_days"`
}

// AIConfig selects and configures the text-generation backend.
// An empty APIKey is not an error: the server runs in fallback-only
// mode and answers from the built-in reply lists.
type AIConfig struct {
	Provider       string `mapstructure:"provider"` // gemini / openai
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	AI       AIConfig       `mapstructure:"ai"`
	Log      LogConfig      `mapstructure:"log"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working directory.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		// environment overrides, e.g. AIKO_SERVER_PORT=9000
		v.SetEnvPrefix("AIKO")
		v.AutomaticEnv()

		// API keys come from the conventional variables, not the AIKO_
		// prefix, so existing deployments keep working
		_ = v.BindEnv("ai.api_key", "GEMINI_API_KEY", "OPENAI_API_KEY")
		_ = v.BindEnv("server.port", "PORT")

		v.SetDefault("server.address", "0.0.0.0")
		v.SetDefault("server.port", 5000)
		v.SetDefault("database.path", "data/chatbot_auth.db")
		v.SetDefault("session.token_ttl_days", 7)
		v.SetDefault("ai.provider", "gemini")
		v.SetDefault("ai.model", "gemini-2.0-flash")
		v.SetDefault("ai.timeout_seconds", 10)
		v.SetDefault("log.level", "info")

		if err = v.ReadInConfig(); err != nil {
			// missing config file is fine, defaults + env cover everything
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				err = nil
			} else {
				err = fmt.Errorf("read config: %w", err)
				return
			}
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
