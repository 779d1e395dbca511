package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`           // current application environment (local, dev, prod etc)
	TelegramAPIToken string `mapstructure:"-"`             // Telegram API token loaded from environment
	CorpusDir        string `mapstructure:"corpus_dir"`    // directory with one subdirectory of images per species
	MetadataPath     string `mapstructure:"metadata_path"` // path to JSON file with per-species metadata
	Quiz             Quiz   `mapstructure:"quiz"`          // quiz configuration section
	Frog             Frog   `mapstructure:"frog"`          // random frog command configuration
	FactAPIBaseURL   string `mapstructure:"fact_api_base_url"`
	PexelsAPIKey     string `mapstructure:"-"` // Pexels API key, only the downloader needs it
	DB               DB     `mapstructure:"database"`
}

// Quiz contains the quiz engine parameters. The source material hardcoded 3
// rounds and a 5 second timer; here both are configuration.
type Quiz struct {
	Rounds          int           `mapstructure:"rounds"`           // rounds per quiz run
	QuestionTimeout time.Duration `mapstructure:"question_timeout"` // per-question answer deadline
}

// Frog contains the /frog command parameters.
type Frog struct {
	Cooldown    time.Duration `mapstructure:"cooldown"`     // per-chat cooldown between frog posts
	HistorySize int           `mapstructure:"history_size"` // how many recent images not to repeat
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("corpus_dir", "assets/frogquiz")
	v.SetDefault("metadata_path", "assets/frog_metadata.json")
	v.SetDefault("quiz.rounds", 3)
	v.SetDefault("quiz.question_timeout", "5s")
	v.SetDefault("frog.cooldown", "30s")
	v.SetDefault("frog.history_size", 10)
	v.SetDefault("fact_api_base_url", "")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("pexels_api_key", "PEXELS_API_KEY")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables. The Pexels key is
	// optional here; the downloader validates it itself.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")
	cfg.PexelsAPIKey = v.GetString("pexels_api_key")

	return &cfg, nil
}

// Validate checks that the bot process has everything it needs to run.
func (c *Config) Validate() error {
	if c.TelegramAPIToken == "" || c.DB.URL == "" {
		return ErrMissingEnvironmentVariables
	}
	return nil
}
