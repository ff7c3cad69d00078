// internal/config/config.go
//
// Process configuration, read from the environment (and a .env file in
// development) into a typed struct.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"false"`

	// HTTP
	Port            string        `envconfig:"PORT" default:"5175"`
	ClientOrigin    string        `envconfig:"CLIENT_ORIGIN" default:"http://localhost:5173"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	Production      bool          `envconfig:"PRODUCTION" default:"false"`

	// Round tokens
	TokenSecret string        `envconfig:"ROUND_TOKEN_SECRET" default:"dev_secret_change_me"`
	TokenTTL    time.Duration `envconfig:"ROUND_TOKEN_TTL" default:"24h"`
	CookieName  string        `envconfig:"ROUND_COOKIE_NAME" default:"scramble_round"`

	// Rounds
	RoundCacheSize int    `envconfig:"ROUND_CACHE_SIZE" default:"4096"`
	DailySalt      string `envconfig:"DAILY_SALT" default:"local_dev_salt"`

	Words      Words
	Dictionary Dictionary
}

type Words struct {
	// Optional path to a newline-separated root word list.
	StartFile string `envconfig:"WORDS_START_FILE"`
}

type Dictionary struct {
	Backend   string `envconfig:"DICTIONARY_BACKEND" default:"memory"`
	Lang      string `envconfig:"DICTIONARY_LANG" default:"en"`
	File      string `envconfig:"DICTIONARY_FILE"`
	SQLite    string `envconfig:"DICTIONARY_SQLITE_PATH" default:"./data/lexicon.db"`
	BoltPath  string `envconfig:"DICTIONARY_BOLT_PATH" default:"./data/lexicon.bolt"`
	CacheSize int    `envconfig:"DICTIONARY_CACHE_SIZE" default:"2048"`
}

// Load reads .env (if present) and processes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("processing the config: %w", err)
	}
	return &c, nil
}
