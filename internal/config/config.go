// Package config loads process configuration from the environment, reading a
// .env file first when one is present.
package config

import (
	"time"

	"emperror.dev/errors"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the complete process configuration.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`
	ModRole      string `env:"SERVER_MOD_ROLE,required,notEmpty"`

	Prefix       string `env:"COMMAND_PREFIX" envDefault:"$"`
	PresenceText string `env:"PRESENCE_TEXT" envDefault:"$commands"`

	// KeepAliveAddr is where the keep-alive server listens; empty disables it.
	KeepAliveAddr string `env:"KEEPALIVE_ADDR" envDefault:":8080"`

	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	APIRate     float64       `env:"API_RATE" envDefault:"5"`

	QuoteURL    string `env:"QUOTE_API_URL" envDefault:"https://zenquotes.io/api/random"`
	DogImageURL string `env:"DOG_IMAGE_API_URL" envDefault:"https://some-random-api.com/img/dog"`
	DogFactURL  string `env:"DOG_FACT_API_URL" envDefault:"https://some-random-api.com/facts/dog"`
	CatURL      string `env:"CAT_API_URL" envDefault:"https://api.thecatapi.com/v1/images/search"`

	SentryDSN string `env:"SENTRY_DSN"`
	Debug     bool   `env:"DEBUG" envDefault:"false"`
}

// Load reads the given .env files (".env" when none are named) if they exist,
// then parses the environment.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// a missing file is fine, the environment may already be populated
		_ = godotenv.Load(f)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	if c.Prefix == "" {
		return errors.New("COMMAND_PREFIX must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("HTTP_TIMEOUT must be positive")
	}
	if c.APIRate <= 0 {
		return errors.New("API_RATE must be positive")
	}
	return nil
}
