// Package config reads runtime settings from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/notify"
	"github.com/abhisek/lingualearn/internal/store"
)

// DefaultEnvFile is loaded from the working directory when present.
const DefaultEnvFile = ".env"

// Config holds runtime settings.
type Config struct {
	DBPath           string        `env:"LINGUALEARN_DB"`
	Languages        []string      `env:"LINGUALEARN_LANGUAGES" envSeparator:","`
	UserKey          string        `env:"LINGUALEARN_USER_KEY" envDefault:"learner"`
	NotificationTTL  time.Duration `env:"LINGUALEARN_NOTIFICATION_TTL" envDefault:"5s"`
	DisableEventsLog bool          `env:"LINGUALEARN_NO_EVENTS"`
}

// Load reads envFiles (missing files are skipped) and then parses the
// environment. Variables already set in the environment win over the files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.NotificationTTL <= 0 {
		return fmt.Errorf("LINGUALEARN_NOTIFICATION_TTL must be positive, got %s", c.NotificationTTL)
	}
	if strings.TrimSpace(c.UserKey) == "" {
		return fmt.Errorf("LINGUALEARN_USER_KEY must not be empty")
	}
	return nil
}

// LanguageList returns the configured languages, trimmed and de-duplicated,
// or catalog.DefaultLanguages when none are set.
func (c *Config) LanguageList() []catalog.Language {
	names := lo.Uniq(lo.FilterMap(c.Languages, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	}))
	if len(names) == 0 {
		return catalog.DefaultLanguages
	}
	return lo.Map(names, func(s string, _ int) catalog.Language {
		return catalog.Language(s)
	})
}

// Key returns the storage key for the learner record.
func (c *Config) Key() string {
	if c.UserKey == "" {
		return store.DefaultUserKey
	}
	return c.UserKey
}

// TTL returns the notification display duration.
func (c *Config) TTL() time.Duration {
	if c.NotificationTTL <= 0 {
		return notify.DefaultTTL
	}
	return c.NotificationTTL
}
