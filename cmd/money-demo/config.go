package main

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// config holds the defaults taken from the environment.
// Command line flags override them.
type config struct {
	Locale string `env:"MONEY_LOCALE"`
	Lang   string `env:"LANG" envDefault:"en_US.UTF-8"`
	Level  string `env:"MONEY_LOG_LEVEL" envDefault:"info"`
}

func parseConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// locale returns the configured locale as a BCP 47 string.
// POSIX values such as "de_CH.UTF-8" become "de-CH"; "C" and "POSIX"
// fall back to "en-US".
func (c config) locale() string {
	if c.Locale != "" {
		return c.Locale
	}
	lang, _, _ := strings.Cut(c.Lang, ".")
	lang, _, _ = strings.Cut(lang, "@")
	switch lang {
	case "", "C", "POSIX":
		return "en-US"
	}
	return strings.ReplaceAll(lang, "_", "-")
}
