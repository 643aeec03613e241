package demo

import (
	"log/slog"

	"github.com/dmitrymomot/viewkit/pkg/environment"
)

// Config holds the gallery server settings.
type Config struct {
	Addr      string     `env:"DEMO_ADDR" envDefault:":8080"`
	Env       string     `env:"DEMO_ENV" envDefault:"development"`
	LogLevel  slog.Level `env:"DEMO_LOG_LEVEL" envDefault:"info"`
	ThemePath string     `env:"DEMO_THEME" envDefault:"demo/theme.yaml"`
}

// Environment returns the normalized runtime environment, accepting the
// short aliases environment.Parse knows about.
func (c Config) Environment() environment.Environment {
	return environment.Parse(c.Env)
}
