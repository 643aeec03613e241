// Package config loads application configuration from environment
// variables into typed structs, backed by github.com/caarlos0/env for
// parsing and github.com/joho/godotenv for .env files.
//
// Load parses a struct by its `env` field tags and caches the result per
// type, so every part of the application that loads the same configuration
// type observes identical settings. The default ./.env file, when present,
// is read once before the first parse; additional files can be supplied
// explicitly with LoadEnv. Variables already set in the process environment
// always win over file values.
//
// # Usage
//
//	import "github.com/dmitrymomot/viewkit/pkg/config"
//
//	type Config struct {
//		Addr      string `env:"VIEWKIT_ADDR" envDefault:":8080"`
//		ThemePath string `env:"VIEWKIT_THEME" envDefault:"theme.yaml"`
//		Env       string `env:"VIEWKIT_ENV" envDefault:"development"`
//	}
//
//	func main() {
//		if err := config.LoadEnv("deploy/.env"); err != nil {
//			log.Fatal(err)
//		}
//		var cfg Config
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Errors
//
// Sentinel errors compare with errors.Is: ErrParsingConfig for tag or
// required-variable failures, ErrLoadingEnv for unreadable env files, and
// ErrNilPointer for a nil destination.
//
// # Testing
//
// ResetCache clears the per-type cache, and Reload re-parses one type after
// the environment has changed.
package config
