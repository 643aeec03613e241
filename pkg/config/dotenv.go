package config

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/joho/godotenv"
)

var defaultEnvOnce sync.Once

// loadDefaultEnv reads ./.env into the process environment at most once.
// A missing file is not an error.
func loadDefaultEnv() {
	defaultEnvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// LoadEnv reads the named .env files into the process environment.
// Variables already present in the environment are preserved, and when
// several files define the same key the first file wins. With no arguments
// LoadEnv reads the default ./.env, which may be absent; named files must
// exist.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnv, err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(err)
	}
}
