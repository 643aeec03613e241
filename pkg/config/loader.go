package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
)

// cache holds one parsed value per configuration type. Load consults it so
// every caller across the application observes identical settings.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
}

var global = &cache{values: make(map[string]any)}

// Load parses environment variables into v based on its `env` field tags.
// The first successful parse per type is cached; later calls for the same
// type receive the cached copy. The default .env file, when present, is
// read into the environment before the first parse.
//
//	type Config struct {
//		Addr      string `env:"VIEWKIT_ADDR" envDefault:":8080"`
//		ThemePath string `env:"VIEWKIT_THEME,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()

	name := typeName[T]()

	global.mu.RLock()
	cached, ok := global.values[name]
	global.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	if cached, ok := global.values[name]; ok {
		*v = cached.(T)
		return nil
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	global.values[name] = *v
	return nil
}

// MustLoad is Load that panics on failure, for configuration the process
// cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}

// Reload parses the current environment into v and replaces the cached
// value for its type. Use it when the environment has changed after the
// type was first loaded.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()

	global.mu.Lock()
	defer global.mu.Unlock()
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	global.values[typeName[T]()] = *v
	return nil
}

// ResetCache forgets every cached configuration value, forcing the next
// Load per type to parse the environment again.
func ResetCache() {
	global.mu.Lock()
	defer global.mu.Unlock()
	clear(global.values)
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
