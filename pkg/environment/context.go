package environment

import (
	"context"
	"strings"
)

// Environment identifies the runtime environment an application runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalizes a raw environment name, accepting the short aliases
// "dev", "stage" and "prod". Unknown or empty values map to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// String returns the environment name.
func (e Environment) String() string { return string(e) }

type contextKey struct{}

// WithContext returns a context carrying the environment.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx. It returns the empty
// value when no environment has been attached.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsDevelopment reports whether ctx carries the development environment.
func IsDevelopment(ctx context.Context) bool { return FromContext(ctx) == Development }

// IsStaging reports whether ctx carries the staging environment.
func IsStaging(ctx context.Context) bool { return FromContext(ctx) == Staging }

// IsProduction reports whether ctx carries the production environment.
func IsProduction(ctx context.Context) bool { return FromContext(ctx) == Production }
