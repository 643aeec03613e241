// Package environment propagates the runtime environment (development,
// staging, production) through context.Context, HTTP requests and
// structured logs.
//
// The typed Environment string carries one of the Development, Staging or
// Production constants. Parse turns raw configuration values, including the
// short aliases "dev", "stage" and "prod", into a canonical Environment.
// WithContext and FromContext move the value through contexts, and the
// IsDevelopment, IsStaging and IsProduction predicates query it.
//
// # Usage
//
//	import "github.com/dmitrymomot/viewkit/pkg/environment"
//
//	env := environment.Parse(cfg.Env)
//
//	// Attach the environment to every request.
//	handler := environment.Middleware(env)(mux)
//
//	// Record it on every log line written with a request context.
//	log := logger.New(
//	    logger.WithEnvironment(env, "gallery"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//
// All helpers are safe on contexts without an environment: FromContext
// returns the empty value and the predicates report false.
package environment
