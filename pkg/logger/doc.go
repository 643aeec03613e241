// Package logger builds context-aware slog loggers for viewkit
// applications: a single New factory configured through functional options,
// attribute constructors that keep log keys consistent across the codebase,
// and transparent injection of request-scoped context values into every
// record.
//
// New wraps the chosen slog handler (text or JSON) in a decorator that runs
// registered ContextExtractor callbacks on each record, so values such as
// the request ID or the runtime environment appear on every line logged
// with InfoContext and friends.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/viewkit/pkg/environment"
//	    "github.com/dmitrymomot/viewkit/pkg/logger"
//	    "github.com/dmitrymomot/viewkit/pkg/requestid"
//	)
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "gallery"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        environment.LoggerExtractor(),
//	    ),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "rendered page",
//	    logger.Component("datepicker"),
//	    logger.Duration(time.Since(start)),
//	)
//
// The Error and Errors constructors return an empty Attr for nil errors, so
// they can be passed unconditionally.
package logger
