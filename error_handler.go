package viewkit

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/viewkit/pkg/binder"
	"github.com/dmitrymomot/viewkit/pkg/logger"
	"github.com/dmitrymomot/viewkit/pkg/requestid"
	"github.com/dmitrymomot/viewkit/schema"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts.
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures the default error handler.
type ErrorHandlerConfig struct {
	// ErrorPage renders a full error page for plain HTTP requests.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders a toast notification for Datastar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget is the selector toasts are patched into (default: "#toast-container").
	ToastTarget string

	// ToastMode is the patch mode for toasts (default: PatchPrepend).
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo contains classified error information.
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func isServerError(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError
}

// determineErrorType maps HTTP status codes to error types for UI display.
func determineErrorType(statusCode int) string {
	switch {
	case isClientError(statusCode):
		return "warning"
	case isServerError(statusCode):
		return "error"
	default:
		return "info"
	}
}

// determineLogLevel maps HTTP status codes to log levels.
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	return cfg
}

// formatViolations summarizes component argument violations for display.
func formatViolations(v *schema.Violations) string {
	parts := make([]string, 0, len(v.List))
	for _, violation := range v.List {
		parts = append(parts, fmt.Sprintf("%s: %s", violation.Param, violation.Message))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("component %q received invalid arguments", v.Component)
	}
	return fmt.Sprintf("component %q received invalid arguments: %s",
		v.Component, strings.Join(parts, "; "))
}

// classifyError analyzes the error and returns structured error information.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	// Request binding failures are the client's fault.
	if binder.IsBindError(err) {
		info.StatusCode = http.StatusBadRequest
		info.Message = err.Error()
	}

	// Argument violations mean a call site broke a component's contract.
	// That is a bug in the page, not bad client input, so it surfaces as a
	// server error no matter what else wrapped it.
	if v := schema.AsViolations(err); v != nil {
		info.StatusCode = http.StatusInternalServerError
		info.Message = formatViolations(v)
	}

	info.Type = determineErrorType(info.StatusCode)
	info.LogLevel = determineLogLevel(info.StatusCode)

	return info
}

// logError logs the error with request context. Violations additionally
// carry the component name and the per-parameter breakdown.
func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	requestID := requestid.FromContext(ctx.Request().Context())

	attrs := []slog.Attr{
		logger.RequestID(requestID),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", ctx.Request().Method),
		slog.String("path", ctx.Request().URL.Path),
		slog.Bool("is_datastar", IsDataStar(ctx.Request())),
		logger.Component("error_handler"),
	}
	if v := schema.AsViolations(err); v != nil {
		attrs = append(attrs,
			slog.String("ui_component", v.Component),
			slog.Any("violations", v.List),
		)
	}

	log.LogAttrs(ctx.Request().Context(), info.LogLevel, "request error", attrs...)
}

// renderDataStarResponse renders the error as a Datastar toast notification.
func renderDataStarResponse(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		log.Warn("no error toast component configured for Datastar request",
			logger.RequestID(requestID),
			logger.Component("error_handler"),
		)
		return
	}

	params := ErrorToastParams{
		Message:   info.Message,
		Type:      info.Type,
		RequestID: requestID,
	}

	response := Templ(
		cfg.ErrorToast(params),
		WithTarget(cfg.ToastTarget),
		WithPatchMode(cfg.ToastMode),
	)

	// No status code for SSE responses.
	if renderErr := response.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		log.Error("failed to render error toast",
			logger.RequestID(requestID),
			logger.Error(renderErr),
			logger.Event("render_error_toast"),
		)
	}
}

// renderHTTPResponse renders the error as a full HTTP error page.
func renderHTTPResponse(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorPage == nil {
		log.Warn("no error page component configured",
			logger.RequestID(requestID),
			logger.Component("error_handler"),
		)
		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
		return
	}

	params := ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  requestID,
		RetryURL:   ctx.Request().URL.Path,
	}

	ctx.ResponseWriter().WriteHeader(info.StatusCode)
	response := Templ(cfg.ErrorPage(params))

	if renderErr := response.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		log.Error("failed to render error page",
			logger.RequestID(requestID),
			logger.Error(renderErr),
			logger.Event("render_error_page"),
		)
		http.Error(ctx.ResponseWriter(), "Internal Server Error", http.StatusInternalServerError)
	}
}

// NewErrorHandler creates the default error handler. Plain HTTP requests get
// a full error page; Datastar requests get a toast notification patched into
// the page. Configure once and pass to every Wrap call.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = setConfigDefaults(cfg)

	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		requestID := requestid.FromContext(ctx.Request().Context())
		info := classifyError(err)
		logError(log, ctx, err, info)

		if IsDataStar(ctx.Request()) {
			renderDataStarResponse(ctx, cfg, info, requestID, log)
		} else {
			renderHTTPResponse(ctx, cfg, info, requestID, log)
		}
	}
}
