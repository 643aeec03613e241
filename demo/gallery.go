package demo

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/viewkit"
	"github.com/dmitrymomot/viewkit/demo/pages"
	"github.com/dmitrymomot/viewkit/pkg/binder"
	"github.com/dmitrymomot/viewkit/pkg/broadcast"
	"github.com/dmitrymomot/viewkit/pkg/environment"
	"github.com/dmitrymomot/viewkit/pkg/httpserver"
	"github.com/dmitrymomot/viewkit/pkg/logger"
	"github.com/dmitrymomot/viewkit/pkg/requestid"
	"github.com/dmitrymomot/viewkit/pkg/theme"
)

// Gallery serves the component gallery.
type Gallery struct {
	cfg     Config
	log     *slog.Logger
	themes  *theme.Holder
	reloads *broadcast.Broadcaster[*theme.Theme]
	onError viewkit.ErrorHandler[viewkit.Context]
}

// New wires the gallery around a theme holder. Theme reloads fan out to every
// open /events stream through the broadcaster.
func New(cfg Config, themes *theme.Holder, log *slog.Logger) *Gallery {
	if log == nil {
		log = slog.Default()
	}

	g := &Gallery{
		cfg:     cfg,
		log:     log,
		themes:  themes,
		reloads: broadcast.New[*theme.Theme](4),
	}

	g.onError = viewkit.NewErrorHandler(log, viewkit.ErrorHandlerConfig{
		ErrorPage: func(p viewkit.ErrorPageParams) templ.Component {
			return pages.ErrorPage(themes.Get(), p)
		},
		ErrorToast: pages.ErrorToast,
	})

	themes.OnChange(func(t *theme.Theme) {
		if err := g.reloads.Publish(t); err != nil {
			log.Warn("theme reload not broadcast", logger.Error(err))
			return
		}
		log.Info("theme reloaded",
			slog.String("theme", t.Name),
			slog.Int("streams", g.reloads.Subscribers()),
		)
	})

	return g
}

// Handler builds the gallery router.
func (g *Gallery) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(g.cfg.Environment()))
	r.Use(g.logRequests)

	r.Get("/", viewkit.Wrap(g.home,
		viewkit.WithErrorHandler[viewkit.Context, noArgs](g.onError),
	))

	r.Route("/components", func(c chi.Router) {
		c.Get("/label", viewkit.Wrap(g.label,
			viewkit.WithErrorHandler[viewkit.Context, noArgs](g.onError),
		))
		c.Get("/title", viewkit.Wrap(g.title,
			viewkit.WithErrorHandler[viewkit.Context, noArgs](g.onError),
		))
		c.Get("/paragraph", viewkit.Wrap(g.paragraph,
			viewkit.WithErrorHandler[viewkit.Context, noArgs](g.onError),
		))
		c.Get("/boxes", viewkit.Wrap(g.boxes,
			viewkit.WithErrorHandler[viewkit.Context, noArgs](g.onError),
		))

		// One handler serves both the initial page and every calendar
		// interaction: plain requests get the full page, Datastar requests an
		// SSE patch of the picker and its caption.
		c.Get("/datepicker", viewkit.Wrap(g.datePicker,
			viewkit.WithBinders[viewkit.Context, pickerRequest](binder.Query()),
			viewkit.WithErrorHandler[viewkit.Context, pickerRequest](g.onError),
		))
		c.Post("/datepicker/pick", viewkit.Wrap(g.pickDay,
			viewkit.WithBinders[viewkit.Context, pickFormRequest](binder.Form()),
			viewkit.WithErrorHandler[viewkit.Context, pickFormRequest](g.onError),
		))
	})

	r.Get("/misuse", viewkit.Wrap(g.misuse,
		viewkit.WithErrorHandler[viewkit.Context, noArgs](g.onError),
	))

	r.Get("/api/schemas", viewkit.Wrap(g.schemas,
		viewkit.WithErrorHandler[viewkit.Context, noArgs](g.onError),
	))

	r.Get("/events", viewkit.Wrap(g.events,
		viewkit.WithErrorHandler[viewkit.Context, noArgs](g.onError),
	))

	r.Get("/healthz", httpserver.Healthz(g.log))

	return r
}

// Close stops fanning out theme reloads and ends open event streams.
func (g *Gallery) Close() {
	g.reloads.Close()
}

// logRequests emits one structured line per request after it completes.
func (g *Gallery) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		g.log.LogAttrs(r.Context(), slog.LevelInfo, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
		)
	})
}
