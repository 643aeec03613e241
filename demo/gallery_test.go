package demo_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewkit/demo"
	"github.com/dmitrymomot/viewkit/pkg/theme"
)

const testThemeYAML = `name: daylight
colors:
  background: "#ffffff"
  text: "#111111"
  primary: "#2563eb"
  border: "#dddddd"
spacing:
  sm: "8px"
  md: "16px"
  lg: "32px"
radius:
  md: "6px"
font:
  family: system-ui
  size: 16px
`

func newGallery(t *testing.T) http.Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testThemeYAML), 0o644))

	holder, err := theme.NewHolder(path, nil)
	require.NoError(t, err)
	t.Cleanup(holder.Stop)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	g := demo.New(demo.Config{Addr: ":0", Env: "development", ThemePath: path}, holder, log)
	t.Cleanup(g.Close)

	return g.Handler()
}

func doGet(t *testing.T, h http.Handler, target string, datastar bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if datastar {
		req.Header.Set("Accept", "text/event-stream")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGalleryPages(t *testing.T) {
	h := newGallery(t)

	cases := []struct {
		path string
		want []string
	}{
		{path: "/", want: []string{
			"viewkit component gallery",
			`<style id="theme-style">:root{--font-family:system-ui;`,
		}},
		{path: "/components/label", want: []string{
			`<label class="vk-label">Day</label>`,
			`<h2 class="vk-title">Parameters</h2>`,
		}},
		{path: "/components/title", want: []string{
			`<h2 class="vk-title">Pick a day</h2>`,
		}},
		{path: "/components/paragraph", want: []string{
			"text-align:justify",
		}},
		{path: "/components/boxes", want: []string{
			`class="vk-box"`,
			`class="vk-vbox"`,
			`class="vk-hbox"`,
		}},
		{path: "/misuse", want: []string{
			"unknown_argument",
			"missing_argument",
			"invalid_value",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := doGet(t, h, tc.path, false)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

			body := rec.Body.String()
			for _, want := range tc.want {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestSchemasAPI(t *testing.T) {
	h := newGallery(t)
	rec := doGet(t, h, "/api/schemas", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body struct {
		Data []struct {
			Component string `json:"component"`
			Params    []struct {
				Name     string `json:"name"`
				Type     string `json:"type"`
				Required bool   `json:"required"`
				Default  any    `json:"default"`
				Doc      string `json:"doc"`
			} `json:"params"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	var names []string
	for _, doc := range body.Data {
		names = append(names, doc.Component)
	}
	assert.Equal(t, []string{"label", "title", "paragraph", "box", "vbox", "hbox", "datepicker"}, names)

	picker := body.Data[len(body.Data)-1]
	require.Equal(t, "datepicker", picker.Component)
	assert.Equal(t, "name", picker.Params[0].Name)
	assert.True(t, picker.Params[0].Required)
	// Checks are functions and must not leak into the JSON document.
	assert.NotContains(t, rec.Body.String(), `"check"`)
}

func TestDatePickerRoutes(t *testing.T) {
	h := newGallery(t)

	t.Run("plain request gets the full page", func(t *testing.T) {
		rec := doGet(t, h, "/components/datepicker", false)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<!doctype html>")
		assert.Contains(t, body, `<form id="pick-form"`)
		assert.Contains(t, body, "No date selected yet.")
	})

	t.Run("calendar interaction patches over SSE", func(t *testing.T) {
		rec := doGet(t, h, "/components/datepicker?name=day&month=2026-08&open=true", true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, `id="datepicker-day"`)
		assert.Contains(t, body, "August 2026")
		assert.Contains(t, body, `id="selected-day"`)
		assert.NotContains(t, body, "<!doctype html>")
	})

	t.Run("day selection round-trips through the query", func(t *testing.T) {
		rec := doGet(t, h, "/components/datepicker?name=day&day=2026-08-10", false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Selected: Monday, 10 August 2026")
	})

	t.Run("locale switches the calendar language", func(t *testing.T) {
		rec := doGet(t, h, "/components/datepicker?name=day&day=2026-08-10&locale=de", false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Selected: Montag, 10 August 2026")
	})

	t.Run("malformed day is a client error", func(t *testing.T) {
		rec := doGet(t, h, "/components/datepicker?day=not-a-date", false)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Error 400")
	})

	t.Run("malformed day over Datastar becomes a toast", func(t *testing.T) {
		rec := doGet(t, h, "/components/datepicker?day=not-a-date", true)

		body := rec.Body.String()
		assert.Contains(t, body, `class="toast is-warning"`)
		assert.Contains(t, body, "#toast-container")
		assert.NotContains(t, body, "<!doctype html>")
	})
}

func TestPickDay(t *testing.T) {
	h := newGallery(t)

	form := url.Values{"day": {"2026-08-10"}, "locale": {"en"}}

	post := func(t *testing.T, datastar bool) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/components/datepicker/pick",
			strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if datastar {
			req.Header.Set("Accept", "text/event-stream")
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("plain submit renders the page", func(t *testing.T) {
		rec := post(t, false)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<!doctype html>")
		assert.Contains(t, body, "Selected: Monday, 10 August 2026")
	})

	t.Run("datastar submit patches the caption", func(t *testing.T) {
		rec := post(t, true)

		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, `id="selected-day"`)
		assert.Contains(t, body, "Selected: Monday, 10 August 2026")
		assert.NotContains(t, body, "<!doctype html>")
	})
}

func TestHealthz(t *testing.T) {
	h := newGallery(t)
	rec := doGet(t, h, "/healthz", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}
