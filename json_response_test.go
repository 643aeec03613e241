package viewkit_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	viewkit "github.com/dmitrymomot/viewkit"
	"github.com/dmitrymomot/viewkit/schema"
)

func renderJSON(t *testing.T, resp viewkit.Response) (*httptest.ResponseRecorder, viewkit.JSONResponse) {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/schemas", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, req))

	var body viewkit.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestJSON(t *testing.T) {
	t.Run("plain value becomes data", func(t *testing.T) {
		rec, body := renderJSON(t, viewkit.JSON(map[string]string{"component": "label"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, map[string]any{"component": "label"}, body.Data)
		assert.Nil(t, body.Error)
	})

	t.Run("custom status and meta", func(t *testing.T) {
		rec, body := renderJSON(t, viewkit.JSON(
			[]string{"label", "title"},
			viewkit.WithJSONStatus(http.StatusCreated),
			viewkit.WithJSONMeta(map[string]any{"count": 2}),
		))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, float64(2), body.Meta["count"])
	})

	t.Run("error value becomes error envelope", func(t *testing.T) {
		rec, body := renderJSON(t, viewkit.JSON(errors.New("boom")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "internal_error", body.Error.Code)
		assert.Equal(t, "boom", body.Error.Message)
	})
}

func TestJSONError(t *testing.T) {
	t.Run("http error maps status and code", func(t *testing.T) {
		rec, body := renderJSON(t, viewkit.JSONError(viewkit.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "not_found", body.Error.Code)
		assert.Equal(t, http.StatusText(http.StatusNotFound), body.Error.Message)
	})

	t.Run("component violations stay a server error", func(t *testing.T) {
		s := schema.MustNew("label",
			schema.Param{Name: "label", Required: true, Type: "string"},
			schema.Param{Name: "width", Type: "string", Check: schema.IsString},
		)
		err := s.Validate(schema.Args{"width": 42, "color": "red"})
		require.Error(t, err)

		rec, body := renderJSON(t, viewkit.JSONError(err))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "invalid_component_arguments", body.Error.Code)
		assert.Equal(t, []string{"unknown argument"}, body.Error.Details["color"])
		assert.Equal(t, []string{"required argument is missing"}, body.Error.Details["label"])
		assert.Equal(t, []string{"not a valid string (got int)"}, body.Error.Details["width"])
	})

	t.Run("error detail passed through", func(t *testing.T) {
		detail := &viewkit.ErrorDetail{Code: "teapot", Message: "short and stout"}
		rec, body := renderJSON(t, viewkit.JSONError(detail, viewkit.WithJSONStatus(http.StatusTeapot)))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "teapot", body.Error.Code)
	})
}
