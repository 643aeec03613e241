package theme_test

import (
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewkit/pkg/theme"
)

func TestHolder(t *testing.T) {
	t.Run("get returns the loaded theme", func(t *testing.T) {
		h, err := theme.NewHolder(writeTheme(t, validTheme), nil)
		require.NoError(t, err)
		defer h.Stop()

		assert.Equal(t, "daylight", h.Get().Name)
	})

	t.Run("load failure surfaces at construction", func(t *testing.T) {
		_, err := theme.NewHolder(writeTheme(t, "font:\n  family: serif\n"), nil)
		assert.ErrorIs(t, err, theme.ErrMissingTokens)
	})

	t.Run("reload swaps the theme", func(t *testing.T) {
		path := writeTheme(t, validTheme)
		h, err := theme.NewHolder(path, nil)
		require.NoError(t, err)
		defer h.Stop()

		next := strings.Replace(validTheme, "daylight", "midnight", 1)
		require.NoError(t, os.WriteFile(path, []byte(next), 0o644))

		require.NoError(t, h.Reload())
		assert.Equal(t, "midnight", h.Get().Name)
	})

	t.Run("failed reload keeps the current theme", func(t *testing.T) {
		path := writeTheme(t, validTheme)
		h, err := theme.NewHolder(path, nil)
		require.NoError(t, err)
		defer h.Stop()

		require.NoError(t, os.WriteFile(path, []byte("colors: {}\n"), 0o644))

		assert.Error(t, h.Reload())
		assert.Equal(t, "daylight", h.Get().Name)
	})

	t.Run("onchange fires after successful reload", func(t *testing.T) {
		path := writeTheme(t, validTheme)
		h, err := theme.NewHolder(path, nil)
		require.NoError(t, err)
		defer h.Stop()

		var (
			mu   sync.Mutex
			seen []string
		)
		h.OnChange(func(th *theme.Theme) {
			mu.Lock()
			seen = append(seen, th.Name)
			mu.Unlock()
		})

		next := strings.Replace(validTheme, "daylight", "midnight", 1)
		require.NoError(t, os.WriteFile(path, []byte(next), 0o644))
		require.NoError(t, h.Reload())

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []string{"midnight"}, seen)
	})

	t.Run("watch reloads on file change", func(t *testing.T) {
		path := writeTheme(t, validTheme)
		h, err := theme.NewHolder(path, nil)
		require.NoError(t, err)
		defer h.Stop()

		require.NoError(t, h.Watch())

		next := strings.Replace(validTheme, "daylight", "midnight", 1)
		require.NoError(t, os.WriteFile(path, []byte(next), 0o644))

		require.Eventually(t, func() bool {
			return h.Get().Name == "midnight"
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("concurrent readers and reloads", func(t *testing.T) {
		path := writeTheme(t, validTheme)
		h, err := theme.NewHolder(path, nil)
		require.NoError(t, err)
		defer h.Stop()

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					if h.Get() == nil {
						t.Error("Get returned nil")
						return
					}
				}
			}()
		}
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = h.Reload()
			}()
		}
		wg.Wait()
	})
}
