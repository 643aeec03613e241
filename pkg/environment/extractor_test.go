package environment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewkit/pkg/environment"
)

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	t.Run("emits env attribute when present", func(t *testing.T) {
		t.Parallel()

		ctx := environment.WithContext(context.Background(), environment.Production)
		attr, ok := extract(ctx)
		require.True(t, ok)
		assert.Equal(t, "env", attr.Key)
		assert.Equal(t, "production", attr.Value.String())
	})

	t.Run("emits nothing when absent", func(t *testing.T) {
		t.Parallel()

		_, ok := extract(context.Background())
		assert.False(t, ok)
	})
}
