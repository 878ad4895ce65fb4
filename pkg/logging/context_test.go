package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/pushull/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
		//nolint:staticcheck // nil context is handled explicitly
		assert.Same(t, logging.Default(), logging.FromContext(nil))
	})

	t.Run("WithLogger nil uses default", func(t *testing.T) {
		ctx := logging.WithLogger(context.Background(), nil)
		assert.Same(t, logging.Default(), logging.FromContext(ctx))
	})

	t.Run("WithFields attaches every field", func(t *testing.T) {
		testLogger := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), testLogger.Logger)
		ctx = logging.WithFields(ctx, map[string]any{
			"component": "messages",
			"error":     errors.New("boom"),
			"created":   true,
		})

		logging.Ctx(ctx).Warn().Msg("done")

		testLogger.AssertContains(t, `"component":"messages"`)
		testLogger.AssertContains(t, `"error":"boom"`)
		testLogger.AssertContains(t, `"created":true`)
	})

	t.Run("RunID empty without run", func(t *testing.T) {
		assert.Empty(t, logging.RunID(context.Background()))
	})
}
