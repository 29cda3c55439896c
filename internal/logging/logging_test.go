package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aaravmahajanofficial/retail-pos/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Run("Stored Logger", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil)).With(slog.String("correlation_id", "req-7"))
		ctx := logging.WithLogger(context.Background(), logger)

		// Act
		logging.FromContext(ctx).Info("sale recorded")

		// Assert
		assert.Same(t, logger, logging.FromContext(ctx))
		assert.Contains(t, buf.String(), `"correlation_id":"req-7"`)
	})

	t.Run("Falls Back To Default", func(t *testing.T) {
		// Act
		got := logging.FromContext(context.Background())

		// Assert
		assert.Same(t, slog.Default(), got)
	})
}
