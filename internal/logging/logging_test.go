package logging_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/jsonscrub/internal/logging"
)

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	log := logging.NewLogger(logging.Config{Level: "extremely-loud"})
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNewLogger_ParsesLevel(t *testing.T) {
	log := logging.NewLogger(logging.Config{Level: "debug", Format: "json"})
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestFromContext_RoundTrip(t *testing.T) {
	log := logging.NewLogger(logging.Config{Level: "warn"})
	ctx := logging.WithContext(context.Background(), log)

	got := logging.FromContext(ctx)
	assert.Equal(t, zerolog.WarnLevel, got.GetLevel())
}

func TestFromContext_MissingLoggerIsDisabled(t *testing.T) {
	got := logging.FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, got.GetLevel())
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, logging.TraceIDFromContext(ctx))

	id := logging.GetOrGenerateTraceID(ctx)
	require.NotEmpty(t, id)

	ctx = logging.ContextWithTraceID(ctx, id)
	assert.Equal(t, id, logging.TraceIDFromContext(ctx))
	assert.Equal(t, id, logging.GetOrGenerateTraceID(ctx))
}
