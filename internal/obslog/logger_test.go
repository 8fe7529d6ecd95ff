package obslog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantivygo/aggregations/internal/obslog"
)

func newBufferedLogger(buf *bytes.Buffer) *obslog.Logger {
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &obslog.Logger{Logger: slog.New(handler).With("service", "aggregations", "component", "test")}
}

func decodeLastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestLogger_TagsServiceAndComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedLogger(&buf)

	logger.Info("segment collected")

	record := decodeLastRecord(t, &buf)
	assert.Equal(t, "aggregations", record["service"])
	assert.Equal(t, "test", record["component"])
	assert.Equal(t, "segment collected", record["msg"])
}

func TestLogger_WithAddsAttributesWithoutMutatingParent(t *testing.T) {
	var buf bytes.Buffer
	base := newBufferedLogger(&buf)
	tagged := base.With("search_id", "abc-123")

	tagged.Info("running")
	record := decodeLastRecord(t, &buf)
	assert.Equal(t, "abc-123", record["search_id"])

	buf.Reset()
	base.Info("untagged")
	record = decodeLastRecord(t, &buf)
	_, present := record["search_id"]
	assert.False(t, present, "With must return a new Logger, not mutate the receiver")
}

func TestDefault_ReturnsNonNilLogger(t *testing.T) {
	logger := obslog.Default("search")
	require.NotNil(t, logger)
	require.NotNil(t, logger.Logger)
}
