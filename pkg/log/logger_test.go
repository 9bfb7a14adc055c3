package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/mastermind/pkg/log"
)

func TestLogger_WritesFieldsFromLoggerAndContext(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.NewWithWriter(buf, log.LevelInfo)

	ctx := logger.WithContext(context.Background(), log.Fields{"requestID": "abc"})
	logger.
		WithField("gameID", "123").
		WithError(errors.New("boom")).
		Info(ctx, "guess made")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "guess made", record["msg"])
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "123", record["gameID"])
	assert.Equal(t, "boom", record["error"])
	assert.Equal(t, "abc", record["requestID"])
}

func TestLogger_SkipsRecordsBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.NewWithWriter(buf, log.LevelWarn)

	logger.Info(context.Background(), "skipped")
	logger.Log(context.Background(), log.LevelDisabled, "skipped")
	assert.Empty(t, buf.String())

	logger.Warn(context.Background(), "written")
	assert.Contains(t, buf.String(), "written")
}

func TestParseLevel(t *testing.T) {
	level, ok := log.ParseLevel(" DEBUG ")
	assert.True(t, ok)
	assert.Equal(t, log.LevelDebug, level)

	_, ok = log.ParseLevel("verbose")
	assert.False(t, ok)
}
