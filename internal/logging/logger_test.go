package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_DefaultsToNop(t *testing.T) {
	logger := FromContext(context.Background())
	assert.Equal(t, "disabled", logger.GetLevel().String())
}

func TestIntoContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	ctx := IntoContext(context.Background(), New(&buf, "debug"))

	logger := FromContext(ctx)
	logger.Info().Str("command", "list").Msg("dispatch")

	assert.Contains(t, buf.String(), `"command":"list"`)
	assert.Contains(t, buf.String(), `"app":"quizzer"`)
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "chatty")
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestOpenFile_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "quizzer.log")

	w, closeFn, err := OpenFile(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}
