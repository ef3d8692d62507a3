package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizzer/internal/config"
	"github.com/abhisek/quizzer/internal/session"
)

type firstSelector struct{}

func (firstSelector) Pick(int) int { return 0 }

func testConfig(t *testing.T) *config.App {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{
		"QUIZZER_DB": filepath.Join(t.TempDir(), "quizzer.db"),
	})
	require.NoError(t, err)
	return cfg
}

func TestRun_SeedsAndPlays(t *testing.T) {
	cfg := testConfig(t)
	var out, errOut bytes.Buffer

	err := Run(context.Background(), Options{
		Config:   cfg,
		In:       strings.NewReader("list\nplay\nroma\nlondres\nq\n"),
		Out:      &out,
		Err:      &errOut,
		Selector: firstSelector{},
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[1]: Capital de Italia")
	assert.Contains(t, out.String(), "CORRECT - 1 hits so far.")
	assert.Contains(t, out.String(), "End of game. Hits: 1")
	assert.Empty(t, errOut.String())
	assert.NotContains(t, out.String(), "\x1b[", "non-interactive output is never styled")

	logData, err := os.ReadFile(filepath.Join(filepath.Dir(cfg.DBPath), "quizzer.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "session finished")
}

func TestOpen_RecordsSessions(t *testing.T) {
	cfg := testConfig(t)
	ctx, env, err := Open(context.Background(), Options{
		Config: cfg,
		In:     strings.NewReader("wrong\n"),
		Out:    &bytes.Buffer{},
		Err:    &bytes.Buffer{},
	})
	require.NoError(t, err)
	defer env.Close()

	summary := env.Shell.Play(ctx)
	assert.Equal(t, session.OutcomeWrongAnswer, summary.Outcome)

	recent, err := env.Store.SessionRepo().Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, summary.SessionID, recent[0].SessionID)
}

func TestOpen_WithoutSeeding(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedDefaults = false

	ctx, env, err := Open(context.Background(), Options{
		Config: cfg,
		In:     strings.NewReader(""),
		Out:    &bytes.Buffer{},
		Err:    &bytes.Buffer{},
	})
	require.NoError(t, err)
	defer env.Close()

	n, err := env.Store.QuizRepo().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpen_MissingConfig(t *testing.T) {
	_, _, err := Open(context.Background(), Options{})
	require.Error(t, err)
}
