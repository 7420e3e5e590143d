package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"financial-assistant/internal/config"
	"financial-assistant/internal/dto"
	"financial-assistant/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	t.Setenv("APP_ENV", config.EnvTesting)
	t.Setenv("APP_CONFIG_FILE", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("ADMIN_JWT_SECRET", testSecret)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DATASET_SOURCE", config.DatasetSourceJSON)
	t.Setenv("DATASET_PATH", filepath.Join(dir, "transactions.json"))
	t.Setenv("STORAGE_BACKEND", config.StorageBackendFS)
	t.Setenv("INDEX_DIR", filepath.Join(dir, "index"))
	t.Setenv("EMBEDDING_PROVIDER", config.EmbeddingProviderHashing)
	t.Setenv("EMBEDDING_DIM", "64")
	t.Setenv("DB_DRIVER", config.DatabaseDriverSQLite)
	t.Setenv("DB_SQLITE_PATH", filepath.Join(dir, "transactions.db"))

	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.Writer = &out
	err := cmd.Run(context.Background(), append([]string{"finassist"}, args...))
	return out.String(), err
}

func TestGenerateBuildAndQuery(t *testing.T) {
	dir := setupEnv(t)

	_, err := run(t, "generate", "--users", "2", "--min", "10", "--max", "12", "--seed", "3", "--to-db")
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "transactions.json"))
	require.NoError(t, err)
	var generated []map[string]any
	require.NoError(t, json.Unmarshal(raw, &generated))
	assert.GreaterOrEqual(t, len(generated), 20)
	assert.LessOrEqual(t, len(generated), 24)
	assert.FileExists(t, filepath.Join(dir, "transactions.db"))

	out, err := run(t, "build-index")
	require.NoError(t, err)
	assert.Contains(t, out, "generation ")
	assert.FileExists(t, filepath.Join(dir, "index", "manifest.json"))

	out, err = run(t, "search", "--top-k", "3", "coffee", "shop")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "1."))

	out, err = run(t, "search", "--json", "--user", "USER002", "salary")
	require.NoError(t, err)
	var search dto.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(out), &search))
	assert.Equal(t, "salary", search.Query)
	for _, r := range search.Results {
		assert.Equal(t, "USER002", r.UserID)
	}

	out, err = run(t, "summary", "--limit", "15", "--json")
	require.NoError(t, err)
	var summary dto.SummaryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 15, summary.TransactionCount)
	assert.NotEmpty(t, summary.TextSummary)
}

func TestBuildIndexFromDatabase(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "generate", "--users", "1", "--min", "5", "--max", "5", "--seed", "9", "--to-db")
	require.NoError(t, err)

	out, err := run(t, "build-index", "--source", config.DatasetSourceDatabase)
	require.NoError(t, err)
	assert.Contains(t, out, "5 transactions")
}

func TestSearchWithoutIndex(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "search", "coffee")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrSnapshotNotFound)
}

func TestSearchRequiresQuery(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "search")
	assert.Error(t, err)
}

func TestSearchRejectsBadFilter(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "search", "--min", "lots", "coffee")
	assert.ErrorIs(t, err, services.ErrInvalidFilter)
}

func TestAskWithoutAPIKey(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "ask", "where does my money go?")
	assert.ErrorIs(t, err, services.ErrLLMDisabled)
}

func TestAdminToken(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "admin-token", "--subject", "ci", "--ttl", "5m")
	require.NoError(t, err)

	token, _, _ := strings.Cut(out, "\n")
	tokens := services.NewTokenService(&config.SecurityConfig{
		AdminJWTSecret: testSecret,
		JWTIssuer:      "financial-assistant",
	})
	claims, err := tokens.ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ci", claims.Subject)
}
