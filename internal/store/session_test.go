package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnwords/internal/config"
	"learnwords/internal/logger"
	"learnwords/models"
)

func newTestStorage(t *testing.T, path string) SessionRepository {
	t.Helper()
	repo, err := NewSessionStorage(config.ClientStorage{SessionFilePath: path}, logger.Nop())
	require.NoError(t, err)
	return repo
}

func testSession() models.Session {
	return models.Session{
		Token:        "token-123",
		RefreshToken: "refresh-456",
		UserID:       "user-1",
		Name:         "Alice",
	}
}

func TestSaveAndRestoreSession(t *testing.T) {
	repo := newTestStorage(t, ":memory:")
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, testSession()))

	restored, err := repo.RestoreSession(ctx)
	require.NoError(t, err)

	assert.True(t, restored.IsAuthorized)
	assert.Equal(t, "token-123", restored.Token)
	assert.Equal(t, "user-1", restored.UserID)
	assert.Equal(t, "Alice", restored.Name)

	name, err := repo.UserName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)
}

func TestRestoreSession_NotFoundWhenEmpty(t *testing.T) {
	repo := newTestStorage(t, ":memory:")

	_, err := repo.RestoreSession(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestClearSession_RemovesAllKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	repo := newTestStorage(t, path)
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, testSession()))
	require.NoError(t, repo.ClearSession(ctx))

	_, err := repo.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	name, err := repo.UserName(ctx)
	require.NoError(t, err)
	assert.Empty(t, name)

	// после logout в файле не должно остаться ни одного ключа сессии
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	values := map[string]string{}
	require.NoError(t, json.Unmarshal(data, &values))
	assert.Empty(t, values)
}

func TestSession_SurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	first := newTestStorage(t, path)
	require.NoError(t, first.SaveSession(ctx, testSession()))

	// новый экземпляр читает тот же файл — аналог перезагрузки страницы
	second := newTestStorage(t, path)
	restored, err := second.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", restored.Name)
	assert.True(t, restored.IsAuthorized)
}

func TestRestoreSession_CorruptedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	payload := map[string]string{
		keyAuthorized: "true",
		keyUser:       "{not json",
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	repo := newTestStorage(t, path)
	_, err = repo.RestoreSession(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
