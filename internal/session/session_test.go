package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/crime_pulse/internal/models"
)

func newTestRepository(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRepository(client), mr
}

func TestLoad_EmptyStorage(t *testing.T) {
	repo, _ := newTestRepository(t)

	sess, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	saved := &models.Session{
		Token: "jwt-token",
		User:  &models.User{ID: "42", Name: "User", Email: "user@example.com"},
	}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "jwt-token", loaded.Token)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "user@example.com", loaded.User.Email)
	assert.Equal(t, "User", loaded.User.Name)
}

func TestSave_OverwritesPreviousSession(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.Session{
		Token: "old-token",
		User:  &models.User{Email: "old@example.com"},
	}))
	require.NoError(t, repo.Save(ctx, &models.Session{
		Token: "new-token",
		User:  &models.User{Email: "new@example.com"},
	}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "new-token", loaded.Token)
	assert.Equal(t, "new@example.com", loaded.User.Email)
}

func TestClear_RemovesSession(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.Session{
		Token: "jwt-token",
		User:  &models.User{Email: "user@example.com"},
	}))
	require.NoError(t, repo.Clear(ctx))

	sess, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLoad_TokenWithoutUser(t *testing.T) {
	repo, mr := newTestRepository(t)

	// Неполная запись трактуется как отсутствие сессии
	require.NoError(t, mr.Set(tokenKey, "orphan-token"))

	sess, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLoad_CorruptUserPayload(t *testing.T) {
	repo, mr := newTestRepository(t)

	require.NoError(t, mr.Set(tokenKey, "jwt-token"))
	require.NoError(t, mr.Set(userKey, "{not json"))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
}
