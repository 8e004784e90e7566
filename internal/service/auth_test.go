package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/crime_pulse/internal/models"
)

func TestLogin_Success(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	user := &models.User{Email: "user@example.com", Name: "User"}
	f.api.EXPECT().Login(gomock.Any(), "user@example.com", "password1").Return(&models.AuthResult{
		Success: true,
		Token:   "jwt-token",
		User:    user,
	}, nil)
	f.api.EXPECT().SetToken("jwt-token")
	f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	sess, err := f.service.Login(ctx, "user@example.com", "password1")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "jwt-token", sess.Token)
	assert.Equal(t, "user@example.com", sess.User.Email)

	current := f.service.CurrentSession()
	require.NotNil(t, current)
	assert.Equal(t, sess.Token, current.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	f.api.EXPECT().Login(gomock.Any(), "user@example.com", "wrongpass").Return(&models.AuthResult{
		Success: false,
		Error:   "Invalid email or password",
	}, nil)

	sess, err := f.service.Login(ctx, "user@example.com", "wrongpass")
	require.Error(t, err)
	assert.Nil(t, sess)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid email or password", authErr.Message)
	assert.Nil(t, f.service.CurrentSession())
}

func TestLogin_TransportError(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	f.api.EXPECT().Login(gomock.Any(), "user@example.com", "password1").Return(nil, errors.New("connection refused"))

	_, err := f.service.Login(ctx, "user@example.com", "password1")
	require.Error(t, err)

	var authErr *AuthError
	assert.False(t, errors.As(err, &authErr))
}

func TestLogin_SessionSaveFailureDoesNotBlockLogin(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	f.api.EXPECT().Login(gomock.Any(), "user@example.com", "password1").Return(&models.AuthResult{
		Success: true,
		Token:   "jwt-token",
		User:    &models.User{Email: "user@example.com"},
	}, nil)
	f.api.EXPECT().SetToken("jwt-token")
	f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	sess, err := f.service.Login(ctx, "user@example.com", "password1")
	require.NoError(t, err)
	assert.NotNil(t, sess)
	assert.NotNil(t, f.service.CurrentSession())
}

func TestRegister_OpensSession(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	f.api.EXPECT().Register(gomock.Any(), "New User", "new@example.com", "password1").Return(&models.AuthResult{
		Success: true,
		Token:   "jwt-token",
		User:    &models.User{Email: "new@example.com", Name: "New User"},
	}, nil)
	f.api.EXPECT().SetToken("jwt-token")
	f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	sess, err := f.service.Register(ctx, "New User", "new@example.com", "password1")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "New User", sess.User.Name)
}

func TestLogout_ClearsSessionAndToken(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	f.api.EXPECT().Login(gomock.Any(), "user@example.com", "password1").Return(&models.AuthResult{
		Success: true,
		Token:   "jwt-token",
		User:    &models.User{Email: "user@example.com"},
	}, nil)
	f.api.EXPECT().SetToken("jwt-token")
	f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	_, err := f.service.Login(ctx, "user@example.com", "password1")
	require.NoError(t, err)

	f.sessions.EXPECT().Clear(gomock.Any()).Return(nil)
	f.api.EXPECT().ClearToken()

	require.NoError(t, f.service.Logout(ctx))
	assert.Nil(t, f.service.CurrentSession())
}

func TestLogout_ClearFailure(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	f.sessions.EXPECT().Clear(gomock.Any()).Return(errors.New("redis down"))

	err := f.service.Logout(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not clear session")
}

func TestRestoreSession_Found(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	persisted := &models.Session{
		Token: "jwt-token",
		User:  &models.User{Email: "user@example.com"},
	}
	f.sessions.EXPECT().Load(gomock.Any()).Return(persisted, nil)
	f.api.EXPECT().SetToken("jwt-token")

	sess, err := f.service.RestoreSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "user@example.com", sess.User.Email)
	assert.NotNil(t, f.service.CurrentSession())
}

func TestRestoreSession_NothingPersisted(t *testing.T) {
	f := newTestDashboard(t)
	ctx := context.Background()

	f.sessions.EXPECT().Load(gomock.Any()).Return(nil, nil)

	sess, err := f.service.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Nil(t, f.service.CurrentSession())
}
