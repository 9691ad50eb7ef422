package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/barakahq/supportbot/internal/model"
	appErr "github.com/barakahq/supportbot/internal/pkg/errors"
	"github.com/barakahq/supportbot/internal/pkg/jwt"
	"github.com/barakahq/supportbot/internal/pkg/password"
	"github.com/barakahq/supportbot/internal/repo"
)

func newAuthService(t *testing.T) (*AuthService, *repo.UserRepo) {
	t.Helper()
	users := repo.NewUserRepo(newTestDB(t))
	return NewAuthService(users, []byte("test-secret"), time.Hour), users
}

func TestSeedDefaultsAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.SeedDefaults(context.Background()))
	// idempotent
	require.NoError(t, svc.SeedDefaults(context.Background()))

	user, token, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, user.Role)
	require.NotEmpty(t, token)

	claims, err := jwt.ParseToken(token, []byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, model.RoleAdmin, claims.Role)

	user, _, err = svc.Login(context.Background(), "user", "user123")
	require.NoError(t, err)
	require.Equal(t, model.RoleUser, user.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.SeedDefaults(context.Background()))

	_, _, err := svc.Login(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, appErr.ErrUnauthorized)

	_, _, err = svc.Login(context.Background(), "ghost", "whatever")
	require.ErrorIs(t, err, appErr.ErrUnauthorized)
}

func TestSeedDefaultsUpgradesPlaintextPassword(t *testing.T) {
	svc, users := newAuthService(t)
	now := time.Now().Unix()
	// a legacy row with the password stored in the clear
	require.NoError(t, users.Create(context.Background(), &model.User{
		Username:     "admin",
		PasswordHash: "admin123",
		Role:         model.RoleAdmin,
		Ctime:        now,
		Mtime:        now,
	}))

	require.NoError(t, svc.SeedDefaults(context.Background()))

	upgraded, err := users.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	require.True(t, password.IsHashed(upgraded.PasswordHash))

	_, _, err = svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
}

func TestSeedDefaultsKeepsChangedPlaintext(t *testing.T) {
	svc, users := newAuthService(t)
	now := time.Now().Unix()
	require.NoError(t, users.Create(context.Background(), &model.User{
		Username:     "admin",
		PasswordHash: "letmein",
		Role:         model.RoleAdmin,
		Ctime:        now,
		Mtime:        now,
	}))

	require.NoError(t, svc.SeedDefaults(context.Background()))

	// the stored password is hashed in place, not reset to the seed
	_, _, err := svc.Login(context.Background(), "admin", "letmein")
	require.NoError(t, err)
	_, _, err = svc.Login(context.Background(), "admin", "admin123")
	require.ErrorIs(t, err, appErr.ErrUnauthorized)
}
