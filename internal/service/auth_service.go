package service

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/barakahq/supportbot/internal/model"
	appErr "github.com/barakahq/supportbot/internal/pkg/errors"
	"github.com/barakahq/supportbot/internal/pkg/jwt"
	"github.com/barakahq/supportbot/internal/pkg/password"
	"github.com/barakahq/supportbot/internal/repo"
)

type AuthService struct {
	users     *repo.UserRepo
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewAuthService(users *repo.UserRepo, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Login(ctx context.Context, username, plainPassword string) (*model.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", appErr.ErrUnauthorized
	}
	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return nil, "", appErr.ErrUnauthorized
	}
	token, err := jwt.GenerateToken(user.Username, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SeedDefaults makes sure the demo accounts exist and upgrades any
// stored plaintext password to a bcrypt hash. Runs once at startup.
func (s *AuthService) SeedDefaults(ctx context.Context) error {
	seeds := []struct {
		username string
		plain    string
		role     string
	}{
		{username: "admin", plain: "admin123", role: model.RoleAdmin},
		{username: "user", plain: "user123", role: model.RoleUser},
	}
	now := time.Now().Unix()
	for _, seed := range seeds {
		existing, err := s.users.GetByUsername(ctx, seed.username)
		if err == nil {
			if password.IsHashed(existing.PasswordHash) {
				continue
			}
			// hash whatever plaintext is stored rather than resetting
			// to the seed password, so a changed demo password survives
			hash, err := password.Hash(existing.PasswordHash)
			if err != nil {
				return err
			}
			if err := s.users.UpdateCredentials(ctx, existing.Username, hash, existing.Role, now); err != nil {
				return err
			}
			logutil.GetLogger(ctx).Info("upgraded stored password to hash", zap.String("username", existing.Username))
			continue
		}
		if !appErr.IsNotFound(err) {
			return err
		}
		hash, err := password.Hash(seed.plain)
		if err != nil {
			return err
		}
		user := &model.User{
			Username:     seed.username,
			PasswordHash: hash,
			Role:         seed.role,
			Ctime:        now,
			Mtime:        now,
		}
		if err := s.users.Create(ctx, user); err != nil && !appErr.IsConflict(err) {
			return err
		}
	}
	return nil
}
