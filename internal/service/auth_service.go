package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/procurement-service/internal/auth"
	"github.com/spec-kit/procurement-service/internal/config"
	"github.com/spec-kit/procurement-service/internal/domain"
	"github.com/spec-kit/procurement-service/internal/repository"
)

// AuthService coordinates the login flow.
type AuthService struct {
	users    repository.UserRepository
	hasher   auth.Hasher
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service. The hasher is a replaceable
// collaborator; production wiring passes the bcrypt one.
func NewAuthService(cfg config.Config, users repository.UserRepository, hasher auth.Hasher) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes),
	}
}

// Login authenticates by login and password and issues a token. A missing
// user and a wrong password both collapse to ErrWrongLoginOrPassword so
// account existence does not leak.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, time.Time, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", time.Time{}, domain.ErrWrongLoginOrPassword
		}
		return "", time.Time{}, err
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", time.Time{}, domain.ErrWrongLoginOrPassword
	}
	return s.tokenMgr.Issue(user.ID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
