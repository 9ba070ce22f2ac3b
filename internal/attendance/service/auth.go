package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/domain"
	"github.com/ssonuprakashks-droid/attendance/internal/attendance/store"
	"github.com/ssonuprakashks-droid/attendance/pkg/cryptox"
	"github.com/ssonuprakashks-droid/attendance/pkg/idx"
	"github.com/ssonuprakashks-droid/attendance/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so the login surface never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrSessionInvalid covers unknown and expired session tokens.
	ErrSessionInvalid = errors.New("session invalid or expired")
)

// DefaultSessionTTL bounds how long a login stays valid without re-auth.
const DefaultSessionTTL = 12 * time.Hour

// AuthService owns the credential check and the session lifecycle.
type AuthService struct {
	Store      store.Store
	SessionTTL time.Duration
}

// TTL returns the effective session lifetime.
func (s *AuthService) TTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSessionTTL
}

// Login verifies the credentials and, on success, mints an opaque session
// token bound to the user. The raw token goes into the client's cookie;
// only its fingerprint is stored.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)
	username = strings.TrimSpace(username)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("failed login attempt", "username", username)
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("generate session token: %w", err)
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.TTL()),
		CreatedAt: now,
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return domain.User{}, "", fmt.Errorf("create session: %w", err)
	}

	log.Info("user logged in", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

// Authenticate resolves a raw cookie token to its user. Expired sessions
// are deleted on sight rather than waiting for housekeeping.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (domain.User, error) {
	if rawToken == "" {
		return domain.User{}, ErrSessionInvalid
	}

	hash := cryptox.FingerprintToken(rawToken)
	session, err := s.Store.Sessions().GetSessionByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrSessionInvalid
		}
		return domain.User{}, fmt.Errorf("lookup session: %w", err)
	}

	if session.Expired(time.Now().UTC()) {
		_ = s.Store.Sessions().DeleteSessionByTokenHash(ctx, hash)
		return domain.User{}, ErrSessionInvalid
	}

	user, err := s.Store.Users().GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrSessionInvalid
		}
		return domain.User{}, fmt.Errorf("lookup session user: %w", err)
	}

	return user, nil
}

// Logout clears the session bound to the token. Unknown tokens are a no-op;
// logout must always succeed from the client's point of view.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	return s.Store.Sessions().DeleteSessionByTokenHash(ctx, cryptox.FingerprintToken(rawToken))
}
