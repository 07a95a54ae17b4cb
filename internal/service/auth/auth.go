// Package auth implements email+password authentication for the back office.
// Sessions live in Redis keyed by a UUIDv7 session ID that is embedded in the
// PASETO sid claim; the user_sessions table is a best-effort audit trail.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shifaalhind/backend/config"
	"github.com/shifaalhind/backend/internal/repo"
	entuser "github.com/shifaalhind/backend/internal/repo/user"
	entusersession "github.com/shifaalhind/backend/internal/repo/usersession"
	"github.com/shifaalhind/backend/pkg/authorize"
	"github.com/shifaalhind/backend/pkg/crypto"
	pasetotoken "github.com/shifaalhind/backend/pkg/paseto"
	"github.com/shifaalhind/backend/pkg/util/password"
)

const (
	maxLoginAttempts = 5
	accountLockMins  = 15
	minPasswordLen   = 8
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Email    string
	Password string
}

type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires

	// MustChangePassword signals the client to force a password change
	// before using the rest of the admin panel.
	MustChangePassword bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db       *repo.Client
	rdb      *redis.Client
	paseto   *pasetotoken.Manager
	cfg      *config.Config
	pwParams *password.Params
	logger   *slog.Logger
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &authService{
		db:       db,
		rdb:      rdb,
		paseto:   paseto,
		cfg:      cfg,
		pwParams: password.FromCentralConfig(cfg.Password).ToParams(),
		logger:   logger,
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.db.User.Query().
		Where(entuser.Email(email), entuser.IsArchived(false)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if u.Status == entuser.StatusSUSPENDED {
		return nil, ErrAccountSuspended
	}
	if u.LockedUntil != nil && time.Now().Before(*u.LockedUntil) {
		return nil, ErrAccountLocked
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, u)
		return nil, ErrInvalidCredentials
	}

	// Reset failure counters
	now := time.Now()
	s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		SetLastLoginAt(now).
		Save(ctx)

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	// Check session exists
	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue a new access token only; the refresh token stays valid until
	// logout or expiry.
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID, claims.Role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	// Touch the audit row (best-effort)
	s.db.UserSession.Update().
		Where(entusersession.SessionID(claims.SessionID.String())).
		SetLastUsedAt(time.Now()).
		Save(ctx)

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired which is not an error for the client
		s.logger.Debug("logout: session not found in Redis", "session_id", sessionID)
	}

	// Mark revoked in the audit trail (best-effort)
	s.db.UserSession.Update().
		Where(entusersession.SessionID(sessionID.String()), entusersession.RevokedAtIsNil()).
		SetRevokedAt(time.Now()).
		Save(ctx)

	return nil
}

// ---------------------------------------------------------------------------
// ChangePassword
// ---------------------------------------------------------------------------

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	if len(req.NewPassword) < minPasswordLen {
		return ErrPasswordTooShort
	}
	if req.NewPassword == req.CurrentPassword {
		return ErrSamePassword
	}

	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.IsArchived(false)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := password.Verify(u.PasswordHash, req.CurrentPassword); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := password.HashWithParams(req.NewPassword, s.pwParams)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.db.User.UpdateOne(u).
		SetPasswordHash(hash).
		SetMustChangePassword(false).
		Save(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	// Revoke every other session so a stolen token dies with the old password.
	sessions, err := s.db.UserSession.Query().
		Where(entusersession.UserID(userID), entusersession.RevokedAtIsNil()).
		All(ctx)
	if err == nil {
		now := time.Now()
		for _, sess := range sessions {
			s.rdb.Del(ctx, redisKeySession(sess.SessionID))
			s.db.UserSession.UpdateOne(sess).SetRevokedAt(now).Save(ctx)
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())
	role := string(authorize.UserRoleToRBACRole[string(u.Role)])

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	// Store in Redis
	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	// Issue tokens
	access, err := s.paseto.IssueAccess(u.ID, &sessionID, role)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID, role)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	// Persist the audit row (best-effort)
	expiresAt := time.Now().Add(refreshTTL)
	refreshHash := crypto.Hash(refresh)
	s.db.UserSession.Create().
		SetUserID(u.ID).
		SetSessionID(sessionID.String()).
		SetRefreshTokenHash(refreshHash).
		SetExpiresAt(expiresAt).
		Save(ctx)

	return &AuthTokens{
		AccessToken:        access,
		RefreshToken:       refresh,
		ExpiresIn:          int64(accessTTL.Seconds()),
		MustChangePassword: u.MustChangePassword,
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, u *repo.User) {
	attempts := u.FailedLoginAttempts + 1
	upd := s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(attempts)

	if attempts >= maxLoginAttempts {
		lockUntil := time.Now().Add(accountLockMins * time.Minute)
		upd = upd.SetLockedUntil(lockUntil)
		s.logger.Warn("account locked after repeated login failures",
			"user_id", u.ID, "attempts", attempts)
	}
	upd.Save(ctx)
}
