// Package service implements the admin gate: password login issuing signed
// session tokens, token validation against the revocation list, and logout.
package service

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	"regdesk/internal/admin/store/revocation"
	"regdesk/internal/jwttoken"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/requestcontext"
)

// Session is an issued admin session token.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Service gates admin access behind the shared secret. Tokens are short
// lived and individually revocable, so learning the secret once does not
// yield a permanent credential.
type Service struct {
	secret  string
	tokens  *jwttoken.Service
	revoked revocation.List
	ttl     time.Duration
	logger  *slog.Logger
}

// New constructs the admin gate. The secret must already be cleaned by
// config.CleanSecret.
func New(secret string, tokens *jwttoken.Service, revoked revocation.List, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		secret:  secret,
		tokens:  tokens,
		revoked: revoked,
		ttl:     ttl,
		logger:  logger,
	}
}

// Login checks the password against the configured secret and issues a
// session token. The comparison is constant time.
func (s *Service) Login(ctx context.Context, password string) (Session, error) {
	password = strings.TrimSpace(password)
	if s.secret == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.secret)) != 1 {
		s.logger.WarnContext(ctx, "admin login rejected",
			"request_id", requestcontext.RequestID(ctx),
		)
		return Session{}, dErrors.New(dErrors.CodeUnauthorized, "incorrect password")
	}

	token, jti, expiresAt, err := s.tokens.Generate(requestcontext.Now(ctx), s.ttl)
	if err != nil {
		return Session{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue session token")
	}

	s.logger.InfoContext(ctx, "admin session issued",
		"jti", jti,
		"expires_at", expiresAt,
		"request_id", requestcontext.RequestID(ctx),
	)
	return Session{Token: token, ExpiresAt: expiresAt}, nil
}

// ValidateToken verifies the token's signature and expiry, then checks the
// revocation list. It returns the token's jti for later logout.
func (s *Service) ValidateToken(ctx context.Context, token string) (string, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return "", err
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to check token revocation")
	}
	if revoked {
		return "", dErrors.New(dErrors.CodeUnauthorized, "token has been revoked")
	}
	return claims.ID, nil
}

// Logout revokes the session's jti. The revocation entry carries the full
// session TTL, an upper bound on the token's remaining lifetime.
func (s *Service) Logout(ctx context.Context, jti string) error {
	if jti == "" {
		return dErrors.New(dErrors.CodeUnauthorized, "no active session")
	}
	if err := s.revoked.Revoke(ctx, jti, s.ttl); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke session token")
	}

	s.logger.InfoContext(ctx, "admin session revoked",
		"jti", jti,
		"request_id", requestcontext.RequestID(ctx),
	)
	return nil
}
