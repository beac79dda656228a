package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/osanchez/ideahub-backend/internal/auth"
	"github.com/osanchez/ideahub-backend/internal/domain"
)

// Refresh performs token rotation and returns a new access/refresh pair.
// An unknown, revoked or expired token returns ErrUnauthorized. Presenting
// a revoked token counts as reuse and revokes the user's whole session set.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh with unknown token")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsRevoked() {
		s.log.WarnContext(ctx, "refresh token reuse attempted",
			slog.String("user_id", token.UserID.String()))
		if err := s.tokens.RevokeAllByUser(ctx, token.UserID); err != nil {
			return nil, fmt.Errorf("auth.Refresh revoke on reuse: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}

	if token.IsExpired(time.Now().UTC()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}

	if err := s.tokens.Revoke(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}
