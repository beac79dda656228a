package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/osanchez/ideahub-backend/internal/domain"
	"github.com/osanchez/ideahub-backend/pkg/ctxutil"
)

// ChangePassword replaces the authenticated user's password after checking
// the old one, then revokes every open session so stolen refresh tokens die
// with the old password.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	cred, err := s.users.GetCredential(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("auth.ChangePassword: %w", domain.ErrUnauthorized)
		}
		return fmt.Errorf("auth.ChangePassword get credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(input.OldPassword)); err != nil {
		return fmt.Errorf("auth.ChangePassword wrong old password: %w", domain.ErrUnauthorized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.SetCredential(txCtx, userID, string(hash)); err != nil {
			return fmt.Errorf("store credential: %w", err)
		}
		if err := s.tokens.RevokeAllByUser(txCtx, userID); err != nil {
			return fmt.Errorf("revoke sessions: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("auth.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("user_id", userID.String()))
	return nil
}

// ResetPassword acknowledges a password reset request. Delivery of the
// reset email is out of scope, so the operation only reports whether an
// account with that address exists.
//
// TODO: send an actual reset email once an outbound mail adapter lands.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) (bool, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return false, err
	}

	_, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("auth.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset requested")
	return true, nil
}
