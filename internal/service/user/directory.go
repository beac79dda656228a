package user

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osanchez/ideahub-backend/internal/domain"
)

const maxSearchQueryLen = 100

// List returns every registered user ordered by username.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// Search returns users whose username contains the query,
// case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]domain.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("query", "required")
	}
	if utf8.RuneCountInString(query) > maxSearchQueryLen {
		return nil, domain.NewValidationError("query", "too long")
	}

	users, err := s.users.SearchByUsername(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("user.Search: %w", err)
	}
	return users, nil
}
