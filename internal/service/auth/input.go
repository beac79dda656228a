package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/osanchez/ideahub-backend/internal/domain"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit
	minUsernameLen = 3
	maxUsernameLen = 30
)

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if n := utf8.RuneCountInString(i.Username); n < minUsernameLen || n > maxUsernameLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 3-30 characters"})
	}

	errs = appendPasswordErrors(errs, "password", i.Password)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the password login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for the token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for the change password operation.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// Validate validates the change password input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.OldPassword == "" {
		errs = append(errs, domain.FieldError{Field: "old_password", Message: "required"})
	}
	errs = appendPasswordErrors(errs, "new_password", i.NewPassword)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResetPasswordInput holds parameters for the reset password operation.
type ResetPasswordInput struct {
	Email string
}

// Validate validates the reset password input.
func (i ResetPasswordInput) Validate() error {
	if i.Email == "" {
		return domain.NewValidationError("email", "required")
	}
	return nil
}

func appendPasswordErrors(errs []domain.FieldError, field, password string) []domain.FieldError {
	switch n := len(password); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	case n < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: field, Message: "must be at least 8 characters"})
	case n > maxPasswordLen:
		errs = append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
