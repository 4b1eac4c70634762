package ports

import (
	"context"

	"github.com/taskforge/task-manager/internal/core/domain"
)

// RegisterInput carries the self-service registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ChangePasswordInput carries a password rotation request.
type ChangePasswordInput struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

// AuthService implements registration, login and password rotation.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ChangePassword(ctx context.Context, p domain.Principal, input ChangePasswordInput) error
}

// LoginThrottle tracks failed login attempts per account and reports when
// an account should be treated as temporarily locked.
type LoginThrottle interface {
	// Fail records a failed attempt and reports whether the account just
	// crossed the lockout threshold.
	Fail(ctx context.Context, email string) (locked bool, err error)
	// IsLocked reports whether the account is currently locked out.
	IsLocked(ctx context.Context, email string) (bool, error)
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, email string) error
}
