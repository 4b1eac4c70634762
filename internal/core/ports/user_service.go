package ports

import (
	"context"

	"github.com/taskforge/task-manager/internal/core/domain"
)

// CreateUserInput carries all data needed to create a user account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput overwrites a user's name and email.
type UpdateUserInput struct {
	Name  string
	Email string
}

// UserPage is a page of users together with pagination metadata.
type UserPage struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines use-case operations for user accounts. Every call
// takes the caller's principal; authorization is enforced before any
// persistence access.
type UserService interface {
	Create(ctx context.Context, p domain.Principal, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, p domain.Principal, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, p domain.Principal, email string) (*domain.User, error)
	List(ctx context.Context, p domain.Principal, page PageRequest) (*UserPage, error)
	Update(ctx context.Context, p domain.Principal, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}
