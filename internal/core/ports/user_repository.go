package ports

import (
	"context"

	"github.com/taskforge/task-manager/internal/core/domain"
)

// PageRequest carries pagination parameters for list queries.
// Page is 1-based; Limit is capped by the service layer.
type PageRequest struct {
	Page  int
	Limit int
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns a page of users and the total count.
	List(ctx context.Context, page PageRequest) ([]*domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
