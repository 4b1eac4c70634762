package ports

import (
	"context"

	"github.com/taskforge/task-manager/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	FindByTitle(ctx context.Context, title string) (*domain.Task, error)
	// List returns a page of tasks and the total count. When userID is
	// non-empty the query is scoped to that owner.
	List(ctx context.Context, userID string, page PageRequest) ([]*domain.Task, int64, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	// DeleteByUser removes every task owned by userID and returns the
	// number of tasks removed.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
