package ports

import (
	"context"

	"github.com/taskforge/task-manager/internal/core/domain"
)

// TaskInput carries all data needed to create or update a task.
type TaskInput struct {
	Title       string
	Description string
	Done        bool
	UserID      string
}

// TaskPage is a page of tasks together with pagination metadata.
type TaskPage struct {
	Items      []*domain.Task
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	Create(ctx context.Context, p domain.Principal, input TaskInput) (*domain.Task, error)
	GetByID(ctx context.Context, p domain.Principal, id string) (*domain.Task, error)
	List(ctx context.Context, p domain.Principal, page PageRequest) (*TaskPage, error)
	ListByUser(ctx context.Context, p domain.Principal, userID string, page PageRequest) (*TaskPage, error)
	Update(ctx context.Context, p domain.Principal, id string, input TaskInput) (*domain.Task, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}
