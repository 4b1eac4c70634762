package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-manager/internal/core/domain"
	"github.com/taskforge/task-manager/internal/core/ports"
)

// TaskService implements task CRUD with ownership enforcement.
type TaskService struct {
	tasks ports.TaskRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, log: log}
}

// Create persists a task linked to an existing user. Non-admins may only
// create tasks for themselves. Titles are unique across the system.
func (s *TaskService) Create(ctx context.Context, p domain.Principal, input ports.TaskInput) (*domain.Task, error) {
	if err := requireOwnership(p, input.UserID); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	if _, err := s.tasks.FindByTitle(ctx, input.Title); err == nil {
		s.log.Warn().Str("title", input.Title).Msg("task creation rejected: title taken")
		return nil, domain.ErrTaskExists
	} else if !errors.Is(err, domain.ErrTaskNotFound) {
		return nil, err
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Done:        input.Done,
		UserID:      input.UserID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", created.ID).Str("user_id", created.UserID).Msg("task created")
	return created, nil
}

// GetByID returns a task. Ownership is checked against the persisted task,
// so the existence probe happens before the authorization decision and an
// absent id is always a not-found, never a forbidden.
func (s *TaskService) GetByID(ctx context.Context, p domain.Principal, id string) (*domain.Task, error) {
	if p.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Owns(task.UserID) {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

// List returns a page of all tasks. Admin only.
func (s *TaskService) List(ctx context.Context, p domain.Principal, page ports.PageRequest) (*ports.TaskPage, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	return s.listPage(ctx, "", page)
}

// ListByUser returns a page of tasks owned by userID. The user is resolved
// first so an unknown id surfaces as UserNotFound rather than an empty page.
func (s *TaskService) ListByUser(ctx context.Context, p domain.Principal, userID string, page ports.PageRequest) (*ports.TaskPage, error) {
	if err := requireOwnership(p, userID); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.listPage(ctx, userID, page)
}

// Update overwrites title/description/done/owner. The ownership check runs
// against the task's existing owner, not the requested new owner, so a user
// cannot grab someone else's task by naming themselves in the payload.
func (s *TaskService) Update(ctx context.Context, p domain.Principal, id string, input ports.TaskInput) (*domain.Task, error) {
	if p.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Owns(task.UserID) {
		return nil, domain.ErrForbidden
	}
	// Reassigning the task to another user takes the same privilege as
	// acting on that user's behalf.
	if !p.Owns(input.UserID) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Done = input.Done
	task.UserID = input.UserID

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", task.ID).Msg("task updated")
	return task, nil
}

// Delete removes a task. Admin or owner.
func (s *TaskService) Delete(ctx context.Context, p domain.Principal, id string) error {
	if p.UserID == "" {
		return domain.ErrUnauthenticated
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.Owns(task.UserID) {
		return domain.ErrForbidden
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("task_id", id).Msg("task deleted")
	return nil
}

func (s *TaskService) listPage(ctx context.Context, userID string, page ports.PageRequest) (*ports.TaskPage, error) {
	page = clampPage(page)
	tasks, total, err := s.tasks.List(ctx, userID, page)
	if err != nil {
		return nil, err
	}

	return &ports.TaskPage{
		Items:      tasks,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages(total, page.Limit),
	}, nil
}
