package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskforge/task-manager/internal/core/domain"
	"github.com/taskforge/task-manager/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// UserService implements account CRUD with explicit principal checks.
type UserService struct {
	users ports.UserRepository
	tasks ports.TaskRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, tasks ports.TaskRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, tasks: tasks, log: log}
}

// Create provisions an account with an explicit role. Admin only.
func (s *UserService) Create(ctx context.Context, p domain.Principal, input ports.CreateUserInput) (*domain.User, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Enabled:      true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

// GetByID returns a user. Admins may read anyone; others only themselves.
func (s *UserService) GetByID(ctx context.Context, p domain.Principal, id string) (*domain.User, error) {
	if err := requireOwnership(p, id); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

// GetByEmail returns a user matched by email, under the same ownership rule.
func (s *UserService) GetByEmail(ctx context.Context, p domain.Principal, email string) (*domain.User, error) {
	if !p.IsAdmin() && p.Email != email {
		return nil, domain.ErrForbidden
	}
	return s.users.FindByEmail(ctx, email)
}

// List returns a page of all users. Admin only.
func (s *UserService) List(ctx context.Context, p domain.Principal, page ports.PageRequest) (*ports.UserPage, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	page = clampPage(page)
	users, total, err := s.users.List(ctx, page)
	if err != nil {
		return nil, err
	}

	return &ports.UserPage{
		Items:      users,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages(total, page.Limit),
	}, nil
}

// Update overwrites a user's name and email. Admin or self.
func (s *UserService) Update(ctx context.Context, p domain.Principal, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if err := requireOwnership(p, id); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Email = input.Email

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}

// Delete removes a user and every task they own. Admin or self.
func (s *UserService) Delete(ctx context.Context, p domain.Principal, id string) error {
	if err := requireOwnership(p, id); err != nil {
		return err
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	removed, err := s.tasks.DeleteByUser(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Int64("tasks_removed", removed).Msg("user deleted")
	return nil
}

// requireAdmin gates admin-only operations.
func requireAdmin(p domain.Principal) error {
	if p.UserID == "" {
		return domain.ErrUnauthenticated
	}
	if !p.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// requireOwnership gates operations on a user record: admin or the record's
// own subject.
func requireOwnership(p domain.Principal, userID string) error {
	if p.UserID == "" {
		return domain.ErrUnauthenticated
	}
	if !p.Owns(userID) {
		return domain.ErrForbidden
	}
	return nil
}

func clampPage(page ports.PageRequest) ports.PageRequest {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit <= 0 {
		page.Limit = defaultPageLimit
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}
	return page
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
