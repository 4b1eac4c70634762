package service

import (
	"context"
	"strconv"

	"github.com/taskforge/task-manager/internal/core/domain"
	"github.com/taskforge/task-manager/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	created.ID = "u" + strconv.Itoa(r.nextID)
	r.nextID++
	r.users[created.ID] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, page ports.PageRequest) ([]*domain.User, int64, error) {
	var out []*domain.User
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, int64(len(r.users)), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubTaskRepo struct {
	tasks  map[string]*domain.Task // keyed by id
	nextID int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task), nextID: 1}
}

func cloneTask(t *domain.Task) *domain.Task {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.Title == task.Title {
			return nil, domain.ErrTaskExists
		}
	}
	created := cloneTask(task)
	created.ID = "t" + strconv.Itoa(r.nextID)
	r.nextID++
	r.tasks[created.ID] = cloneTask(created)
	return cloneTask(created), nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return cloneTask(t), nil
}

func (r *stubTaskRepo) FindByTitle(_ context.Context, title string) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.Title == title {
			return cloneTask(t), nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) List(_ context.Context, userID string, page ports.PageRequest) ([]*domain.Task, int64, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if userID == "" || t.UserID == userID {
			out = append(out, cloneTask(t))
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubTaskRepo) Update(_ context.Context, task *domain.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	r.tasks[task.ID] = cloneTask(task)
	return nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	var removed int64
	for id, t := range r.tasks {
		if t.UserID == userID {
			delete(r.tasks, id)
			removed++
		}
	}
	return removed, nil
}

// stubThrottle counts failures in memory, mirroring the Redis throttle.
type stubThrottle struct {
	failures    map[string]int
	maxAttempts int
}

func newStubThrottle(maxAttempts int) *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), maxAttempts: maxAttempts}
}

func (t *stubThrottle) Fail(_ context.Context, email string) (bool, error) {
	t.failures[email]++
	return t.failures[email] == t.maxAttempts, nil
}

func (t *stubThrottle) IsLocked(_ context.Context, email string) (bool, error) {
	return t.failures[email] >= t.maxAttempts, nil
}

func (t *stubThrottle) Reset(_ context.Context, email string) error {
	delete(t.failures, email)
	return nil
}
