package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-manager/internal/api/middleware"
	"github.com/taskforge/task-manager/internal/core/domain"
	"github.com/taskforge/task-manager/internal/core/ports"
)

type stubTaskService struct {
	createFn     func(ctx context.Context, p domain.Principal, input ports.TaskInput) (*domain.Task, error)
	getByIDFn    func(ctx context.Context, p domain.Principal, id string) (*domain.Task, error)
	listFn       func(ctx context.Context, p domain.Principal, page ports.PageRequest) (*ports.TaskPage, error)
	listByUserFn func(ctx context.Context, p domain.Principal, userID string, page ports.PageRequest) (*ports.TaskPage, error)
	updateFn     func(ctx context.Context, p domain.Principal, id string, input ports.TaskInput) (*domain.Task, error)
	deleteFn     func(ctx context.Context, p domain.Principal, id string) error
}

func (s *stubTaskService) Create(ctx context.Context, p domain.Principal, input ports.TaskInput) (*domain.Task, error) {
	return s.createFn(ctx, p, input)
}

func (s *stubTaskService) GetByID(ctx context.Context, p domain.Principal, id string) (*domain.Task, error) {
	return s.getByIDFn(ctx, p, id)
}

func (s *stubTaskService) List(ctx context.Context, p domain.Principal, page ports.PageRequest) (*ports.TaskPage, error) {
	return s.listFn(ctx, p, page)
}

func (s *stubTaskService) ListByUser(ctx context.Context, p domain.Principal, userID string, page ports.PageRequest) (*ports.TaskPage, error) {
	return s.listByUserFn(ctx, p, userID, page)
}

func (s *stubTaskService) Update(ctx context.Context, p domain.Principal, id string, input ports.TaskInput) (*domain.Task, error) {
	return s.updateFn(ctx, p, id, input)
}

func (s *stubTaskService) Delete(ctx context.Context, p domain.Principal, id string) error {
	return s.deleteFn(ctx, p, id)
}

func setClaims(c echo.Context, userID, email, role string) {
	c.Set(middleware.KeyUserID, userID)
	c.Set(middleware.KeyEmail, email)
	c.Set(middleware.KeyRole, role)
}

func TestTaskHandler_Create_Success(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(_ context.Context, p domain.Principal, input ports.TaskInput) (*domain.Task, error) {
			if p.UserID != "u1" {
				t.Fatalf("unexpected principal: %+v", p)
			}
			return &domain.Task{ID: "t1", Title: input.Title, Description: input.Description, UserID: input.UserID}, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/tasks",
		`{"title":"Buy milk","description":"2 liters","user_id":"u1"}`)
	setClaims(c, "u1", "alice@x.com", domain.RoleUser)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := env.Data.(map[string]any)
	if data["id"] != "t1" || data["title"] != "Buy milk" {
		t.Fatalf("unexpected task payload: %+v", data)
	}
}

func TestTaskHandler_Create_RequiresAuth(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/tasks",
		`{"title":"Buy milk","description":"2 liters","user_id":"u1"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestTaskHandler_Create_MissingTitle(t *testing.T) {
	h := NewTaskHandler(&stubTaskService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/tasks",
		`{"description":"no title","user_id":"u1"}`)
	setClaims(c, "u1", "alice@x.com", domain.RoleUser)

	err := h.Create(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["title"]; !ok {
		t.Fatalf("expected failure for title, got %+v", ve.Fields)
	}
}

func TestTaskHandler_List_PassesPageQuery(t *testing.T) {
	stub := &stubTaskService{
		listFn: func(_ context.Context, p domain.Principal, page ports.PageRequest) (*ports.TaskPage, error) {
			if page.Page != 3 || page.Limit != 10 {
				t.Fatalf("unexpected page request: %+v", page)
			}
			return &ports.TaskPage{Items: nil, Total: 0, Page: 3, Limit: 10, TotalPages: 0}, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/tasks?page=3&limit=10", "")
	setClaims(c, "admin1", "admin@x.com", domain.RoleAdmin)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := env.Data.(map[string]any)
	pagination := data["pagination"].(map[string]any)
	if pagination["page"] != float64(3) || pagination["limit"] != float64(10) {
		t.Fatalf("unexpected pagination: %+v", pagination)
	}
}

func TestTaskHandler_Delete_PropagatesNotFound(t *testing.T) {
	stub := &stubTaskService{
		deleteFn: func(_ context.Context, p domain.Principal, id string) error {
			return domain.ErrTaskNotFound
		},
	}
	h := NewTaskHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/tasks/t404", "")
	setClaims(c, "u1", "alice@x.com", domain.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("t404")

	if err := h.Delete(c); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound to propagate, got %v", err)
	}
}
