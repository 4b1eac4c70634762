package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-manager/internal/core/domain"
	"github.com/taskforge/task-manager/internal/core/ports"
)

func seedUser(repo *stubUserRepo, name, email, role string) *domain.User {
	u, _ := repo.Create(context.Background(), &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Role:         role,
		Enabled:      true,
		CreatedAt:    time.Now().UTC(),
	})
	return u
}

func asPrincipal(u *domain.User) domain.Principal {
	return domain.Principal{UserID: u.ID, Email: u.Email, Role: u.Role}
}

func TestUserService_Create_AdminOnly(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubTaskRepo(), zerolog.Nop())

	admin := seedUser(users, "root", "root@x.com", domain.RoleAdmin)
	plain := seedUser(users, "joe", "joe@x.com", domain.RoleUser)

	if _, err := svc.Create(context.Background(), asPrincipal(plain), ports.CreateUserInput{
		Name: "eve", Email: "eve@x.com", Password: "pw12345678",
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}

	created, err := svc.Create(context.Background(), asPrincipal(admin), ports.CreateUserInput{
		Name: "eve", Email: "eve@x.com", Password: "pw12345678", Role: domain.RoleModerator,
	})
	if err != nil {
		t.Fatalf("admin create failed: %v", err)
	}
	if created.Role != domain.RoleModerator {
		t.Fatalf("expected moderator role, got %q", created.Role)
	}

	if _, err := svc.Create(context.Background(), asPrincipal(admin), ports.CreateUserInput{
		Name: "mallory", Email: "mallory@x.com", Password: "pw12345678", Role: "superuser",
	}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubTaskRepo(), zerolog.Nop())

	admin := seedUser(users, "root", "root@x.com", domain.RoleAdmin)
	seedUser(users, "joe", "joe@x.com", domain.RoleUser)

	if _, err := svc.Create(context.Background(), asPrincipal(admin), ports.CreateUserInput{
		Name: "imposter", Email: "joe@x.com", Password: "pw12345678",
	}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_GetByID_Ownership(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubTaskRepo(), zerolog.Nop())

	admin := seedUser(users, "root", "root@x.com", domain.RoleAdmin)
	alice := seedUser(users, "alice", "alice@x.com", domain.RoleUser)
	bob := seedUser(users, "bob", "bob@x.com", domain.RoleUser)

	// Self-read allowed.
	if _, err := svc.GetByID(context.Background(), asPrincipal(alice), alice.ID); err != nil {
		t.Fatalf("self read failed: %v", err)
	}
	// Reading another user is forbidden for non-admins.
	if _, err := svc.GetByID(context.Background(), asPrincipal(alice), bob.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	// Admin may read anyone.
	if _, err := svc.GetByID(context.Background(), asPrincipal(admin), bob.ID); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
	// Unknown id for admin is a not-found.
	if _, err := svc.GetByID(context.Background(), asPrincipal(admin), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_GetByEmail_Ownership(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubTaskRepo(), zerolog.Nop())

	alice := seedUser(users, "alice", "alice@x.com", domain.RoleUser)
	seedUser(users, "bob", "bob@x.com", domain.RoleUser)

	if _, err := svc.GetByEmail(context.Background(), asPrincipal(alice), "alice@x.com"); err != nil {
		t.Fatalf("self read failed: %v", err)
	}
	if _, err := svc.GetByEmail(context.Background(), asPrincipal(alice), "bob@x.com"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_List_AdminOnly(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubTaskRepo(), zerolog.Nop())

	admin := seedUser(users, "root", "root@x.com", domain.RoleAdmin)
	alice := seedUser(users, "alice", "alice@x.com", domain.RoleUser)

	if _, err := svc.List(context.Background(), asPrincipal(alice), ports.PageRequest{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	page, err := svc.List(context.Background(), asPrincipal(admin), ports.PageRequest{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("expected total 2, got %d", page.Total)
	}
	if page.Limit != defaultPageLimit || page.Page != 1 {
		t.Fatalf("expected defaults applied, got page=%d limit=%d", page.Page, page.Limit)
	}
}

func TestUserService_Update(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubTaskRepo(), zerolog.Nop())

	alice := seedUser(users, "alice", "alice@x.com", domain.RoleUser)

	updated, err := svc.Update(context.Background(), asPrincipal(alice), alice.ID, ports.UpdateUserInput{
		Name: "alice2", Email: "alice2@x.com",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "alice2" || updated.Email != "alice2@x.com" {
		t.Fatalf("unexpected user after update: %+v", updated)
	}

	admin := seedUser(users, "root", "root@x.com", domain.RoleAdmin)
	if _, err := svc.Update(context.Background(), asPrincipal(admin), "missing", ports.UpdateUserInput{Name: "x", Email: "x@x.com"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_RemovesOwnedTasks(t *testing.T) {
	users := newStubUserRepo()
	tasks := newStubTaskRepo()
	svc := NewUserService(users, tasks, zerolog.Nop())

	alice := seedUser(users, "alice", "alice@x.com", domain.RoleUser)
	_, _ = tasks.Create(context.Background(), &domain.Task{Title: "one", UserID: alice.ID})
	_, _ = tasks.Create(context.Background(), &domain.Task{Title: "two", UserID: alice.ID})

	if err := svc.Delete(context.Background(), asPrincipal(alice), alice.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := users.FindByID(context.Background(), alice.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
	if remaining, _, _ := tasks.List(context.Background(), alice.ID, ports.PageRequest{}); len(remaining) != 0 {
		t.Fatalf("expected owned tasks removed, %d left", len(remaining))
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubTaskRepo(), zerolog.Nop())

	admin := seedUser(users, "root", "root@x.com", domain.RoleAdmin)
	if err := svc.Delete(context.Background(), asPrincipal(admin), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
