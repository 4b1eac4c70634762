package handler

import (
	"github.com/taskforge/task-manager/internal/core/domain"
	"github.com/taskforge/task-manager/internal/core/ports"
)

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Enabled:   u.Enabled,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt.UTC(),
	}
}

func toUserListResponse(page *ports.UserPage) userListResponse {
	items := make([]userResponse, len(page.Items))
	for i, u := range page.Items {
		items[i] = toUserResponse(u)
	}
	return userListResponse{
		Items: items,
		Pagination: paginationResponse{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	}
}

func toTaskListResponse(page *ports.TaskPage) taskListResponse {
	items := make([]taskResponse, len(page.Items))
	for i, t := range page.Items {
		items[i] = toTaskResponse(t)
	}
	return taskListResponse{
		Items: items,
		Pagination: paginationResponse{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	}
}
