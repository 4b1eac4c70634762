package handler

import "time"

// --- Request types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=20"`
	Email    string `json:"email"    validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	OldPassword     string `json:"old_password"     validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=20"`
	Email    string `json:"email"    validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin moderator"`
}

type updateUserRequest struct {
	Name  string `json:"name"  validate:"required,min=3,max=20"`
	Email string `json:"email" validate:"required,email,max=50"`
}

type taskRequest struct {
	Title       string `json:"title"       validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"required"`
	Done        bool   `json:"done"`
	UserID      string `json:"user_id"     validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Done        bool      `json:"done"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type userListResponse struct {
	Items      []userResponse     `json:"items"`
	Pagination paginationResponse `json:"pagination"`
}

type taskListResponse struct {
	Items      []taskResponse     `json:"items"`
	Pagination paginationResponse `json:"pagination"`
}
