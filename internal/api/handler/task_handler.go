package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-manager/internal/api/metrics"
	"github.com/taskforge/task-manager/internal/core/ports"
)

// TaskHandler handles HTTP requests for task CRUD.
type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Create handles POST /api/tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      taskRequest  true  "Task details"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.Create(c.Request().Context(), p, ports.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Done:        req.Done,
		UserID:      req.UserID,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.Inc()
	return Success(c, "Task created successfully", toTaskResponse(task))
}

// Get handles GET /api/tasks/:id.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetByID(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return err
	}

	return Success(c, "Task retrieved", toTaskResponse(task))
}

// List handles GET /api/tasks.
//
// @Summary      List all tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  Envelope
// @Failure      403    {object}  Envelope
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	page, err := h.taskService.List(c.Request().Context(), p, pageFromQuery(c))
	if err != nil {
		return err
	}

	return Success(c, "Tasks retrieved", toTaskListResponse(page))
}

// ListByUser handles GET /api/tasks/user/:userId.
//
// @Summary      List the tasks owned by a user
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "Owner user id"
// @Param        page    query     int     false "Page number (1-based)"
// @Param        limit   query     int     false "Page size (max 100)"
// @Success      200     {object}  Envelope
// @Failure      403     {object}  Envelope
// @Failure      404     {object}  Envelope
// @Router       /api/tasks/user/{userId} [get]
func (h *TaskHandler) ListByUser(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	page, err := h.taskService.ListByUser(c.Request().Context(), p, c.Param("userId"), pageFromQuery(c))
	if err != nil {
		return err
	}

	return Success(c, "Tasks retrieved", toTaskListResponse(page))
}

// Update handles PATCH /api/tasks/:id.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Task id"
// @Param        body  body      taskRequest  true  "New task state"
// @Success      200   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/tasks/{id} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.Update(c.Request().Context(), p, c.Param("id"), ports.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Done:        req.Done,
		UserID:      req.UserID,
	})
	if err != nil {
		return err
	}

	return Success(c, "Task updated successfully", toTaskResponse(task))
}

// Delete handles DELETE /api/tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}

	return Success(c, "Task deleted successfully", nil)
}
