package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskstore/api/internal/domain/entities"
	"github.com/taskstore/api/internal/infrastructure/logger"
	"github.com/taskstore/api/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks handles listing tasks with optional filters. Unknown status
// values are ignored rather than rejected.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	filter := ports.TaskFilter{}

	switch c.QueryParam("status") {
	case "completed":
		completed := true
		filter.Completed = &completed
	case "pending":
		completed := false
		filter.Completed = &completed
	}

	if category := c.QueryParam("category"); category != "" {
		filter.Category = &category
	}

	if priority := c.QueryParam("priority"); priority != "" {
		filter.Priority = &priority
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("List tasks failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

// CreateTask handles task creation
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Title is required")
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrTitleRequired) {
			return echo.NewHTTPError(http.StatusBadRequest, "Title is required")
		}
		h.logger.Error("Create task failed", "error", err)
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

// GetTask handles fetching a single task by id
func (h *TaskHandler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Task not found")
		}
		h.logger.Error("Get task failed", "error", err, "task_id", c.Param("id"))
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// UpdateTask handles a partial update of a task
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrEmptyUpdate):
			return echo.NewHTTPError(http.StatusBadRequest, "No data provided")
		case errors.Is(err, entities.ErrTaskNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Task not found")
		}
		h.logger.Error("Update task failed", "error", err, "task_id", c.Param("id"))
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask handles deleting a single task by id
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	err := h.taskService.DeleteTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Task not found")
		}
		h.logger.Error("Delete task failed", "error", err, "task_id", c.Param("id"))
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}

// DeleteCompletedTasks handles the bulk delete of completed tasks. Removing
// nothing is a success with count zero.
func (h *TaskHandler) DeleteCompletedTasks(c echo.Context) error {
	count, err := h.taskService.DeleteCompletedTasks(c.Request().Context())
	if err != nil {
		h.logger.Error("Bulk delete failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, BulkDeleteResponse{
		Message: fmt.Sprintf("Deleted %d completed tasks", count),
		Count:   count,
	})
}

// GetStats handles the aggregate statistics endpoint
func (h *TaskHandler) GetStats(c echo.Context) error {
	stats, err := h.taskService.GetStats(c.Request().Context())
	if err != nil {
		h.logger.Error("Get stats failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type BulkDeleteResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}
