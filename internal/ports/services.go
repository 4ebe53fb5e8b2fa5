package ports

import (
	"context"

	"github.com/taskstore/api/internal/domain/entities"
)

// TaskService interface for task management operations
type TaskService interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (*entities.Task, error)
	GetTask(ctx context.Context, id string) (*entities.Task, error)
	UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*entities.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, filter TaskFilter) ([]*entities.Task, error)
	DeleteCompletedTasks(ctx context.Context) (int64, error)
	GetStats(ctx context.Context) (*entities.TaskStats, error)
}

// CreateTaskRequest carries the create payload. Omitted optional fields
// take their documented defaults.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

// UpdateTaskRequest carries a partial update. A nil field was absent from
// the request body and keeps the stored value; a non-nil field overwrites
// it, whatever the value.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
}

// IsEmpty reports whether the request sets no fields at all.
func (r UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Completed == nil &&
		r.Priority == nil && r.Category == nil
}
