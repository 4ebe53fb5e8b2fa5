package ports

import (
	"context"

	"github.com/taskstore/api/internal/domain/entities"
)

// TaskRepository defines the interface for task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id string) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter TaskFilter) ([]*entities.Task, error)
	DeleteCompleted(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*entities.TaskStats, error)
}

// UserRepository defines the interface for user data operations. The users
// table has no HTTP surface; this exists for the schema and tooling.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
}

// TaskFilter narrows the list operation. Nil fields are not applied.
// Completed is derived from the status query parameter; unknown status
// values leave it nil.
type TaskFilter struct {
	Completed *bool
	Category  *string
	Priority  *string
}
