package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/taskstore/api/internal/domain/entities"
	"github.com/taskstore/api/internal/ports"
)

// TaskRepository implements the task repository interface on sqlite
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task
func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, completed, priority, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.Completed,
		task.Priority,
		task.Category,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	query := `
		SELECT id, title, description, completed, priority, category, created_at, updated_at
		FROM tasks WHERE id = ?
	`

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &task, nil
}

// Update overwrites a task's mutable fields. A concurrent delete of the
// same id surfaces as not-found via the affected row count.
func (r *TaskRepository) Update(ctx context.Context, task *entities.Task) error {
	query := `
		UPDATE tasks
		SET title = ?, description = ?, completed = ?, priority = ?, category = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		task.Completed,
		task.Priority,
		task.Category,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task in a single conditional statement
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

// List retrieves tasks matching the filter, newest first
func (r *TaskRepository) List(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, error) {
	var conditions []string
	var args []interface{}

	if filter.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, *filter.Completed)
	}

	if filter.Category != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, *filter.Category)
	}

	if filter.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, *filter.Priority)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, completed, priority, category, created_at, updated_at
		FROM tasks %s
		ORDER BY created_at DESC
	`, whereClause)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*entities.Task{}
	for rows.Next() {
		var task entities.Task
		if err := rows.StructScan(&task); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return tasks, nil
}

// DeleteCompleted removes every completed task and returns the count
func (r *TaskRepository) DeleteCompleted(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE completed = ?`, true)
	if err != nil {
		return 0, fmt.Errorf("failed to delete completed tasks: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}

// Stats computes aggregate counts over the full task set. Pending is
// derived arithmetically from total and completed.
func (r *TaskRepository) Stats(ctx context.Context) (*entities.TaskStats, error) {
	stats := &entities.TaskStats{
		ByPriority: []entities.PriorityCount{},
		ByCategory: []entities.CategoryCount{},
	}

	if err := r.db.GetContext(ctx, &stats.Total, `SELECT COUNT(*) FROM tasks`); err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	if err := r.db.GetContext(ctx, &stats.Completed, `SELECT COUNT(*) FROM tasks WHERE completed = ?`, true); err != nil {
		return nil, fmt.Errorf("failed to count completed tasks: %w", err)
	}

	stats.Pending = stats.Total - stats.Completed

	err := r.db.SelectContext(ctx, &stats.ByPriority, `
		SELECT priority, COUNT(*) AS count
		FROM tasks
		GROUP BY priority
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to group tasks by priority: %w", err)
	}

	err = r.db.SelectContext(ctx, &stats.ByCategory, `
		SELECT category, COUNT(*) AS count
		FROM tasks
		GROUP BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to group tasks by category: %w", err)
	}

	return stats, nil
}
