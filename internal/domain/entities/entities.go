package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("title is required")
	ErrEmptyUpdate   = errors.New("no data provided")
)

// Default values applied when a create request omits optional fields
const (
	DefaultPriority = "medium"
	DefaultCategory = "general"
)

// Task represents a task record. Priority and category are free-form tags;
// any string value is accepted and stored as-is.
type Task struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	Priority    string    `json:"priority" db:"priority"`
	Category    string    `json:"category" db:"category"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// NewTask builds a task with a server-generated id, defaults for empty
// optional fields and both timestamps set to now.
func NewTask(title, description, priority, category string) *Task {
	if priority == "" {
		priority = DefaultPriority
	}
	if category == "" {
		category = DefaultCategory
	}

	now := time.Now().UTC()
	return &Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Completed:   false,
		Priority:    priority,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// User represents a user record. The users table is created at startup but
// no HTTP operations are exposed for it.
type User struct {
	ID        string    `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewUser builds a user with a server-generated id.
func NewUser(username, email string) *User {
	return &User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
}

// PriorityCount is one bucket of the by-priority aggregate. Buckets reflect
// whatever priority strings exist in storage.
type PriorityCount struct {
	Priority string `json:"priority" db:"priority"`
	Count    int    `json:"count" db:"count"`
}

// CategoryCount is one bucket of the by-category aggregate.
type CategoryCount struct {
	Category string `json:"category" db:"category"`
	Count    int    `json:"count" db:"count"`
}

// TaskStats holds aggregate counts over the full task set. Pending is
// derived as total minus completed.
type TaskStats struct {
	Total      int             `json:"total"`
	Completed  int             `json:"completed"`
	Pending    int             `json:"pending"`
	ByPriority []PriorityCount `json:"by_priority"`
	ByCategory []CategoryCount `json:"by_category"`
}
