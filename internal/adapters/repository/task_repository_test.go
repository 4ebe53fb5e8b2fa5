package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskstore/api/internal/domain/entities"
	"github.com/taskstore/api/internal/infrastructure/config"
	"github.com/taskstore/api/internal/infrastructure/database"
	"github.com/taskstore/api/internal/ports"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(config.DatabaseConfig{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)

	require.NoError(t, db.EnsureSchema(context.Background()))

	t.Cleanup(func() { db.Close() })
	return db
}

func newTestRepo(t *testing.T) *TaskRepository {
	t.Helper()
	return NewTaskRepository(newTestDB(t).DB)
}

func mustCreate(t *testing.T, repo *TaskRepository, task *entities.Task) *entities.Task {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), task))
	return task
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestTaskRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	task := entities.NewTask("Buy milk", "2 liters", "", "")
	mustCreate(t, repo, task)

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)

	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "2 liters", got.Description)
	assert.False(t, got.Completed)
	assert.Equal(t, entities.DefaultPriority, got.Priority)
	assert.Equal(t, entities.DefaultCategory, got.Category)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
}

func TestTaskRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestTaskRepository_Update(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	task := mustCreate(t, repo, entities.NewTask("Original", "", "", ""))

	task.Title = "Renamed"
	task.Completed = true
	task.UpdatedAt = task.UpdatedAt.Add(time.Second)
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.True(t, got.Completed)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestTaskRepository_Update_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	task := entities.NewTask("Ghost", "", "", "")
	err := repo.Update(context.Background(), task)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestTaskRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	task := mustCreate(t, repo, entities.NewTask("Doomed", "", "", ""))

	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)

	err = repo.Delete(ctx, task.ID)
	assert.ErrorIs(t, err, entities.ErrTaskNotFound)
}

func TestTaskRepository_List_FiltersAndOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)

	oldest := entities.NewTask("oldest", "", "low", "home")
	oldest.CreatedAt = base
	oldest.UpdatedAt = base
	mustCreate(t, repo, oldest)

	middle := entities.NewTask("middle", "", "high", "work")
	middle.Completed = true
	middle.CreatedAt = base.Add(time.Minute)
	middle.UpdatedAt = middle.CreatedAt
	mustCreate(t, repo, middle)

	newest := entities.NewTask("newest", "", "high", "home")
	newest.CreatedAt = base.Add(2 * time.Minute)
	newest.UpdatedAt = newest.CreatedAt
	mustCreate(t, repo, newest)

	// No filter: everything, newest first
	all, err := repo.List(ctx, ports.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newest", all[0].Title)
	assert.Equal(t, "middle", all[1].Title)
	assert.Equal(t, "oldest", all[2].Title)

	// Completed filter
	completed, err := repo.List(ctx, ports.TaskFilter{Completed: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "middle", completed[0].Title)

	pending, err := repo.List(ctx, ports.TaskFilter{Completed: boolPtr(false)})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	// Conjunctive filters
	highHome, err := repo.List(ctx, ports.TaskFilter{Priority: strPtr("high"), Category: strPtr("home")})
	require.NoError(t, err)
	require.Len(t, highHome, 1)
	assert.Equal(t, "newest", highHome[0].Title)

	// No match is an empty list, not an error
	none, err := repo.List(ctx, ports.TaskFilter{Category: strPtr("nope")})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTaskRepository_DeleteCompleted(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	done1 := entities.NewTask("done1", "", "", "")
	done1.Completed = true
	mustCreate(t, repo, done1)

	done2 := entities.NewTask("done2", "", "", "")
	done2.Completed = true
	mustCreate(t, repo, done2)

	mustCreate(t, repo, entities.NewTask("open", "", "", ""))

	deleted, err := repo.DeleteCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := repo.List(ctx, ports.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "open", remaining[0].Title)

	// Second run removes nothing
	deleted, err = repo.DeleteCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestTaskRepository_Stats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Empty store
	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.ByPriority)
	assert.Empty(t, stats.ByCategory)

	for _, tc := range []struct {
		title     string
		priority  string
		category  string
		completed bool
	}{
		{"a", "high", "work", true},
		{"b", "high", "home", false},
		{"c", "low", "work", false},
		{"d", "urgent-ish", "general", false},
	} {
		task := entities.NewTask(tc.title, "", tc.priority, tc.category)
		task.Completed = tc.completed
		mustCreate(t, repo, task)
	}

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, stats.Total, stats.Completed+stats.Pending)

	prioritySum := 0
	byPriority := map[string]int{}
	for _, p := range stats.ByPriority {
		prioritySum += p.Count
		byPriority[p.Priority] = p.Count
	}
	assert.Equal(t, stats.Total, prioritySum)
	assert.Equal(t, 2, byPriority["high"])
	assert.Equal(t, 1, byPriority["low"])
	assert.Equal(t, 1, byPriority["urgent-ish"])

	categorySum := 0
	for _, c := range stats.ByCategory {
		categorySum += c.Count
	}
	assert.Equal(t, stats.Total, categorySum)
}
