package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"todolist_backend/internal/feature/todos/domain/entity"
	"todolist_backend/internal/feature/todos/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Todo{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestTodoMySQL_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTodoMySQL(db)

	todo := &entity.Todo{
		UserID:   1,
		Task:     "Buy milk",
		Priority: entity.PriorityMedium,
	}

	err := repo.Create(context.Background(), todo)

	assert.NoError(t, err, "failed to create todo")
	assert.NotZero(t, todo.ID, "ID is not set")
	assert.False(t, todo.CreatedAt.IsZero(), "CreatedAt is not set")
}

func TestTodoMySQL_FindByUserID(t *testing.T) {
	t.Run("newest first, scoped to owner", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTodoMySQL(db)

		// Distinct creation times so the ordering is deterministic.
		now := time.Now()
		seed := []*entity.Todo{
			{UserID: 1, Task: "oldest", Priority: entity.PriorityMedium, CreatedAt: now.Add(-2 * time.Hour)},
			{UserID: 1, Task: "newest", Priority: entity.PriorityMedium, CreatedAt: now},
			{UserID: 1, Task: "middle", Priority: entity.PriorityMedium, CreatedAt: now.Add(-1 * time.Hour)},
			{UserID: 2, Task: "foreign", Priority: entity.PriorityMedium, CreatedAt: now},
		}
		for _, todo := range seed {
			require.NoError(t, db.Create(todo).Error)
		}

		todos, err := repo.FindByUserID(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, todos, 3)
		assert.Equal(t, "newest", todos[0].Task)
		assert.Equal(t, "middle", todos[1].Task)
		assert.Equal(t, "oldest", todos[2].Task)
		for _, todo := range todos {
			assert.Equal(t, uint(1), todo.UserID)
		}
	})

	t.Run("no todos", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTodoMySQL(db)

		todos, err := repo.FindByUserID(context.Background(), 999)

		require.NoError(t, err)
		assert.Empty(t, todos)
	})
}

func TestTodoMySQL_FindByIDAndUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTodoMySQL(db)

	todo := &entity.Todo{UserID: 1, Task: "mine", Priority: entity.PriorityHigh}
	require.NoError(t, repo.Create(context.Background(), todo))

	t.Run("owner sees the todo", func(t *testing.T) {
		found, err := repo.FindByIDAndUserID(context.Background(), todo.ID, 1)

		require.NoError(t, err)
		assert.Equal(t, "mine", found.Task)
		assert.Equal(t, entity.PriorityHigh, found.Priority)
	})

	t.Run("another user's lookup is indistinguishable from missing", func(t *testing.T) {
		_, errForeign := repo.FindByIDAndUserID(context.Background(), todo.ID, 2)
		_, errMissing := repo.FindByIDAndUserID(context.Background(), 9999, 1)

		assert.ErrorIs(t, errForeign, usecase.ErrTodoNotFound)
		assert.ErrorIs(t, errMissing, usecase.ErrTodoNotFound)
	})
}

func TestTodoMySQL_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTodoMySQL(db)

	todo := &entity.Todo{UserID: 1, Task: "before", Priority: entity.PriorityMedium}
	require.NoError(t, repo.Create(context.Background(), todo))

	todo.Task = "after"
	todo.Completed = true
	require.NoError(t, repo.Update(context.Background(), todo))

	found, err := repo.FindByIDAndUserID(context.Background(), todo.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "after", found.Task)
	assert.True(t, found.Completed)
}

func TestTodoMySQL_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTodoMySQL(db)

	todo := &entity.Todo{UserID: 1, Task: "gone", Priority: entity.PriorityMedium}
	require.NoError(t, repo.Create(context.Background(), todo))

	require.NoError(t, repo.Delete(context.Background(), todo))

	_, err := repo.FindByIDAndUserID(context.Background(), todo.ID, 1)
	assert.ErrorIs(t, err, usecase.ErrTodoNotFound)
}
