// Package adapters provides repository implementations for the todos feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todolist_backend/internal/feature/todos/domain/entity"
	"todolist_backend/internal/feature/todos/usecase"
)

// todoMySQL is a MySQL implementation of the TodoRepository interface.
// It uses GORM for database operations.
type todoMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure todoMySQL implements TodoRepository.
var _ usecase.TodoRepository = (*todoMySQL)(nil)

// NewTodoMySQL creates a new instance of todoMySQL with the given gorm.DB connection.
func NewTodoMySQL(db *gorm.DB) *todoMySQL {
	return &todoMySQL{db: db}
}

// Create adds a todo to the database.
func (r *todoMySQL) Create(ctx context.Context, t *entity.Todo) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindByUserID retrieves all todos for a user, newest created first.
func (r *todoMySQL) FindByUserID(ctx context.Context, userID uint) ([]*entity.Todo, error) {
	var todos []*entity.Todo
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// FindByIDAndUserID retrieves a todo by ID scoped to its owner.
// Returns usecase.ErrTodoNotFound when the todo does not exist or is
// owned by a different user.
func (r *todoMySQL) FindByIDAndUserID(ctx context.Context, id, userID uint) (*entity.Todo, error) {
	var t entity.Todo
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTodoNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update persists changes to an existing todo.
func (r *todoMySQL) Update(ctx context.Context, t *entity.Todo) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete removes a todo from the database.
func (r *todoMySQL) Delete(ctx context.Context, t *entity.Todo) error {
	return r.db.WithContext(ctx).Delete(t).Error
}
