package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"todolist_backend/internal/feature/todos/domain/entity"
)

// maxTaskLength is the upper bound for todo task text, in characters.
const maxTaskLength = 500

// TodoRepository abstracts the persistence layer for todo entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
// Every lookup is scoped by the owning user ID; there is no way to
// fetch a todo by ID alone.
type TodoRepository interface {
	// Create persists a new todo to the storage.
	Create(ctx context.Context, todo *entity.Todo) error

	// FindByUserID retrieves all todos owned by a user, newest created first.
	FindByUserID(ctx context.Context, userID uint) ([]*entity.Todo, error)

	// FindByIDAndUserID retrieves the todo with the given ID owned by the
	// given user. Returns ErrTodoNotFound when no such todo exists for
	// that user.
	FindByIDAndUserID(ctx context.Context, id, userID uint) (*entity.Todo, error)

	// Update persists changes to an existing todo.
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete removes a todo.
	Delete(ctx context.Context, todo *entity.Todo) error
}

// CreateTodoInput carries the fields accepted when creating a todo.
type CreateTodoInput struct {
	Task     string
	DueDate  *time.Time
	Priority entity.Priority
}

// todoUsecase implements the todo CRUD business logic.
type todoUsecase struct {
	todos TodoRepository
}

// NewTodoUsecase creates a new instance of todoUsecase.
func NewTodoUsecase(todos TodoRepository) *todoUsecase {
	return &todoUsecase{todos: todos}
}

// validateTask trims the task text and checks its length bounds.
// The limit counts characters, not bytes, so multibyte text is not
// penalized.
func validateTask(task string) (string, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return "", ErrTaskRequired
	}
	if utf8.RuneCountInString(task) > maxTaskLength {
		return "", ErrTaskTooLong
	}
	return task, nil
}

// List returns all todos owned by the user, newest created first.
func (u *todoUsecase) List(ctx context.Context, userID uint) ([]*entity.Todo, error) {
	return u.todos.FindByUserID(ctx, userID)
}

// GetByID returns the todo with the given ID if it is owned by the user.
func (u *todoUsecase) GetByID(ctx context.Context, userID, todoID uint) (*entity.Todo, error) {
	return u.todos.FindByIDAndUserID(ctx, todoID, userID)
}

// Create validates the input and persists a new todo owned by the user.
func (u *todoUsecase) Create(ctx context.Context, userID uint, input CreateTodoInput) (*entity.Todo, error) {
	task, err := validateTask(input.Task)
	if err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	todo := &entity.Todo{
		UserID:    userID,
		Task:      task,
		Completed: false,
		DueDate:   input.DueDate,
		Priority:  priority,
	}
	if err := u.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Update replaces the task text of an owned todo.
func (u *todoUsecase) Update(ctx context.Context, userID, todoID uint, task string) (*entity.Todo, error) {
	task, err := validateTask(task)
	if err != nil {
		return nil, err
	}

	todo, err := u.todos.FindByIDAndUserID(ctx, todoID, userID)
	if err != nil {
		return nil, err
	}

	todo.Task = task
	if err := u.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Delete removes an owned todo and returns the deleted record for
// confirmation.
func (u *todoUsecase) Delete(ctx context.Context, userID, todoID uint) (*entity.Todo, error) {
	todo, err := u.todos.FindByIDAndUserID(ctx, todoID, userID)
	if err != nil {
		return nil, err
	}
	if err := u.todos.Delete(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Toggle flips the completed flag of an owned todo.
func (u *todoUsecase) Toggle(ctx context.Context, userID, todoID uint) (*entity.Todo, error) {
	todo, err := u.todos.FindByIDAndUserID(ctx, todoID, userID)
	if err != nil {
		return nil, err
	}

	todo.Completed = !todo.Completed
	if err := u.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}
