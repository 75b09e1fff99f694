// Package usecase implements the business logic for the todos feature.
package usecase

import "errors"

var (
	// ErrTodoNotFound is returned when no todo matches both the requested
	// ID and the caller's user ID. A todo owned by another user is
	// indistinguishable from a nonexistent one.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrTaskRequired is returned when the task text is empty after trimming.
	ErrTaskRequired = errors.New("task is required")

	// ErrTaskTooLong is returned when the task text exceeds the maximum length.
	ErrTaskTooLong = errors.New("task must be between 1 and 500 characters")

	// ErrInvalidPriority is returned when the priority is not low, medium or high.
	ErrInvalidPriority = errors.New("priority must be low, medium or high")
)
