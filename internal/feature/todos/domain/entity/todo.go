// Package entity defines the domain entities for the todos feature.
package entity

import "time"

// Priority is the urgency level of a todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo represents a task owned by a single user. Every read and
// mutation is scoped by both ID and UserID; the UserID column is the
// authorization boundary.
type Todo struct {
	// ID is the unique identifier for the todo.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is the owning user. Required on every record.
	UserID uint `gorm:"index;not null" json:"userId"`

	// Task is the todo text, trimmed, 1-500 characters.
	Task string `gorm:"size:500;not null" json:"task"`

	// Completed reports whether the task is done.
	Completed bool `gorm:"not null;default:false" json:"completed"`

	// DueDate is an optional deadline.
	DueDate *time.Time `json:"dueDate,omitempty"`

	// Priority is the urgency level, defaulting to medium.
	Priority Priority `gorm:"size:10;not null;default:medium" json:"priority"`

	// CreatedAt is the timestamp when the todo was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the todo was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
