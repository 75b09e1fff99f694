// Package dto defines data transfer objects for the todos feature's HTTP transport layer.
package dto

import "time"

// CreateTodoReq represents the request body for POST /api/todos.
type CreateTodoReq struct {
	Task     string     `json:"task" binding:"required,max=500"`
	DueDate  *time.Time `json:"dueDate" binding:"omitempty"`
	Priority string     `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// UpdateTodoReq represents the request body for PUT /api/todos/:id.
// Only the task text is replaceable; completion is flipped via toggle.
type UpdateTodoReq struct {
	Task string `json:"task" binding:"required,max=500"`
}
