package todosdk

import (
	"context"
	"fmt"
	"net/http"
)

// Todos returns all of the caller's todos, newest created first.
func (c *Client) Todos(ctx context.Context) ([]Todo, error) {
	var todos []Todo
	if err := c.doJSON(ctx, http.MethodGet, "/api/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// Todo returns a single owned todo by ID.
func (c *Client) Todo(ctx context.Context, id uint) (*Todo, error) {
	var todo Todo
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/todos/%d", id), nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// CreateTodo creates a todo owned by the current user.
func (c *Client) CreateTodo(ctx context.Context, input CreateTodoInput) (*Todo, error) {
	var todo Todo
	if err := c.doJSON(ctx, http.MethodPost, "/api/todos", input, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo replaces the task text of an owned todo.
func (c *Client) UpdateTodo(ctx context.Context, id uint, task string) (*Todo, error) {
	req := map[string]string{"task": task}
	var todo Todo
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/todos/%d", id), req, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// deleteEnvelope matches the {"message": ..., "todo": ...} delete body.
type deleteEnvelope struct {
	Message string `json:"message"`
	Todo    Todo   `json:"todo"`
}

// DeleteTodo removes an owned todo and returns the deleted record.
func (c *Client) DeleteTodo(ctx context.Context, id uint) (*Todo, error) {
	var env deleteEnvelope
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/todos/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Todo, nil
}

// ToggleTodo flips the completed flag of an owned todo.
func (c *Client) ToggleTodo(ctx context.Context, id uint) (*Todo, error) {
	var todo Todo
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/api/todos/%d/toggle", id), nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}
