// Package handler provides the HTTP handlers for the todos feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authmw "todolist_backend/internal/feature/auth/transport/middleware"
	"todolist_backend/internal/feature/todos/domain/entity"
	"todolist_backend/internal/feature/todos/transport/http/dto"
	"todolist_backend/internal/feature/todos/usecase"
	"todolist_backend/internal/shared/httpapi"
)

// TodoUsecase defines the usecase operations for todos.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TodoUsecase interface {
	List(ctx context.Context, userID uint) ([]*entity.Todo, error)
	GetByID(ctx context.Context, userID, todoID uint) (*entity.Todo, error)
	Create(ctx context.Context, userID uint, input usecase.CreateTodoInput) (*entity.Todo, error)
	Update(ctx context.Context, userID, todoID uint, task string) (*entity.Todo, error)
	Delete(ctx context.Context, userID, todoID uint) (*entity.Todo, error)
	Toggle(ctx context.Context, userID, todoID uint) (*entity.Todo, error)
}

// TodoHandler handles HTTP requests for todo operations. All routes it
// serves sit behind the auth middleware, so the user ID is always in
// the gin context.
type TodoHandler struct {
	todos TodoUsecase
}

// NewTodoHandler creates a new instance of TodoHandler.
func NewTodoHandler(todos TodoUsecase) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// List handles GET /api/todos. Returns the caller's todos, newest first.
func (h *TodoHandler) List(c *gin.Context) {
	userID := c.GetUint(authmw.ContextUserID)

	todos, err := h.todos.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("todo list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Message: "Server error"})
		return
	}
	if todos == nil {
		todos = []*entity.Todo{}
	}
	c.JSON(http.StatusOK, todos)
}

// GetByID handles GET /api/todos/:id.
func (h *TodoHandler) GetByID(c *gin.Context) {
	userID := c.GetUint(authmw.ContextUserID)
	todoID, ok := todoIDParam(c)
	if !ok {
		return
	}

	todo, err := h.todos.GetByID(c.Request.Context(), userID, todoID)
	if err != nil {
		h.writeError(c, err, userID, todoID)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// Create handles POST /api/todos.
func (h *TodoHandler) Create(c *gin.Context) {
	userID := c.GetUint(authmw.ContextUserID)

	var req dto.CreateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{
			Message: "Validation failed",
			Errors:  httpapi.ValidationErrors(err),
		})
		return
	}

	todo, err := h.todos.Create(c.Request.Context(), userID, usecase.CreateTodoInput{
		Task:     req.Task,
		DueDate:  req.DueDate,
		Priority: entity.Priority(req.Priority),
	})
	if err != nil {
		h.writeError(c, err, userID, 0)
		return
	}

	slog.Info("todo created", "todo_id", todo.ID, "user_id", userID)
	c.JSON(http.StatusCreated, todo)
}

// Update handles PUT /api/todos/:id. Replaces the task text.
func (h *TodoHandler) Update(c *gin.Context) {
	userID := c.GetUint(authmw.ContextUserID)
	todoID, ok := todoIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{
			Message: "Validation failed",
			Errors:  httpapi.ValidationErrors(err),
		})
		return
	}

	todo, err := h.todos.Update(c.Request.Context(), userID, todoID, req.Task)
	if err != nil {
		h.writeError(c, err, userID, todoID)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// Delete handles DELETE /api/todos/:id. Returns the deleted record for
// confirmation.
func (h *TodoHandler) Delete(c *gin.Context) {
	userID := c.GetUint(authmw.ContextUserID)
	todoID, ok := todoIDParam(c)
	if !ok {
		return
	}

	todo, err := h.todos.Delete(c.Request.Context(), userID, todoID)
	if err != nil {
		h.writeError(c, err, userID, todoID)
		return
	}

	slog.Info("todo deleted", "todo_id", todoID, "user_id", userID)
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully", "todo": todo})
}

// Toggle handles PATCH /api/todos/:id/toggle. Flips the completed flag.
func (h *TodoHandler) Toggle(c *gin.Context) {
	userID := c.GetUint(authmw.ContextUserID)
	todoID, ok := todoIDParam(c)
	if !ok {
		return
	}

	todo, err := h.todos.Toggle(c.Request.Context(), userID, todoID)
	if err != nil {
		h.writeError(c, err, userID, todoID)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// writeError maps usecase errors to HTTP responses.
func (h *TodoHandler) writeError(c *gin.Context, err error, userID, todoID uint) {
	switch {
	case errors.Is(err, usecase.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, httpapi.ErrorResponse{Message: "Todo not found"})
	case errors.Is(err, usecase.ErrTaskRequired), errors.Is(err, usecase.ErrTaskTooLong), errors.Is(err, usecase.ErrInvalidPriority):
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Message: capitalize(err.Error())})
	default:
		slog.Error("todo operation failed", "error", err, "user_id", userID, "todo_id", todoID)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Message: "Server error"})
	}
}

// todoIDParam parses the :id path parameter. A non-numeric ID can never
// match an owned todo, so it is reported as not found.
func todoIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, httpapi.ErrorResponse{Message: "Todo not found"})
		return 0, false
	}
	return uint(id), true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
