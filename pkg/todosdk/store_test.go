package todosdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RefreshLive(t *testing.T) {
	server := newTestServer(t)
	store := NewStore(NewClient(server.URL))
	ctx := context.Background()

	_, err := store.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, store.Refresh(ctx))

	state := store.State()
	assert.Equal(t, ModeLive, state.Mode)
	require.NotNil(t, state.User)
	assert.Equal(t, "test@example.com", state.User.Email)
	require.Len(t, state.Todos, 2)
	assert.Equal(t, "newer", state.Todos[0].Task)
}

func TestStore_RefreshUnauthorized(t *testing.T) {
	server := newTestServer(t)
	store := NewStore(NewClient(server.URL))

	err := store.Refresh(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsUnauthorized())

	// An answered 401 clears the user but stays in live mode.
	state := store.State()
	assert.Equal(t, ModeLive, state.Mode)
	assert.Nil(t, state.User)
	assert.Empty(t, state.Todos)
}

func TestStore_RefreshOfflineFallback(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // unreachable from the start
	store := NewStore(NewClient(server.URL))

	err := store.Refresh(context.Background())

	assert.ErrorIs(t, err, ErrServerUnreachable)

	state := store.State()
	assert.Equal(t, ModeOffline, state.Mode)
	require.NotEmpty(t, state.Todos, "offline mode must show the sample list")
	for _, todo := range state.Todos {
		assert.GreaterOrEqual(t, todo.ID, uint(1_000_000), "offline IDs must not collide with server IDs")
	}
}

func TestStore_OfflineMutationsStayLocal(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	store := NewStore(NewClient(server.URL))
	ctx := context.Background()

	require.ErrorIs(t, store.Refresh(ctx), ErrServerUnreachable)
	seeded := len(store.State().Todos)

	// Create, toggle, rename, and delete all work without a server.
	created, err := store.AddTodo(ctx, CreateTodoInput{Task: "offline note"})
	require.NoError(t, err)
	assert.Equal(t, "offline note", created.Task)
	assert.Equal(t, "medium", created.Priority)
	assert.Len(t, store.State().Todos, seeded+1)

	toggled, err := store.ToggleTodo(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	renamed, err := store.UpdateTodo(ctx, created.ID, "renamed offline")
	require.NoError(t, err)
	assert.Equal(t, "renamed offline", renamed.Task)

	require.NoError(t, store.RemoveTodo(ctx, created.ID))
	assert.Len(t, store.State().Todos, seeded)

	// Mutating a record that never existed reports not found, deletes
	// included.
	_, err = store.UpdateTodo(ctx, 42, "ghost")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())

	err = store.RemoveTodo(ctx, 42)
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
	assert.Len(t, store.State().Todos, seeded, "a failed delete must not change the list")
}

func TestStore_LiveMutationsApplyServerRecords(t *testing.T) {
	server := newTestServer(t)
	store := NewStore(NewClient(server.URL))
	ctx := context.Background()

	_, err := store.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)
	require.Len(t, store.State().Todos, 2)

	created, err := store.AddTodo(ctx, CreateTodoInput{Task: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), created.ID, "ID must come from the server")

	state := store.State()
	require.Len(t, state.Todos, 3)
	assert.Equal(t, "Buy milk", state.Todos[0].Task, "new todo is prepended")

	toggled, err := store.ToggleTodo(ctx, 2)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	for _, todo := range store.State().Todos {
		if todo.ID == 2 {
			assert.True(t, todo.Completed, "server record must replace the cached one")
		}
	}

	require.NoError(t, store.RemoveTodo(ctx, 2))
	for _, todo := range store.State().Todos {
		assert.NotEqual(t, uint(2), todo.ID)
	}
}

func TestStore_Logout(t *testing.T) {
	server := newTestServer(t)
	store := NewStore(NewClient(server.URL))
	ctx := context.Background()

	_, err := store.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, store.State().User)

	require.NoError(t, store.Logout(ctx))

	state := store.State()
	assert.Nil(t, state.User)
	assert.Empty(t, state.Todos)
	assert.Equal(t, ModeLive, state.Mode)
}

func TestStore_SubscribersNotified(t *testing.T) {
	server := newTestServer(t)
	store := NewStore(NewClient(server.URL))
	ctx := context.Background()

	var snapshots []State
	store.Subscribe(func(s State) { snapshots = append(snapshots, s) })

	_, err := store.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	_, err = store.AddTodo(ctx, CreateTodoInput{Task: "Buy milk"})
	require.NoError(t, err)

	require.Len(t, snapshots, 2)
	assert.NotNil(t, snapshots[0].User)
	assert.Len(t, snapshots[1].Todos, 3)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	server := newTestServer(t)
	store := NewStore(NewClient(server.URL))
	ctx := context.Background()

	_, err := store.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	state := store.State()
	require.NotEmpty(t, state.Todos)
	state.Todos[0].Task = "mutated copy"

	assert.NotEqual(t, "mutated copy", store.State().Todos[0].Task,
		"snapshots must not share backing storage with the store")
}
