package todosdk

import (
	"context"
	"errors"
	"sync"
)

// ErrServerUnreachable is returned when a transport-level failure (no
// HTTP response at all) switched the store into offline mode. It is
// distinct from an *APIError, where the server answered with an error.
var ErrServerUnreachable = errors.New("server unreachable")

// Mode selects between live API data and the offline fallback.
type Mode int

const (
	// ModeLive means the store mirrors server-backed records.
	ModeLive Mode = iota
	// ModeOffline means the store holds static, non-persisted sample
	// data used only while the API is unreachable.
	ModeOffline
)

// State is an immutable snapshot of the client state.
type State struct {
	User  *User
	Todos []Todo
	Mode  Mode
}

// Store is the owned client state container: the current user, the todo
// list, and the live/offline mode flag. All mutations go through
// explicit operations that apply the server's returned record, and
// every change notifies the subscribers.
type Store struct {
	client *Client

	mu    sync.RWMutex
	user  *User
	todos []Todo
	mode  Mode
	subs  []func(State)
}

// NewStore creates a state container on top of an API client.
func NewStore(client *Client) *Store {
	return &Store{client: client}
}

// Subscribe registers a callback invoked with a state snapshot after
// every change.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// snapshotLocked copies the state under the caller's lock.
func (s *Store) snapshotLocked() State {
	todos := make([]Todo, len(s.todos))
	copy(todos, s.todos)
	return State{User: s.user, Todos: todos, Mode: s.mode}
}

// setLocked stores new state and notifies subscribers. Callers hold the
// write lock; notification happens after it is released.
func (s *Store) set(update func()) {
	s.mu.Lock()
	update()
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Refresh resolves the current user and todo list from the server. On a
// transport failure it switches to offline fallback mode (keeping any
// previously cached user identity) and returns ErrServerUnreachable; an
// answered error from the server is returned as-is and does not trigger
// the fallback.
func (s *Store) Refresh(ctx context.Context) error {
	user, err := s.client.Me(ctx)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if apiErr.IsUnauthorized() {
				s.set(func() {
					s.user = nil
					s.todos = nil
					s.mode = ModeLive
				})
			}
			return err
		}
		// No response received: degrade to the offline sample list.
		s.set(func() {
			s.todos = offlineSeedTodos()
			s.mode = ModeOffline
		})
		return ErrServerUnreachable
	}

	todos, err := s.client.Todos(ctx)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return err
		}
		s.set(func() {
			s.user = user
			s.todos = offlineSeedTodos()
			s.mode = ModeOffline
		})
		return ErrServerUnreachable
	}

	s.set(func() {
		s.user = user
		s.todos = todos
		s.mode = ModeLive
	})
	return nil
}

// Login authenticates and loads the user's todos into the store.
func (s *Store) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	todos, err := s.client.Todos(ctx)
	if err != nil {
		todos = nil
	}
	s.set(func() {
		s.user = user
		s.todos = todos
		s.mode = ModeLive
	})
	return user, nil
}

// Register creates an account and loads the fresh (empty) todo list.
func (s *Store) Register(ctx context.Context, email, password, displayName string) (*User, error) {
	user, err := s.client.Register(ctx, email, password, displayName)
	if err != nil {
		return nil, err
	}
	s.set(func() {
		s.user = user
		s.todos = nil
		s.mode = ModeLive
	})
	return user, nil
}

// Logout destroys the session and clears the state.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			return ErrServerUnreachable
		}
		return err
	}
	s.set(func() {
		s.user = nil
		s.todos = nil
		s.mode = ModeLive
	})
	return nil
}

// AddTodo creates a todo and prepends the server-returned record, so
// fields like timestamps stay authoritative. In offline mode the record
// exists only in memory.
func (s *Store) AddTodo(ctx context.Context, input CreateTodoInput) (*Todo, error) {
	if s.State().Mode == ModeOffline {
		todo := newOfflineTodo(input)
		s.set(func() {
			s.todos = append([]Todo{todo}, s.todos...)
		})
		return &todo, nil
	}

	todo, err := s.client.CreateTodo(ctx, input)
	if err != nil {
		return nil, err
	}
	s.set(func() {
		s.todos = append([]Todo{*todo}, s.todos...)
	})
	return todo, nil
}

// UpdateTodo replaces a todo's task text and applies the server record.
func (s *Store) UpdateTodo(ctx context.Context, id uint, task string) (*Todo, error) {
	if s.State().Mode == ModeOffline {
		return s.patchOffline(id, func(t *Todo) { t.Task = task })
	}

	todo, err := s.client.UpdateTodo(ctx, id, task)
	if err != nil {
		return nil, err
	}
	s.applyServerRecord(*todo)
	return todo, nil
}

// ToggleTodo flips a todo's completed flag and applies the server record.
func (s *Store) ToggleTodo(ctx context.Context, id uint) (*Todo, error) {
	if s.State().Mode == ModeOffline {
		return s.patchOffline(id, func(t *Todo) { t.Completed = !t.Completed })
	}

	todo, err := s.client.ToggleTodo(ctx, id)
	if err != nil {
		return nil, err
	}
	s.applyServerRecord(*todo)
	return todo, nil
}

// RemoveTodo deletes a todo and drops it from the list. Offline, a
// missing ID reports the same not-found error the server would.
func (s *Store) RemoveTodo(ctx context.Context, id uint) error {
	offline := s.State().Mode == ModeOffline
	if !offline {
		if _, err := s.client.DeleteTodo(ctx, id); err != nil {
			return err
		}
	}

	removed := false
	s.set(func() {
		out := s.todos[:0]
		for _, t := range s.todos {
			if t.ID != id {
				out = append(out, t)
			} else {
				removed = true
			}
		}
		s.todos = out
	})
	if offline && !removed {
		return &APIError{StatusCode: 404, Message: "Todo not found"}
	}
	return nil
}

// applyServerRecord replaces the stored todo with the server's version.
func (s *Store) applyServerRecord(todo Todo) {
	s.set(func() {
		for i := range s.todos {
			if s.todos[i].ID == todo.ID {
				s.todos[i] = todo
				return
			}
		}
		s.todos = append([]Todo{todo}, s.todos...)
	})
}

// patchOffline mutates an offline-only record in place.
func (s *Store) patchOffline(id uint, patch func(*Todo)) (*Todo, error) {
	var out *Todo
	s.set(func() {
		for i := range s.todos {
			if s.todos[i].ID == id {
				patch(&s.todos[i])
				copied := s.todos[i]
				out = &copied
				return
			}
		}
	})
	if out == nil {
		return nil, &APIError{StatusCode: 404, Message: "Todo not found"}
	}
	return out, nil
}
