package todosdk

import (
	"sync/atomic"
	"time"
)

// offlineIDCounter hands out IDs for records created while offline.
// They start far above any plausible server ID so the two ranges can
// never collide if the lists were ever compared.
var offlineIDCounter atomic.Uint64

func init() {
	offlineIDCounter.Store(1_000_000)
}

// offlineSeedTodos returns a fresh copy of the static sample list shown
// while the backend is unreachable. These records are never persisted
// and never mixed with server-backed ones: the store swaps the whole
// list when the mode changes.
func offlineSeedTodos() []Todo {
	now := time.Now()
	return []Todo{
		{ID: nextOfflineID(), Task: "Reconnect to the server to see your todos", Priority: "high", CreatedAt: now, UpdatedAt: now},
		{ID: nextOfflineID(), Task: "Changes made offline are not saved", Priority: "medium", CreatedAt: now, UpdatedAt: now},
	}
}

// newOfflineTodo builds an in-memory-only todo from create input.
func newOfflineTodo(input CreateTodoInput) Todo {
	now := time.Now()
	priority := input.Priority
	if priority == "" {
		priority = "medium"
	}
	return Todo{
		ID:        nextOfflineID(),
		Task:      input.Task,
		Completed: false,
		DueDate:   input.DueDate,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func nextOfflineID() uint {
	return uint(offlineIDCounter.Add(1))
}
