package todosdk

import "time"

// User is a registered account as returned by the API. The credential
// never appears on the wire.
type User struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Todo is a task record as returned by the API.
type Todo struct {
	ID        uint       `json:"id"`
	UserID    uint       `json:"userId"`
	Task      string     `json:"task"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Priority  string     `json:"priority"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CreateTodoInput carries the fields accepted when creating a todo.
type CreateTodoInput struct {
	Task     string     `json:"task"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
	Priority string     `json:"priority,omitempty"`
}

// ProfileUpdate carries a partial profile update. Nil fields are left
// out of the request body; an explicitly empty PhotoURL asks the server
// to regenerate the default avatar.
type ProfileUpdate struct {
	DisplayName *string `json:"displayName,omitempty"`
	PhotoURL    *string `json:"photoURL,omitempty"`
}
