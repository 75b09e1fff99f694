package todosdk

import (
	"context"
	"net/http"
)

// userEnvelope matches the {"user": ...} bodies of register and login.
type userEnvelope struct {
	User User `json:"user"`
}

// Register creates a new account. The session cookie from the response
// lands in the client's jar, so the client is authenticated afterwards.
func (c *Client) Register(ctx context.Context, email, password, displayName string) (*User, error) {
	req := map[string]string{
		"email":       email,
		"password":    password,
		"displayName": displayName,
	}
	var env userEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", req, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	req := map[string]string{
		"email":    email,
		"password": password,
	}
	var env userEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", req, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

// Logout destroys the server-side session. Safe to call repeatedly.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// Me returns the user the current session belongs to.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial profile update.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPut, "/api/auth/profile", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
