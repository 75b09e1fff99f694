// Package todosdk is a Go client for the todolist backend. It speaks
// the session-cookie REST contract and carries the client-side state
// container with its offline fallback mode.
package todosdk

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client is a client for the todolist REST API. The underlying HTTP
// client keeps the session cookie in its jar, so one authenticated
// Client behaves like one browser session.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new API client with a cookie jar for the session
// cookie.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}
