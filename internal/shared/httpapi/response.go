// Package httpapi defines the JSON response shapes shared by all API
// endpoints.
package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// MessageResponse is the body for endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned on every failure. Errors is
// present only for multi-field validation failures.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError is a per-field validation message. The json keys mirror
// the wire format browser clients already parse.
type FieldError struct {
	Path string `json:"path"`
	Msg  string `json:"msg"`
}

// fieldMessages maps field/tag pairs from binding failures to the
// human-readable messages the API contract promises.
var fieldMessages = map[string]string{
	"Email/required":       "Please include a valid email",
	"Email/email":          "Please include a valid email",
	"Password/required":    "Password is required",
	"Password/min":         "Password must be 6 or more characters",
	"DisplayName/required": "Name is required",
	"Task/required":        "Task is required",
	"Task/max":             "Task must be between 1 and 500 characters",
	"Priority/oneof":       "Priority must be low, medium or high",
}

// ValidationErrors converts a gin binding error into per-field messages.
// Returns nil when the error is not a validator error (e.g. malformed JSON).
func ValidationErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()+"/"+fe.Tag()]
		if !ok {
			msg = "Invalid value for " + fe.Field()
		}
		out = append(out, FieldError{Path: lowerFirst(fe.Field()), Msg: msg})
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}
