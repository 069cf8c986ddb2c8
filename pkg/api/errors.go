package api

import (
	"errors"
	"fmt"
)

// APIError represents an error returned by the Solvr API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("solvr api: %s: %s", e.Code, e.Message)
}

// ErrorResponse is the error response format from the API.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Well-known API error codes the UI core branches on.
const (
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeDuplicateVote = "DUPLICATE_VOTE"
	CodeBookmarkDup   = "BOOKMARK_EXISTS"
)

// IsCode reports whether err is an *APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
