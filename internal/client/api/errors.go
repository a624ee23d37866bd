package api

import (
	"errors"
	"fmt"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrGroupNotFound        = errors.New("group not found")
	ErrUnauthorized         = errors.New("unauthorized")
)

// Error is a business error reported by the backend through its
// {status:false, error:true, message} envelope. Message is surfaced to the
// user verbatim, so it is never rewritten here.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// IsBusinessError reports whether err carries a server-composed message that
// should be shown to the user as-is.
func IsBusinessError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}
