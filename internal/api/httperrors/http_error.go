package httperrors

import (
	"fmt"

	"github.com/poolhouse/go-prize-pool/internal/types"
)

// HTTPError is the error envelope returned by every API endpoint.
type HTTPError struct {
	Code  int                       `json:"status"`
	Type  types.PublicHTTPErrorType `json:"type"`
	Title string                    `json:"title"`
}

// NewHTTPError creates a typed HTTP error.
func NewHTTPError(code int, errorType types.PublicHTTPErrorType, title string) *HTTPError {
	return &HTTPError{
		Code:  code,
		Type:  errorType,
		Title: title,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTPError %d (%s): %s", e.Code, e.Type, e.Title)
}
