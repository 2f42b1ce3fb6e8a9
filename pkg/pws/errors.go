package pws

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents an error body returned by the pentest.ws API.
type APIError struct {
	StatusCode int    `json:"-"   yaml:"status_code"`
	Msg        string `json:"msg" yaml:"msg"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("pentest.ws API error (status: %d)", e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", e.Msg, e.StatusCode)
}

// Violation is a single failed field constraint.
type Violation struct {
	Field   string `json:"field"   yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// ValidationError is returned by the entity constructors when one or more
// fields fail their schema rules.
type ValidationError struct {
	Violations []Violation `json:"violations" yaml:"violations"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}

	return strings.Join(messages, "; ")
}

// Messages returns the violation messages in schema order.
func (e *ValidationError) Messages() []string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}

	return messages
}

// Field returns the violation recorded for name, if any.
func (e *ValidationError) Field(name string) (Violation, bool) {
	for _, v := range e.Violations {
		if v.Field == name {
			return v, true
		}
	}

	return Violation{}, false
}

// MsgAPIKeyMissing is the message carried by ErrAPIKeyMissing.
const MsgAPIKeyMissing = "All methods require an API key. See https://pentest.ws/settings/api-key " +
	"for how to retrieve an authentication token from pentest.ws"

// Common static errors that can be wrapped with context.
var (
	ErrAPIKeyMissing      = errors.New(MsgAPIKeyMissing)
	ErrConfigRequired     = errors.New("config is required")
	ErrFetchFailed        = errors.New("fetch failed")
	ErrUnexpectedStatus   = errors.New("unexpected response status")
	ErrNoIdentity         = errors.New("entity has no id")
	ErrNoParent           = errors.New("entity has no parent id")
	ErrNilEntity          = errors.New("entity is nil")
	ErrMissingResponseID  = errors.New("response did not include an id")
	ErrEngagementNotFound = errors.New("engagement not found")
	ErrAmbiguousName      = errors.New("more than one engagement has that name")
	ErrInvalidObjectType  = errors.New("invalid note page object type")
)

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr)
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsBadRequest checks if the error is a 400 from the API.
func IsBadRequest(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

// IsUnauthorized checks if the error is a 401 or 403 from the API.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
