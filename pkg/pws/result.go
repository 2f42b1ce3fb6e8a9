package pws

import "fmt"

// Action is the mutation a Result reports on.
type Action string

// Actions.
const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Result is the outcome of a Create, Update or Delete call.
type Result struct {
	// Action is the attempted mutation.
	Action Action `json:"action"            yaml:"action"`
	// StatusCode is the HTTP status the API answered with.
	StatusCode int `json:"status_code"       yaml:"status_code"`
	// OK is true when the API accepted the mutation.
	OK bool `json:"ok"                yaml:"ok"`
	// Message is the human-readable outcome. Failures start with "Error: ".
	Message string `json:"message"           yaml:"message"`
	// Failure carries the API error body for rejected mutations.
	Failure *APIError `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// String returns Message.
func (r *Result) String() string {
	return r.Message
}

// Succeeded builds the confirmation result for entity.
func Succeeded(entity Entity, action Action, status int) *Result {
	return &Result{
		Action:     action,
		StatusCode: status,
		OK:         true,
		Message:    fmt.Sprintf("%s %s (%s) %s.", entity.Kind().Name, entity.Label(), entity.ID(), action),
	}
}

// Rejected builds the result for an expected failure status. The message
// is "Error: " followed by the API's msg.
func Rejected(action Action, status int, apiErr *APIError) *Result {
	if apiErr == nil {
		apiErr = &APIError{StatusCode: status}
	}

	return &Result{
		Action:     action,
		StatusCode: status,
		Message:    "Error: " + apiErr.Msg,
		Failure:    apiErr,
	}
}

// NotFound builds the result for deleting an entity the API does not know.
func NotFound(entity Entity, status int, apiErr *APIError) *Result {
	return &Result{
		Action:     ActionDeleted,
		StatusCode: status,
		Message:    fmt.Sprintf("Error: %s %s (%s) not found", entity.Kind().Name, entity.Label(), entity.ID()),
		Failure:    apiErr,
	}
}

// Unexpected builds the result for a status the operation does not
// anticipate.
func Unexpected(action Action, status int, apiErr *APIError) *Result {
	return &Result{
		Action:     action,
		StatusCode: status,
		Message:    fmt.Sprintf("Error: unexpected response status %d", status),
		Failure:    apiErr,
	}
}
