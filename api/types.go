package api

import (
	"github.com/rpupo63/nexusconsult-backend/hooks"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	siteHandler         siteHandler
	blogPostHandler     blogPostHandler
	projectHandler      projectHandler
	submissionHandler   submissionHandler
	registrationHandler registrationHandler
	applicationHandler  applicationHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error    string            `json:"error" example:"Internal Server Error"`
	Status   string            `json:"status" example:"error"`
	Field    string            `json:"field,omitempty" example:"title"`
	Fields   map[string]string `json:"fields,omitempty"`
	Redirect string            `json:"redirect,omitempty" example:"/blog"`
	Details  string            `json:"details,omitempty" example:"Additional error details"`
	Cause    string            `json:"cause,omitempty" example:"Underlying error cause"`
}

// SubmitResponse is returned by every form endpoint after a successful write.
// SubmittedWindowMs is how long the client keeps showing the confirmation.
type SubmitResponse struct {
	hooks.SubmitState
	SubmittedWindowMs int64 `json:"submittedWindowMs"`
}

// ListResponse wraps a plain collection read. Error is set instead of failing
// the request when the store is unreachable.
type ListResponse[T any] struct {
	Items   []T    `json:"items"`
	Total   int    `json:"total"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Mode      string `json:"mode"`
	Uptime    string `json:"uptime"`
	StartedAt string `json:"startedAt"`
}

type RegistrationStepResponse struct {
	Step     int               `json:"step"`
	StepName string            `json:"stepName"`
	IsLast   bool              `json:"isLast"`
	Valid    bool              `json:"valid"`
	Fields   map[string]string `json:"fields,omitempty"`
}

type RegistrationResponse struct {
	Accepted bool   `json:"accepted"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Resume   string `json:"resume"`
}
