package dashboard

import (
	"fmt"
	"net/http"
)

// LogoutError is returned when the server refuses to end the session.
type LogoutError struct {
	Status  int
	Title   string
	Message string
}

func (e *LogoutError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

func newLogoutError() *LogoutError {
	return &LogoutError{
		Status:  http.StatusInternalServerError,
		Title:   "Logout error",
		Message: "Fail to logout",
	}
}

// APIError is a non-2xx answer. JSON error bodies are decoded into Message,
// Title and Errors; anything else (the rejected-chore dashboard page) stays in Body.
type APIError struct {
	Status  int
	Message string
	Title   string
	Errors  []string
	Body    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
	}

	return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
}
