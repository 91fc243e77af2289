package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"tasker/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestTaskNotFoundError(t *testing.T) {
	if failure.TaskNotFoundError.Code != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, failure.TaskNotFoundError.Code)
	}

	if failure.TaskNotFoundError.Message != "Task not found" {
		t.Errorf("expected message to be 'Task not found', got %s", failure.TaskNotFoundError.Message)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("bad input")),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("bad input"),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("Could not validate credentials"),
			code:    http.StatusUnauthorized,
			message: "Could not validate credentials",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("Not authorized to access this task"),
			code:    http.StatusForbidden,
			message: "Not authorized to access this task",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("Task not found"),
			code:    http.StatusNotFound,
			message: "Task not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("already exists"),
			code:    http.StatusConflict,
			message: "already exists",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}

			if tt.err.Error() != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.err.Error())
			}
		})
	}
}

func TestConstructorsWithNilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "failure error",
			err:      failure.Forbidden("nope"),
			expected: http.StatusForbidden,
		},
		{
			name:     "wrapped failure error",
			err:      fmt.Errorf("getting task: %w", failure.TaskNotFoundError),
			expected: http.StatusNotFound,
		},
		{
			name:     "plain error",
			err:      errors.New("database error"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, got)
			}
		})
	}
}
