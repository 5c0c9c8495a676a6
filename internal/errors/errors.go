package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity or association is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// PermissionDeniedError represents an error when the acting principal lacks
// the rights an operation requires
type PermissionDeniedError struct {
	Message string
}

func (e *PermissionDeniedError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for PermissionDeniedError
func (e *PermissionDeniedError) Is(target error) bool {
	t, ok := target.(*PermissionDeniedError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound      = &NotFoundError{Entity: "user"}
	ErrRoleNotFound      = &NotFoundError{Entity: "role"}
	ErrUserRoleNotFound  = &NotFoundError{Entity: "user-role association"}
	ErrTopicNotFound     = &NotFoundError{Entity: "topic"}
	ErrTopicUserNotFound = &NotFoundError{Entity: "topic membership"}
	ErrSurveyNotFound    = &NotFoundError{Entity: "survey"}
	ErrContextNotFound   = &NotFoundError{Entity: "context"}
	ErrQuestionNotFound  = &NotFoundError{Entity: "question"}
)

// Permission Errors
var (
	ErrNotOwnerNorAdmin = &PermissionDeniedError{Message: "principal is neither the subject user nor an admin"}
)

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsPermissionDenied checks if an error is a PermissionDeniedError
func IsPermissionDenied(err error) bool {
	var deniedErr *PermissionDeniedError
	return errors.As(err, &deniedErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewPermissionDeniedError creates a new PermissionDeniedError
func NewPermissionDeniedError(message string) error {
	return &PermissionDeniedError{Message: message}
}
