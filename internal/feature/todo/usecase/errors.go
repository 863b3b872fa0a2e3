// Package usecase implements the business logic for the todo feature.
package usecase

import "errors"

var (
	// ErrTodoNotFound is returned when a todo does not exist or is owned by
	// another user. The two cases are deliberately indistinguishable so
	// other users' item IDs cannot be probed.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrContentTooLong is returned when the todo content exceeds the
	// maximum allowed length.
	ErrContentTooLong = errors.New("content exceeds maximum length")
)
