package service

import "errors"

var (
	// ErrDuplicateName is returned when a new user's name collides with an
	// existing one after trimming and case folding.
	ErrDuplicateName = errors.New("a user with this name already exists")

	// ErrUserNotFound is returned for operations on a missing user.
	ErrUserNotFound = errors.New("user not found")

	// ErrEventNotFound is returned for operations on a missing event.
	ErrEventNotFound = errors.New("event not found")

	// ErrInvalidStatus is returned when an attendance status is not one of
	// joined/declined/maybe.
	ErrInvalidStatus = errors.New("invalid attendance status")

	// ErrEmptyName is returned when a user is created with a blank name.
	ErrEmptyName = errors.New("user name must not be empty")
)
