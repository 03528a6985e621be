package services

import "errors"

var (
	// ErrDuplicateUsername is returned when registering an already taken username.
	ErrDuplicateUsername = errors.New("username is already registered")

	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInsufficientPoints is returned when a user cannot afford an enrollment.
	ErrInsufficientPoints = errors.New("not enough points to enroll")

	// ErrCourseNotFound is returned when an enrollment targets a missing course.
	ErrCourseNotFound = errors.New("course not found")

	// ErrUserNotFound is returned when a user record cannot be resolved.
	ErrUserNotFound = errors.New("user not found")
)
