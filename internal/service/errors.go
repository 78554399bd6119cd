package service

import "errors"

// Sentinel errors handlers map onto HTTP status codes. Anything else that
// escapes a service is treated as an opaque store failure.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCourseNotOwned     = errors.New("course not found or not owned by caller")
	ErrAlreadyPurchased   = errors.New("course already purchased")
	ErrInvalidCourseID    = errors.New("invalid course id")
)
