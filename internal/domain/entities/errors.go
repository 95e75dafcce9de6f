package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidPassword   = errors.New("invalid password")

	// Interview errors
	ErrInterviewNotFound    = errors.New("interview not found")
	ErrInterviewCompleted   = errors.New("interview already completed")
	ErrQuestionLimit        = errors.New("question limit reached")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrDuplicateAnswer      = errors.New("answer already exists for question")
	ErrInvalidInterviewRole = errors.New("interview role is required")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
