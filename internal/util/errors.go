package util

import "errors"

// ErrorKind separates client errors so controllers can map them to status
// codes without string matching.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
)

type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func ValidationError(message string) error {
	return &AppError{Kind: KindValidation, Message: message}
}

func NotFoundError(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

func ConflictError(message string) error {
	return &AppError{Kind: KindConflict, Message: message}
}

func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailRegistered = errors.New("email already registered")
	ErrInvalidLogin    = errors.New("invalid credentials")
)
