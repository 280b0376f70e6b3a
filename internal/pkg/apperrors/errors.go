package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies pipeline failures so the HTTP layer can map them to a
// status without inspecting error strings.
type Kind string

const (
	KindInput      Kind = "input"
	KindAuth       Kind = "auth"
	KindConfig     Kind = "config"
	KindRetrieval  Kind = "retrieval"
	KindGeneration Kind = "generation"
	KindInternal   Kind = "internal"
)

// AppError carries a classification, a user-facing message and the wrapped
// cause. Stage errors bubble to the controller boundary unchanged; nothing in
// the pipeline retries.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Details returns the human-readable explanation for the response body.
func (e *AppError) Details() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// StatusCode maps the error kind to its HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindInput:
		return fiber.StatusBadRequest
	case KindAuth:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func NewInput(message string, err error) *AppError {
	return &AppError{Kind: KindInput, Message: message, Err: err}
}

func NewAuth(message string) *AppError {
	return &AppError{Kind: KindAuth, Message: message}
}

func NewConfig(message string, err error) *AppError {
	return &AppError{Kind: KindConfig, Message: message, Err: err}
}

func NewRetrieval(err error) *AppError {
	return &AppError{Kind: KindRetrieval, Message: "similarity search failed", Err: err}
}

func NewGeneration(err error) *AppError {
	return &AppError{Kind: KindGeneration, Message: "answer generation failed", Err: err}
}

// As unwraps err into an *AppError when possible.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
