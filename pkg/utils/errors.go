package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Common error constructors
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Detail:  detail,
	}
}

// NewNotFoundError returns an error for a well-formed request whose referent
// does not exist in the record store
func NewNotFoundError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusNotFound,
		Message: "Record not found",
		Detail:  detail,
	}
}

func NewLLMError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: "LLM processing failed",
		Detail:  detail,
	}
}

// NewModelFormatError returns an error when the model's response could not be
// coerced into the expected output schema
func NewModelFormatError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: "LLM response did not match the expected schema",
		Detail:  detail,
	}
}

// Classification helpers so callers can branch on the error taxonomy without
// string matching

func IsValidationError(err error) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Code == http.StatusBadRequest
}

func IsNotFoundError(err error) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Code == http.StatusNotFound
}

func IsLLMError(err error) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Code == http.StatusBadGateway
}

// HTTPStatus maps an error to a response status code, defaulting to 500 for
// anything outside the taxonomy
func HTTPStatus(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return http.StatusInternalServerError
}
