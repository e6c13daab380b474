package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrCode represents an error code
type ErrCode string

const (
	ErrCodeMissingParameter ErrCode = "MISSING_PARAMETER"
	ErrCodeInvalidFormat    ErrCode = "INVALID_FORMAT"
	ErrCodeInvalidCategory  ErrCode = "INVALID_CATEGORY"
	ErrCodeForbidden        ErrCode = "FORBIDDEN"
	ErrCodeBadRequest       ErrCode = "BAD_REQUEST"
	ErrCodeInternal         ErrCode = "INTERNAL_ERROR"
)

// MissingDatesMessage is reported when a request carries no date input at all
const MissingDatesMessage = "You must provide at least one 'date' or 'dates' parameter"

// CredentialsMessage is reported for a missing or wrong API key
const CredentialsMessage = "Could not validate credentials"

// AppError represents an application error
type AppError struct {
	Code    ErrCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewMissingParameterError creates the error returned when no dates were supplied
func NewMissingParameterError() *AppError {
	return &AppError{
		Code:    ErrCodeMissingParameter,
		Message: MissingDatesMessage,
	}
}

// NewInvalidFormatError creates a new invalid format error.
// err is the underlying parse failure, if any.
func NewInvalidFormatError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidFormat,
		Message: message,
		Err:     err,
	}
}

// NewInvalidCategoryError creates a new invalid category error
func NewInvalidCategoryError(category string, available []string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidCategory,
		Message: fmt.Sprintf("Invalid category '%s'. Available categories: %v", category, available),
	}
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError() *AppError {
	return &AppError{
		Code:    ErrCodeForbidden,
		Message: CredentialsMessage,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// CodeOf returns the code carried by err, or ErrCodeInternal for foreign errors
func CodeOf(err error) ErrCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// StatusCode maps an error to the HTTP status it is reported with
func StatusCode(err error) int {
	switch CodeOf(err) {
	case ErrCodeMissingParameter, ErrCodeInvalidFormat, ErrCodeInvalidCategory, ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// IsMissingParameter checks if the error is a missing parameter error
func IsMissingParameter(err error) bool {
	return CodeOf(err) == ErrCodeMissingParameter
}

// IsInvalidFormat checks if the error is an invalid format error
func IsInvalidFormat(err error) bool {
	return CodeOf(err) == ErrCodeInvalidFormat
}

// IsInvalidCategory checks if the error is an invalid category error
func IsInvalidCategory(err error) bool {
	return CodeOf(err) == ErrCodeInvalidCategory
}
