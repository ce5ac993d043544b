package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeParsing    ErrorType = "PARSING"
	ErrTypeStorage    ErrorType = "STORAGE"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypeConfig     ErrorType = "CONFIG"

	// Analysis failure kinds. These four are the only error path out of the
	// detection/aggregation pipeline; every other anomaly in a vendor export
	// is absorbed by zero-defaults or silent row drops.
	ErrTypeEmptyInput           ErrorType = "EMPTY_INPUT"
	ErrTypeNoDateColumn         ErrorType = "NO_DATE_COLUMN"
	ErrTypeMissingMetricColumns ErrorType = "MISSING_METRIC_COLUMNS"
	ErrTypeNoUsableDatedRows    ErrorType = "NO_USABLE_DATED_ROWS"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// TypeOf returns the ErrorType carried by err, if err is an AppError.
func TypeOf(err error) (ErrorType, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type, true
	}
	return "", false
}

// IsAnalysisFailure reports whether err is one of the four named analysis
// failure kinds. Callers branch on this to fall back to an empty-state view
// instead of treating the error as a system fault.
func IsAnalysisFailure(err error) bool {
	switch t, _ := TypeOf(err); t {
	case ErrTypeEmptyInput, ErrTypeNoDateColumn, ErrTypeMissingMetricColumns, ErrTypeNoUsableDatedRows:
		return true
	}
	return false
}

// Helper functions for common error types

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewAppValidationError creates a validation error for AppError type
func NewAppValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("%s not found", resource), nil)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewEmptyInputError reports that the export contained no records at all.
func NewEmptyInputError() *AppError {
	return NewAppError(ErrTypeEmptyInput, "the export contains no data rows", nil)
}

// NewNoDateColumnError reports that no column produced a single parseable date.
func NewNoDateColumnError() *AppError {
	return NewAppError(ErrTypeNoDateColumn, "no column in the export could be recognized as a date column", nil)
}

// NewMissingMetricColumnsError reports that one or both mandatory metric
// columns could not be detected; the message names which.
func NewMissingMetricColumnsError(missing ...string) *AppError {
	return NewAppError(ErrTypeMissingMetricColumns,
		fmt.Sprintf("required metric column(s) could not be detected: %s", strings.Join(missing, ", ")), nil)
}

// NewNoUsableDatedRowsError reports that a date column was detected but no
// individual row carried a resolvable date value.
func NewNoUsableDatedRowsError() *AppError {
	return NewAppError(ErrTypeNoUsableDatedRows, "no row in the export carries a resolvable date", nil)
}
