package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apierrors "salescli/internal/errors"
)

// ValidationMiddleware provides request validation using struct tags.
type ValidationMiddleware struct {
	validator    *validator.Validate
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	maxBodySize  int64
}

// NewValidationMiddleware creates a new validation middleware.
func NewValidationMiddleware(logger *slog.Logger, errorHandler *apierrors.ErrorHandler, maxBodySize int64) *ValidationMiddleware {
	v := validator.New()

	v.RegisterValidation("iso8601", isISO8601)
	v.RegisterValidation("filename", isValidFilename)

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if maxBodySize <= 0 {
		maxBodySize = 10 << 20
	}

	return &ValidationMiddleware{
		validator:    v,
		logger:       logger.With(slog.String("component", "validation_middleware")),
		errorHandler: errorHandler,
		maxBodySize:  maxBodySize,
	}
}

// ValidateRequest enforces the body size limit and, for JSON payloads,
// well-formedness. Multipart uploads pass through untouched; their size is
// enforced by the handler's multipart reader.
func (m *ValidationMiddleware) ValidateRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		if r.ContentLength > m.maxBodySize {
			m.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
				http.StatusRequestEntityTooLarge,
				"PAYLOAD_TOO_LARGE",
				"Request body exceeds maximum allowed size",
				map[string]interface{}{
					"max_size": m.maxBodySize,
					"size":     r.ContentLength,
				},
			))
			return
		}

		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") && r.Body != nil && r.ContentLength > 0 {
			body, err := io.ReadAll(io.LimitReader(r.Body, m.maxBodySize))
			if err != nil {
				m.logger.ErrorContext(r.Context(), "failed to read request body",
					slog.String("error", err.Error()),
					slog.String("request_id", GetReqID(r.Context())),
				)
				m.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
				return
			}

			// Restore body for handlers
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !json.Valid(body) {
				m.errorHandler.HandleError(w, r, apierrors.New(
					http.StatusBadRequest,
					"INVALID_JSON",
					"Request body contains invalid JSON",
				))
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// ValidateStruct validates a struct and returns validation errors.
func (m *ValidationMiddleware) ValidateStruct(v interface{}) error {
	if err := m.validator.Struct(v); err != nil {
		var validationErrors []apierrors.ValidationError

		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, apierrors.ValidationError{
				Field:   err.Field(),
				Message: formatValidationError(err),
			})
		}

		return apierrors.NewValidationErrors(validationErrors)
	}
	return nil
}

// ContentTypeValidator ensures requests have an allowed content type.
func ContentTypeValidator(contentTypes ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodDelete {
				next.ServeHTTP(w, r)
				return
			}

			contentType := r.Header.Get("Content-Type")
			if contentType == "" {
				apierrors.WriteError(w, apierrors.New(
					http.StatusBadRequest,
					"MISSING_CONTENT_TYPE",
					"Content-Type header is required",
				))
				return
			}

			for _, allowed := range contentTypes {
				if strings.HasPrefix(contentType, allowed) {
					next.ServeHTTP(w, r)
					return
				}
			}

			apierrors.WriteError(w, apierrors.NewWithDetails(
				http.StatusUnsupportedMediaType,
				"UNSUPPORTED_MEDIA_TYPE",
				"Unsupported content type",
				map[string]interface{}{
					"content_type": contentType,
					"allowed":      contentTypes,
				},
			))
		})
	}
}

// formatValidationError formats validation error messages.
func formatValidationError(err validator.FieldError) string {
	field := err.Field()
	tag := err.Tag()
	param := err.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Replace(param, " ", ", ", -1))
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "iso8601", "datetime":
		return fmt.Sprintf("%s must be a valid ISO8601 date", field)
	case "filename":
		return fmt.Sprintf("%s must be a valid filename", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}

// isISO8601 validates YYYY-MM-DD date strings.
func isISO8601(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	if len(date) != 10 {
		return false
	}
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return false
	}
	return len(parts[0]) == 4 && len(parts[1]) == 2 && len(parts[2]) == 2
}

// isValidFilename rejects empty names, traversal sequences and separators.
func isValidFilename(fl validator.FieldLevel) bool {
	filename := fl.Field().String()
	if filename == "" {
		return false
	}
	if strings.Contains(filename, "..") || strings.Contains(filename, "/") || strings.Contains(filename, "\\") {
		return false
	}
	return len(filename) <= 255
}
