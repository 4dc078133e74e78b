// Package errors provides standardized error handling for the catalog
// service and its HTTP surface.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeDatasetInvalid      ErrorCode = "DATASET_INVALID"
	ErrCodeCatalogReloadFailed ErrorCode = "CATALOG_RELOAD_FAILED"
	ErrCodeListingNotFound     ErrorCode = "LISTING_NOT_FOUND"
	ErrCodeInvalidFacetValue   ErrorCode = "INVALID_FACET_VALUE"

	ErrCodeStorageQueryFailed  ErrorCode = "STORAGE_QUERY_FAILED"
	ErrCodeStorageInsertFailed ErrorCode = "STORAGE_INSERT_FAILED"
	ErrCodeCacheUnavailable    ErrorCode = "CACHE_UNAVAILABLE"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// New creates a StandardError with the given code and message.
func New(code ErrorCode, message string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// Wrap creates a StandardError carrying the underlying error as details.
func Wrap(err error, code ErrorCode, message string) *StandardError {
	e := New(code, message)
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

// WithMetadata attaches structured context to the error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// HTTPStatus maps an error code to the status the REST layer responds with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeListingNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidFacetValue:
		return http.StatusBadRequest
	case ErrCodeDatasetInvalid:
		return http.StatusUnprocessableEntity
	case ErrCodeStorageQueryFailed, ErrCodeStorageInsertFailed,
		ErrCodeCacheUnavailable, ErrCodeCatalogReloadFailed, ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
