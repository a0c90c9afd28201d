package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a domain failure.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindValidation   Kind = "VALIDATION_ERROR"
	KindConflict     Kind = "CONFLICT"
	KindForbidden    Kind = "FORBIDDEN"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindInternal     Kind = "INTERNAL_ERROR"
)

// DomainError is the single failure shape returned by the service layer.
// Every core operation either succeeds or returns one of these, carrying a
// kind and a human-readable reason; handlers translate the kind to an HTTP
// status without inspecting the message.
type DomainError struct {
	Kind    Kind   `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return e.Message
}

// NotFound reports that a referenced entity is absent.
func NotFound(message string) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: message}
}

// Validation reports malformed input or a domain-level contradiction.
func Validation(message string) *DomainError {
	return &DomainError{Kind: KindValidation, Message: message}
}

// Conflict reports a duplicate, a capacity overflow, or an invalid state
// transition.
func Conflict(message string) *DomainError {
	return &DomainError{Kind: KindConflict, Message: message}
}

// Forbidden reports an authorization denial.
func Forbidden(message string) *DomainError {
	return &DomainError{Kind: KindForbidden, Message: message}
}

// Unauthorized reports a missing or unusable identity.
func Unauthorized(message string) *DomainError {
	return &DomainError{Kind: KindUnauthorized, Message: message}
}

// Internal wraps unexpected failures that should not leak details.
func Internal(message string) *DomainError {
	return &DomainError{Kind: KindInternal, Message: message}
}

// KindOf extracts the kind from an error, defaulting to KindInternal for
// anything that is not a DomainError.
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

var statusByKind = map[Kind]int{
	KindNotFound:     http.StatusNotFound,
	KindValidation:   http.StatusBadRequest,
	KindConflict:     http.StatusConflict,
	KindForbidden:    http.StatusForbidden,
	KindUnauthorized: http.StatusUnauthorized,
	KindInternal:     http.StatusInternalServerError,
}

// StatusCode maps a failure kind to its HTTP status.
func StatusCode(err error) int {
	if code, ok := statusByKind[KindOf(err)]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Respond writes the error to the response. Non-domain errors are masked as
// internal errors so storage details never reach the client.
func Respond(c *gin.Context, err error) {
	var de *DomainError
	if !errors.As(err, &de) {
		de = Internal("Internal server error")
	}
	c.JSON(StatusCode(de), gin.H{"error": de})
}

// RespondUnauthorized writes a 401 without requiring a prior error value.
func RespondUnauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": Unauthorized(message)})
}

// RespondForbidden writes a 403 without requiring a prior error value.
func RespondForbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Insufficient permissions"
	}
	c.JSON(http.StatusForbidden, gin.H{"error": Forbidden(message)})
}

// RespondBadRequest writes a 400 for request decoding failures.
func RespondBadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request body"
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": Validation(message)})
}
