// Package extraction turns raw document text into a validated resume value
// by delegating to the language-model service.
package extraction

import (
	"errors"
	"fmt"
)

// UnreadableDocumentError indicates the source document could not be turned
// into usable text at all (corrupt, empty, unsupported).
type UnreadableDocumentError struct {
	Cause error
}

func (e *UnreadableDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unreadable document: %v", e.Cause)
	}
	return "unreadable document"
}

func (e *UnreadableDocumentError) Unwrap() error {
	return e.Cause
}

// ExternalServiceError indicates the call to the extraction service failed
// (network, quota, timeout). No partial result is kept.
type ExternalServiceError struct {
	Cause error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("extraction service call failed: %v", e.Cause)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError indicates the service responded but its payload did
// not parse into the expected structured shape. Raw keeps the offending text
// for diagnostics; the user-facing surface treats this like a service error.
type MalformedResponseError struct {
	Raw   string
	Cause error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed extraction response: %v", e.Cause)
	}
	return "malformed extraction response"
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// IsUnreadableDocument reports whether err is an UnreadableDocumentError.
func IsUnreadableDocument(err error) bool {
	var target *UnreadableDocumentError
	return errors.As(err, &target)
}

// IsMalformedResponse reports whether err is a MalformedResponseError.
func IsMalformedResponse(err error) bool {
	var target *MalformedResponseError
	return errors.As(err, &target)
}

// IsExternalService reports whether err is an ExternalServiceError.
func IsExternalService(err error) bool {
	var target *ExternalServiceError
	return errors.As(err, &target)
}
