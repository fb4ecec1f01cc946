package domain

import (
	"errors"
	"fmt"
)

// ReplaceRequest asks for one term to be replaced in one record.
type ReplaceRequest struct {
	// Kind is the source the record lives in.
	Kind SourceKind `json:"kind"`

	// RecordID is the record identifier within its source.
	RecordID int64 `json:"record_id"`

	// Field optionally names the text field. When empty the adapter's
	// single text field for the record is used.
	Field string `json:"field,omitempty"`

	// Term is the text to replace, matched whole-word and case-insensitively.
	Term string `json:"term"`

	// Replacement is the new text.
	Replacement string `json:"replacement"`
}

// ReplaceResult acknowledges a successful replace.
type ReplaceResult struct {
	// Ref is the record field that was rewritten.
	Ref RecordRef `json:"ref"`

	// Term is the replaced term.
	Term string `json:"term"`

	// Replacement is the text written in its place.
	Replacement string `json:"replacement"`

	// Occurrences is how many whole-word occurrences were replaced.
	Occurrences int `json:"occurrences"`

	// RevisionID identifies the snapshot taken before the write.
	// Empty when the source keeps no revisions or the snapshot failed.
	RevisionID string `json:"revision_id,omitempty"`
}

// ReplacePreview describes what a replace would write.
type ReplacePreview struct {
	// Ref is the record field that would be rewritten.
	Ref RecordRef `json:"ref"`

	// Before is the current field text.
	Before string `json:"before"`

	// After is the field text after substitution.
	After string `json:"after"`

	// Occurrences is how many whole-word occurrences would be replaced.
	Occurrences int `json:"occurrences"`
}

// ReplaceOutcome classifies a replace that did not succeed.
type ReplaceOutcome string

// Replace outcomes.
const (
	// OutcomeRejected means nothing was attempted; the request or match was invalid.
	OutcomeRejected ReplaceOutcome = "rejected"

	// OutcomeFailed means the store failed while writing.
	OutcomeFailed ReplaceOutcome = "failed"
)

// RejectReason is the machine-readable reason of a rejected or failed replace.
type RejectReason string

// Reject reasons.
const (
	ReasonInvalidContext RejectReason = "invalid_context"
	ReasonRecordNotFound RejectReason = "record_not_found"
	ReasonTermNotFound   RejectReason = "term_not_found"
	ReasonWriteError     RejectReason = "write_error"
)

// ReplaceError reports a replace that was rejected or failed.
// It unwraps to the underlying domain sentinel or store error.
type ReplaceError struct {
	Outcome ReplaceOutcome
	Reason  RejectReason
	Err     error
}

// Error implements error.
func (e *ReplaceError) Error() string {
	return fmt.Sprintf("replace %s (%s): %v", e.Outcome, e.Reason, e.Err)
}

// Unwrap returns the underlying error.
func (e *ReplaceError) Unwrap() error {
	return e.Err
}

// Rejected builds a rejection error.
func Rejected(reason RejectReason, err error) *ReplaceError {
	return &ReplaceError{Outcome: OutcomeRejected, Reason: reason, Err: err}
}

// Failed builds a failure error.
func Failed(reason RejectReason, err error) *ReplaceError {
	return &ReplaceError{Outcome: OutcomeFailed, Reason: reason, Err: err}
}

// AsReplaceError extracts a ReplaceError from an error chain.
func AsReplaceError(err error) (*ReplaceError, bool) {
	var re *ReplaceError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
