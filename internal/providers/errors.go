package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable is returned when a provider chain is missing its
// underlying provider.
var ErrProviderUnavailable = errors.New("provider unavailable")

// NotFoundError indicates the upstream has no data for the requested id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// AsNotFoundError attempts to unwrap an error into a NotFoundError.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nfErr *NotFoundError
	if errors.As(err, &nfErr) {
		return nfErr, true
	}
	return nil, false
}

// DataShapeError indicates the upstream returned data whose shape does not
// match the expected schema (wrong team count, out-of-range percentage,
// missing result set).
type DataShapeError struct {
	Reason string
}

func (e *DataShapeError) Error() string {
	return "unexpected data shape: " + e.Reason
}

// AsDataShapeError attempts to unwrap an error into a DataShapeError.
func AsDataShapeError(err error) (*DataShapeError, bool) {
	var dsErr *DataShapeError
	if errors.As(err, &dsErr) {
		return dsErr, true
	}
	return nil, false
}

// FormatError indicates a single malformed field value. Callers decide
// whether to substitute a default and continue or abort the request.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %s value %q", e.Field, e.Value)
}

// AsFormatError attempts to unwrap an error into a FormatError.
func AsFormatError(err error) (*FormatError, bool) {
	var fmtErr *FormatError
	if errors.As(err, &fmtErr) {
		return fmtErr, true
	}
	return nil, false
}

// TimeoutError indicates an upstream call exceeded its deadline.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("%s timed out after %s", e.Op, e.Timeout)
	}
	return e.Op + " timed out"
}

// AsTimeoutError attempts to unwrap an error into a TimeoutError.
func AsTimeoutError(err error) (*TimeoutError, bool) {
	var toErr *TimeoutError
	if errors.As(err, &toErr) {
		return toErr, true
	}
	return nil, false
}

// InsufficientDataError indicates a recap was requested for a game whose
// box score cannot support one. Raised before any text-generation call.
type InsufficientDataError struct {
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return "insufficient data for recap: " + e.Reason
}

// AsInsufficientDataError attempts to unwrap an error into an InsufficientDataError.
func AsInsufficientDataError(err error) (*InsufficientDataError, bool) {
	var idErr *InsufficientDataError
	if errors.As(err, &idErr) {
		return idErr, true
	}
	return nil, false
}

// RecapGenerationError wraps a failure from the text-generation
// collaborator. The underlying error is surfaced verbatim and never retried.
type RecapGenerationError struct {
	Err error
}

func (e *RecapGenerationError) Error() string {
	if e.Err == nil {
		return "recap generation failed"
	}
	return "recap generation failed: " + e.Err.Error()
}

func (e *RecapGenerationError) Unwrap() error {
	return e.Err
}

// AsRecapGenerationError attempts to unwrap an error into a RecapGenerationError.
func AsRecapGenerationError(err error) (*RecapGenerationError, bool) {
	var rgErr *RecapGenerationError
	if errors.As(err, &rgErr) {
		return rgErr, true
	}
	return nil, false
}
