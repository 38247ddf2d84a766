package manifest

import "errors"

// ValidationError reports a single invalid or missing manifest field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// RejectionError signals that a manifest was rejected for a recoverable
// reason (missing section, invalid field, unknown gameType, unsatisfiable
// apiVersion). Callers skip the game and continue discovery. Fatal faults
// (unparseable JSON, I/O errors, path traversal) are ordinary errors and
// abort the wrapping operation.
type RejectionError struct {
	Reason string

	// NeedNewHFT is true when the rejection was caused by the manifest
	// requesting an API version newer than any installed runtime.
	NeedNewHFT bool
}

func (e *RejectionError) Error() string {
	return e.Reason
}

// IsRejection reports whether err is a soft manifest rejection.
func IsRejection(err error) bool {
	var re *RejectionError
	return errors.As(err, &re)
}

// AsRejection returns the RejectionError in err's chain, or nil.
func AsRejection(err error) *RejectionError {
	var re *RejectionError
	if errors.As(err, &re) {
		return re
	}
	return nil
}
