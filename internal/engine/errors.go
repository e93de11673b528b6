// FILE: internal/engine/errors.go
package engine

import (
	"errors"
	"fmt"
)

// ErrNoCandidate signals an empty plan catalog for a run. Callers surface it
// as "no recommendation available" for the account, never as a crash.
var ErrNoCandidate = errors.New("no candidate plan available")

// ErrInvalidTransition signals an approval transition outside the fixed
// lifecycle (e.g. rejected -> approved).
var ErrInvalidTransition = errors.New("invalid approval transition")

// InputError marks a malformed input record. Validation rejects the record
// before ranking; one bad record never aborts its batch siblings.
type InputError struct {
	Record string // "account" or "plan"
	Key    string // External key or name identifying the record
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Record, e.Key, e.Reason)
}

// IsInputError reports whether err is (or wraps) an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
