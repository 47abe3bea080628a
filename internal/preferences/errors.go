package preferences

import (
	"errors"
	"fmt"
)

// PersistenceParseError describes a stored blob that could not be used.
// It is logged and never returned from Load.
type PersistenceParseError struct {
	Key string
	Err error
}

func (e *PersistenceParseError) Error() string {
	return fmt.Sprintf("preferences: unusable value for %s: %v", e.Key, e.Err)
}

func (e *PersistenceParseError) Unwrap() error {
	return e.Err
}

// AsPersistenceParseError attempts to unwrap an error into a PersistenceParseError.
func AsPersistenceParseError(err error) (*PersistenceParseError, bool) {
	var pErr *PersistenceParseError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

var (
	errNotArray  = errors.New("expected a JSON array")
	errNotObject = errors.New("expected a JSON object")
)
