package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when a decorator has nothing to delegate to.
var ErrProviderUnavailable = errors.New("provider unavailable")

// DataFetchError reports a failed upstream fetch for one league.
type DataFetchError struct {
	League     string
	Resource   string
	StatusCode int
	Err        error
}

func (e *DataFetchError) Error() string {
	msg := fmt.Sprintf("failed to load %s for %s", e.Resource, e.League)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *DataFetchError) Unwrap() error {
	return e.Err
}

// AsDataFetchError attempts to unwrap an error into a DataFetchError.
func AsDataFetchError(err error) (*DataFetchError, bool) {
	var fetchErr *DataFetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// WrapFetchError classifies err as a DataFetchError for league unless it already is one.
func WrapFetchError(league, resource string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsDataFetchError(err); ok {
		return err
	}
	return &DataFetchError{League: league, Resource: resource, Err: err}
}
