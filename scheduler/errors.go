package scheduler

import "fmt"

// SchedError is a custom error type for scheduling errors
type SchedError struct {
	Message string
}

func (e SchedError) Error() string {
	return fmt.Sprintf("scheduling error: %s", e.Message)
}

// ErrEmptyInput is returned when derived metrics are requested for a run
// with no requests (average and throughput are undefined over zero requests).
var ErrEmptyInput = SchedError{Message: "empty request list"}

// ErrInvalidConfig creates an error for invalid configuration
func ErrInvalidConfig(msg string) error {
	return SchedError{Message: fmt.Sprintf("invalid config: %s", msg)}
}

// ErrInvalidInput creates an error for malformed request input
func ErrInvalidInput(msg string) error {
	return SchedError{Message: fmt.Sprintf("invalid input: %s", msg)}
}
