package model

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when an external tool exceeds its time budget.
	ErrTimeout = errors.New("operation timed out")
	// ErrUnsupported is returned by a Builder that does not offer an operation.
	ErrUnsupported = errors.New("operation not supported by builder")
)

// ConfigError reports a grading spec that cannot be used. It is fatal and
// never graded as zero.
type ConfigError struct {
	Unit   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Unit == "" {
		return "configuration error: " + e.Reason
	}

	return fmt.Sprintf("configuration error in unit %q: %s", e.Unit, e.Reason)
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// BuildError reports a failed build or tool invocation.
type BuildError struct {
	Phase  string
	Output string
	Err    error
}

func (e *BuildError) Error() string {
	if e.Err == nil {
		return e.Phase + " failed"
	}

	return fmt.Sprintf("%s failed: %v", e.Phase, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was caused by a timeout.
func (e *BuildError) Timeout() bool {
	return errors.Is(e.Err, ErrTimeout)
}

// NonRetriableError marks a failure that must not be retried.
type NonRetriableError struct {
	Err error
}

func (e *NonRetriableError) Error() string {
	return e.Err.Error()
}

func (e *NonRetriableError) Unwrap() error {
	return e.Err
}

// NonRetriable wraps err so that retry loops give up immediately.
func NonRetriable(err error) error {
	if err == nil {
		return nil
	}

	return &NonRetriableError{Err: err}
}

// IsNonRetriable reports whether err is, or wraps, a NonRetriableError.
func IsNonRetriable(err error) bool {
	var nonRetriable *NonRetriableError
	return errors.As(err, &nonRetriable)
}
