package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWorkers is returned when the worker count is below 1.
	ErrInvalidWorkers = errors.New("worker count must be ≥ 1")
	// ErrInvalidWindow is returned when the window length is below 1.
	ErrInvalidWindow = errors.New("window length must be ≥ 1")
	// ErrOddWindow is returned when the bisect policy is paired with an odd window.
	ErrOddWindow = errors.New("bisect policy requires an even window length")
	// ErrInvalidPolicy is returned for an unknown palindrome policy.
	ErrInvalidPolicy = errors.New("unknown palindrome policy")
)

// ConfigError reports which Config field was rejected.
//
// The sentinel cause can be matched with errors.Is.
type ConfigError struct {
	Field string
	Value int
	cause error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %d: %v", e.Field, e.Value, e.cause)
}

func (e *ConfigError) Unwrap() error { return e.cause }
