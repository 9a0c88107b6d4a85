package fasta

import "fmt"

// LoadError reports a failed sequence load. No partial sequence accompanies it.
type LoadError struct {
	Path  string
	cause error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load sequence: %v", e.cause)
	}
	return fmt.Sprintf("load sequence %s: %v", e.Path, e.cause)
}

func (e *LoadError) Unwrap() error { return e.cause }

// NewLoadError wraps err as a *LoadError for path. A nil err stays nil.
func NewLoadError(path string, err error) error {
	if err == nil {
		return nil
	}
	return &LoadError{Path: path, cause: err}
}

func loadErr(path string, err error) error { return NewLoadError(path, err) }
