package types

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks invalid input parameters, never silently defaulted
	ErrConfiguration = errors.New("configuration error")
	// ErrDomain marks a geometrically degenerate evaluation, like a point on top of a source
	ErrDomain = errors.New("domain error")
	// ErrNumerical marks a failed numerical kernel, not recoverable by retrying
	ErrNumerical = errors.New("numerical error")
)

type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func NewConfigurationError(field string, value any, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrConfiguration, e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// DomainError reports the evaluation point Index that coincides with source SourceIndex
type DomainError struct {
	Index       int
	Point       complex128
	SourceIndex int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: evaluation point [%d] = %v coincides with source [%d]",
		ErrDomain, e.Index, e.Point, e.SourceIndex)
}

func (e *DomainError) Is(target error) bool { return target == ErrDomain }

type NumericalError struct {
	Component string
	Op        string
	Err       error
}

func (e *NumericalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s failed: %v", ErrNumerical, e.Component, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s failed", ErrNumerical, e.Component, e.Op)
}

func (e *NumericalError) Is(target error) bool { return target == ErrNumerical }

func (e *NumericalError) Unwrap() error { return e.Err }
