package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrToolNotFound ErrorType = iota
	ErrToolExec
	ErrEmptyOutput
	ErrFileOp
	ErrInvalidConfig
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrToolNotFound:
		return "ToolNotFound"
	case ErrToolExec:
		return "ToolExec"
	case ErrEmptyOutput:
		return "EmptyOutput"
	case ErrFileOp:
		return "FileOp"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// PeekError represents a failure at the tool-invocation or CLI boundary.
// The badging parser itself never fails; anything it cannot match degrades
// to a zero value instead.
type PeekError struct {
	Type ErrorType
	Path string
	Err  error
}

// Error implements the error interface
func (e *PeekError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *PeekError) Unwrap() error {
	return e.Err
}
