// Package errors provides centralized error definitions and error handling utilities
// for ptree. It defines the sentinel errors raised while scanning the process table,
// typed errors that carry scan context, and a severity the command layer logs
// skipped processes at.
//
// # Error Types
//
// Two kinds of failures come out of a scan:
//   - ScanError: the process source cannot be enumerated at all (fatal)
//   - RecordError: a single process could not be read or parsed (recoverable)
//
// ValidationError covers invalid configuration and flag values.
//
// # Usage
//
//	err := errors.NewRecordError(4242, "read status", errors.ErrProcessGone)
//	if errors.Is(err, errors.ErrProcessGone) { ... }
//
//	var scanErr *errors.ScanError
//	if errors.As(err, &scanErr) { ... }
//
//	logLevel := errors.GetSeverity(err)
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/sys/unix"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that are reported but do not stop the run.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that abort the run.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Scan-related sentinel errors
var (
	// ErrProcUnavailable indicates that the process table cannot be listed.
	ErrProcUnavailable = New("process table unavailable")
	// ErrProcessGone indicates that a process exited while it was being read.
	ErrProcessGone = New("process exited during scan")
	// ErrMalformedRecord indicates that a process file could not be parsed.
	ErrMalformedRecord = New("malformed process record")
	// ErrMissingField indicates that a required status field was absent.
	ErrMissingField = New("missing status field")
	// ErrCycle indicates that parent links loop back onto an ancestor.
	ErrCycle = New("parent cycle detected")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrInvalidPolicy indicates an unknown root policy name.
	ErrInvalidPolicy = New("invalid root policy")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// PtreeError is the base interface for all ptree errors.
type PtreeError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity
}

// baseError provides common functionality for all error types.
type baseError struct {
	message  string
	cause    error
	severity Severity
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// ScanError is returned when the process source itself cannot be read.
// It always aborts the run.
//
// Example:
//
//	err := errors.NewScanError("list processes", cause).WithPath("/proc")
//	fmt.Println(err) // "scan error [path=/proc]: list processes: process table unavailable: ..."
type ScanError struct {
	baseError
	Path string
}

// NewScanError creates a new ScanError.
func NewScanError(message string, cause error) *ScanError {
	return &ScanError{
		baseError: baseError{
			message:  message,
			cause:    cause,
			severity: SeverityCritical,
		},
	}
}

// WithPath adds the source path to the error context.
func (e *ScanError) WithPath(path string) *ScanError {
	e.Path = path
	return e
}

// Error returns the formatted error message.
func (e *ScanError) Error() string {
	prefix := "scan error"
	if e.Path != "" {
		prefix = fmt.Sprintf("scan error [path=%s]", e.Path)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ScanError) Is(target error) bool {
	if _, ok := target.(*ScanError); ok {
		return true
	}
	if target == ErrProcUnavailable {
		return true
	}
	return e.baseError.Is(target)
}

// RecordError describes a single process that was skipped.
//
// Example:
//
//	err := errors.NewRecordError(42, "parse status", errors.ErrMissingField).WithField("PPid")
//	fmt.Println(err) // "record error [pid=42, field=PPid]: parse status: missing status field"
type RecordError struct {
	baseError
	PID   uint32
	Field string
}

// NewRecordError creates a new RecordError. A cause satisfying
// fs.ErrNotExist or ESRCH is normalized to also match ErrProcessGone, and a
// process that exited mid-scan is routine, so it only rates SeverityDebug.
func NewRecordError(pid uint32, message string, cause error) *RecordError {
	if cause != nil && !errors.Is(cause, ErrProcessGone) &&
		(errors.Is(cause, fs.ErrNotExist) || errors.Is(cause, unix.ESRCH)) {
		cause = fmt.Errorf("%w: %w", ErrProcessGone, cause)
	}
	severity := SeverityWarning
	if errors.Is(cause, ErrProcessGone) {
		severity = SeverityDebug
	}
	return &RecordError{
		baseError: baseError{
			message:  message,
			cause:    cause,
			severity: severity,
		},
		PID: pid,
	}
}

// WithField adds the offending status field to the error context.
func (e *RecordError) WithField(field string) *RecordError {
	e.Field = field
	return e
}

// Error returns the formatted error message.
func (e *RecordError) Error() string {
	parts := []string{fmt.Sprintf("pid=%d", e.PID)}
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	prefix := fmt.Sprintf("record error [%s]", strings.Join(parts, ", "))
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *RecordError) Is(target error) bool {
	if _, ok := target.(*RecordError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("unknown output format")
//	err = err.WithField("render.output").WithValue("xml")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:  message,
			severity: SeverityError,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement PtreeError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var ptreeErr PtreeError
	if As(err, &ptreeErr) {
		return ptreeErr.Severity()
	}

	return SeverityError
}

// IsBrokenPipe reports whether err came from writing to a closed pipe.
func IsBrokenPipe(err error) bool {
	return err != nil && Is(err, unix.EPIPE)
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to render tree")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
