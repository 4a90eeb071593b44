// Package errors provides custom error types for the outlines system.
// These errors enable programmatic error checking for the validation
// pipeline and the reference-inventory resolver, and carry enough context
// (review file paths, attempted lookups) for an operator to act on.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's tree matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's tree that matches target.
// It's an alias for the standard library errors.As for convenience.
var As = errors.As

// Common sentinel errors for the outlines system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed indicates that one or more outline checks failed
	ErrValidationFailed = errors.New("validation failed")

	// ErrCRSMismatch indicates two collections do not share a coordinate
	// reference system
	ErrCRSMismatch = errors.New("coordinate reference system mismatch")

	// ErrUnsupportedFormat indicates a file format the storage layer
	// cannot read or write
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ValidationFailedError is returned when one or more of the outline checks
// (overlap, validity, multi-part) fail. The offending geometries have
// already been written to review files by the time this error is returned.
type ValidationFailedError struct {
	Name        string   // collection name the checks ran against
	Overlaps    int      // number of overlapping pairs found
	Invalid     int      // number of invalid geometries found
	MultiPart   int      // number of multi-part geometries found
	ReviewFiles []string // review files written for inspection
}

// Error implements the error interface
func (e *ValidationFailedError) Error() string {
	var parts []string
	if e.Overlaps > 0 {
		parts = append(parts, fmt.Sprintf("%d overlapping pairs", e.Overlaps))
	}
	if e.Invalid > 0 {
		parts = append(parts, fmt.Sprintf("%d invalid geometries", e.Invalid))
	}
	if e.MultiPart > 0 {
		parts = append(parts, fmt.Sprintf("%d multi-part geometries", e.MultiPart))
	}
	msg := fmt.Sprintf("validation of %s failed: %s", e.Name, strings.Join(parts, ", "))
	if len(e.ReviewFiles) > 0 {
		msg += fmt.Sprintf(" (review: %s)", strings.Join(e.ReviewFiles, ", "))
	}
	return msg
}

// Is implements errors.Is support
func (e *ValidationFailedError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewValidationFailedError creates a new ValidationFailedError
func NewValidationFailedError(name string, overlaps, invalid, multi int, reviewFiles []string) *ValidationFailedError {
	return &ValidationFailedError{
		Name:        name,
		Overlaps:    overlaps,
		Invalid:     invalid,
		MultiPart:   multi,
		ReviewFiles: reviewFiles,
	}
}

// ReferenceNotFoundError is returned by the region resolver when a
// reference inventory file cannot be located under either expected layout.
type ReferenceNotFoundError struct {
	Dir    string   // directory that was searched
	Region string   // resolved canonical region name
	Paths  []string // paths that were attempted
}

// Error implements the error interface
func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("unable to find reference outlines for %s in %s (tried %s)",
		e.Region, e.Dir, strings.Join(e.Paths, ", "))
}

// Is implements errors.Is support
func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewReferenceNotFoundError creates a new ReferenceNotFoundError
func NewReferenceNotFoundError(dir, region string, paths []string) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{Dir: dir, Region: region, Paths: paths}
}

// ValidationError represents an invalid input value
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// CRSMismatchError is returned when an operation requires two collections
// to share a coordinate reference system and they do not.
type CRSMismatchError struct {
	Left  string
	Right string
}

// Error implements the error interface
func (e *CRSMismatchError) Error() string {
	return fmt.Sprintf("coordinate reference systems do not match: %q vs %q", e.Left, e.Right)
}

// Is implements errors.Is support
func (e *CRSMismatchError) Is(target error) bool {
	return target == ErrCRSMismatch
}

// NewCRSMismatchError creates a new CRSMismatchError
func NewCRSMismatchError(left, right string) *CRSMismatchError {
	return &CRSMismatchError{Left: left, Right: right}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "stat"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "geojson", "shapefile", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationFailed checks if an error is a validation failure
func IsValidationFailed(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// IsInvalidInput checks if an error is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsCRSMismatch checks if an error is a CRS mismatch error
func IsCRSMismatch(err error) bool {
	return errors.Is(err, ErrCRSMismatch)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
