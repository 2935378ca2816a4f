// Package xserrors provides structured error types for xstruct.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: malformed XML in a single document
//   - IOError: a document or directory that could not be read
//   - ConfigError: invalid configuration, fatal at startup
//   - ResourceLimitError: resource exhaustion (nesting depth, attribute count)
//
// # Usage with errors.As
//
//	node, err := shape.New().Extract(data)
//	if err != nil {
//	    var parseErr *xserrors.ParseError
//	    if errors.As(err, &parseErr) {
//	        fmt.Printf("bad XML at line %d: %s\n", parseErr.Line, parseErr.Message)
//	    }
//	}
package xserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates an XML parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrIO indicates a file could not be read or written.
	ErrIO = errors.New("io error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// ParseError represents a failure to parse an XML document.
type ParseError struct {
	// Path is the file path or source identifier ("" if parsed from memory)
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the ErrParse sentinel.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a ParseError with the given message.
func NewParseError(path, message string) *ParseError {
	return &ParseError{Path: path, Message: message}
}

// IOError represents a failure to read or write a file.
type IOError struct {
	// Path is the file or directory path
	Path string
	// Op is the operation that failed ("read", "write", "walk")
	Op string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *IOError) Error() string {
	msg := "io error"
	if e.Op != "" {
		msg = e.Op + " error"
	}
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the ErrIO sentinel.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates an IOError wrapping cause.
func NewIOError(path, op string, cause error) *IOError {
	return &IOError{Path: path, Op: op, Cause: cause}
}

// ConfigError represents an invalid configuration.
// Configuration errors are fatal: they abort the run before any document
// is processed.
type ConfigError struct {
	// Path is the configuration file path ("" for programmatic config)
	Path string
	// Message describes what is invalid
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the ErrConfig sentinel.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ResourceLimitError represents a resource limit that was exceeded
// while parsing a document.
type ResourceLimitError struct {
	// Limit is the name of the limit ("depth", "attributes")
	Limit string
	// Value is the configured maximum
	Value int
	// Path is the file path or source identifier ("" if parsed from memory)
	Path string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := fmt.Sprintf("%s limit exceeded (max %d)", e.Limit, e.Value)
	if e.Path != "" {
		msg += " in " + e.Path
	}
	return msg
}

// Is reports whether this error matches the ErrResourceLimit sentinel.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
