// Package errors provides standardized error types and helpers for the CedarScript codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrNotLoaded indicates a translation table has not been loaded yet
	ErrNotLoaded = errors.New("not loaded")
	// ErrLoadFailed indicates a translation table failed to load
	ErrLoadFailed = errors.New("load failed")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownBook indicates a book id absent from the canonical catalog
	ErrUnknownBook = errors.New("unknown book")
)

// VerseNotFoundError reports a verse absent from a loaded translation table.
// It is distinct from "translation not yet loaded" so callers can render
// "missing in this translation" differently from "still loading".
type VerseNotFoundError struct {
	Translation string // Translation id (e.g., "kjv")
	Book        string // Canonical book id
	Chapter     int
	Verse       int
	Err         error // Underlying error, if any
}

func (e *VerseNotFoundError) Error() string {
	if e.Translation != "" {
		return fmt.Sprintf("verse not found in %s: %s %d:%d", e.Translation, e.Book, e.Chapter, e.Verse)
	}
	return fmt.Sprintf("verse not found: %s %d:%d", e.Book, e.Chapter, e.Verse)
}

func (e *VerseNotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// NotLoadedError reports a translation whose table is not in the cache yet.
// A load may have been started on the caller's behalf; re-invoking after the
// load resolves is the expected recovery.
type NotLoadedError struct {
	Translation string // Translation id
	Loading     bool   // true if a load is currently in flight
}

func (e *NotLoadedError) Error() string {
	if e.Loading {
		return fmt.Sprintf("translation %s is still loading", e.Translation)
	}
	return fmt.Sprintf("translation %s is not loaded", e.Translation)
}

func (e *NotLoadedError) Unwrap() error {
	return ErrNotLoaded
}

// LoadError reports a failed translation table load. The failure is sticky:
// all verses of the translation resolve to this error until a retry succeeds.
type LoadError struct {
	Translation string // Translation id
	Err         error  // Underlying I/O or parse error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to load translation %s: %v", e.Translation, e.Err)
	}
	return fmt.Sprintf("failed to load translation %s", e.Translation)
}

func (e *LoadError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrLoadFailed
}

// Is reports ErrLoadFailed for any LoadError regardless of the wrapped cause.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailed
}

// ParseError represents a parsing or deserialization error
type ParseError struct {
	Format  string // Format being parsed (e.g., "JSON", "OSIS XML", "reference")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "open", "query")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for creating common errors

// NewVerseNotFound creates a VerseNotFoundError
func NewVerseNotFound(translation, book string, chapter, verse int) *VerseNotFoundError {
	return &VerseNotFoundError{
		Translation: translation,
		Book:        book,
		Chapter:     chapter,
		Verse:       verse,
	}
}

// NewNotLoaded creates a NotLoadedError
func NewNotLoaded(translation string, loading bool) *NotLoadedError {
	return &NotLoadedError{
		Translation: translation,
		Loading:     loading,
	}
}

// NewLoad creates a LoadError
func NewLoad(translation string, err error) *LoadError {
	return &LoadError{
		Translation: translation,
		Err:         err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
