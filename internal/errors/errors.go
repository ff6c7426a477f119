// Package errors provides a hierarchical error system for VLAN replacement
// operations. It implements typed errors that can be inspected and handled
// differently based on their category, so callers can tell a bad mapping file
// apart from an unwritable output path.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorType represents the category of error for classification and handling.
type ErrorType string

// Error type constants define the categories of errors that can occur while
// rewriting a configuration file. Callers match on these through errors.Is
// rather than comparing messages.
const (
	ErrTypeFile    ErrorType = "file"
	ErrTypeConfig  ErrorType = "config"
	ErrTypeParsing ErrorType = "parsing"
)

// ReplacerError is the base error type that provides structured error
// information: a category, an optional file path, a human-readable message
// and the underlying cause when one exists.
type ReplacerError struct {
	Type    ErrorType
	Path    string
	Message string
	Cause   error
}

func (e *ReplacerError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *ReplacerError) Unwrap() error {
	return e.Cause
}

// Is matches two ReplacerErrors by category, so errors.Is works across
// wrapped chains regardless of path or message.
func (e *ReplacerError) Is(target error) bool {
	t, ok := target.(*ReplacerError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// FileError represents file system operation errors and embeds ReplacerError
// to carry the affected path.
type FileError struct {
	*ReplacerError
}

// NewFileError creates a file operation error with path context.
func NewFileError(path, message string, cause error) *FileError {
	return &FileError{
		ReplacerError: &ReplacerError{
			Type:    ErrTypeFile,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// FileNotFoundError represents errors when the input or mapping file
// cannot be located.
type FileNotFoundError struct {
	*FileError
}

// NewFileNotFoundError creates a file not found error.
func NewFileNotFoundError(path string, cause error) *FileNotFoundError {
	return &FileNotFoundError{
		FileError: NewFileError(path, "file not found", cause),
	}
}

// FileNotWritableError represents errors when the output path cannot be
// written to.
type FileNotWritableError struct {
	*FileError
}

// NewFileNotWritableError creates a file write error.
func NewFileNotWritableError(path string, cause error) *FileNotWritableError {
	return &FileNotWritableError{
		FileError: NewFileError(path, "file not writable", cause),
	}
}

// FileNotReadableError represents errors when a file exists but cannot be
// read.
type FileNotReadableError struct {
	*FileError
}

// NewFileNotReadableError creates a file read error.
func NewFileNotReadableError(path string, cause error) *FileNotReadableError {
	return &FileNotReadableError{
		FileError: NewFileError(path, "file not readable", cause),
	}
}

// ConfigError represents configuration validation errors: missing replacement
// rules, malformed range flags, mismatched range sizes. These halt execution
// before any file is touched.
type ConfigError struct {
	*ReplacerError
}

// NewConfigError creates a configuration error without path context.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		ReplacerError: &ReplacerError{
			Type:    ErrTypeConfig,
			Message: message,
			Cause:   cause,
		},
	}
}

// ParsingError represents errors while reading a mapping table file:
// malformed JSON/CSV/YAML, non-numeric tokens, or VLAN IDs outside the
// valid range. The message names the offending entry.
type ParsingError struct {
	*ReplacerError
}

// NewParsingError creates a parsing error with file and context information.
func NewParsingError(path, message string, cause error) *ParsingError {
	return &ParsingError{
		ReplacerError: &ReplacerError{
			Type:    ErrTypeParsing,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// WrapFileError converts standard Go file errors into typed ReplacerError
// instances, classifying by the underlying fs error.
func WrapFileError(path string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NewFileNotFoundError(path, err)
	case errors.Is(err, fs.ErrPermission):
		return NewFileNotReadableError(path, err)
	default:
		return NewFileError(path, "file operation failed", err)
	}
}
