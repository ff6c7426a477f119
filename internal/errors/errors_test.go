package errors

import (
	"errors"
	"io/fs"
	"testing"
)

func TestReplacerError(t *testing.T) {
	tests := []struct {
		name        string
		errorType   ErrorType
		path        string
		message     string
		cause       error
		expectedMsg string
	}{
		{
			name:        "error with path",
			errorType:   ErrTypeFile,
			path:        "/path/to/firewall.conf",
			message:     "file not found",
			cause:       nil,
			expectedMsg: "file error for /path/to/firewall.conf: file not found",
		},
		{
			name:        "error without path",
			errorType:   ErrTypeConfig,
			path:        "",
			message:     "invalid configuration",
			cause:       nil,
			expectedMsg: "config error: invalid configuration",
		},
		{
			name:        "error with cause",
			errorType:   ErrTypeFile,
			path:        "/test.conf",
			message:     "access denied",
			cause:       errors.New("permission denied"),
			expectedMsg: "file error for /test.conf: access denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ReplacerError{
				Type:    tt.errorType,
				Path:    tt.path,
				Message: tt.message,
				Cause:   tt.cause,
			}

			if err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, err.Error())
			}

			if err.Unwrap() != tt.cause {
				t.Errorf("expected cause %v, got %v", tt.cause, err.Unwrap())
			}
		})
	}
}

func TestReplacerErrorIs(t *testing.T) {
	tests := []struct {
		name   string
		err1   *ReplacerError
		err2   error
		expect bool
	}{
		{
			name:   "same error type",
			err1:   &ReplacerError{Type: ErrTypeFile},
			err2:   &ReplacerError{Type: ErrTypeFile},
			expect: true,
		},
		{
			name:   "different error type",
			err1:   &ReplacerError{Type: ErrTypeFile},
			err2:   &ReplacerError{Type: ErrTypeConfig},
			expect: false,
		},
		{
			name:   "not a ReplacerError",
			err1:   &ReplacerError{Type: ErrTypeFile},
			err2:   errors.New("standard error"),
			expect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err1.Is(tt.err2)
			if result != tt.expect {
				t.Errorf("expected %v, got %v", tt.expect, result)
			}
		})
	}
}

func TestNewFileError(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		message string
		cause   error
	}{
		{
			name:    "basic file error",
			path:    "/test/firewall.conf",
			message: "read failed",
			cause:   nil,
		},
		{
			name:    "file error with cause",
			path:    "/test/firewall.conf",
			message: "write failed",
			cause:   errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFileError(tt.path, tt.message, tt.cause)

			if err == nil {
				t.Fatal("expected non-nil error")
			}
			if err.Type != ErrTypeFile {
				t.Errorf("expected type %s, got %s", ErrTypeFile, err.Type)
			}
			if err.Path != tt.path {
				t.Errorf("expected path %s, got %s", tt.path, err.Path)
			}
			if err.Message != tt.message {
				t.Errorf("expected message %s, got %s", tt.message, err.Message)
			}
			if err.Cause != tt.cause {
				t.Errorf("expected cause %v, got %v", tt.cause, err.Cause)
			}
		})
	}
}

func TestFileErrorConstructors(t *testing.T) {
	cause := errors.New("underlying io error")

	tests := []struct {
		name        string
		construct   func(string, error) error
		expectedMsg string
	}{
		{
			name: "file not found",
			construct: func(path string, cause error) error {
				return NewFileNotFoundError(path, cause)
			},
			expectedMsg: "file error for /protected/fw.conf: file not found",
		},
		{
			name: "file not writable",
			construct: func(path string, cause error) error {
				return NewFileNotWritableError(path, cause)
			},
			expectedMsg: "file error for /protected/fw.conf: file not writable",
		},
		{
			name: "file not readable",
			construct: func(path string, cause error) error {
				return NewFileNotReadableError(path, cause)
			},
			expectedMsg: "file error for /protected/fw.conf: file not readable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.construct("/protected/fw.conf", cause)

			if err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, err.Error())
			}
			if !errors.Is(err, &ReplacerError{Type: ErrTypeFile}) {
				t.Error("constructor result should match ErrTypeFile via errors.Is")
			}
			if !errors.Is(err, cause) {
				t.Error("constructor result should unwrap to its cause")
			}
		})
	}
}

func TestNewConfigError(t *testing.T) {
	tests := []struct {
		name    string
		message string
		cause   error
	}{
		{
			name:    "config error without cause",
			message: "old range and new range must have the same size",
			cause:   nil,
		},
		{
			name:    "config error with cause",
			message: "failed to parse range",
			cause:   errors.New("syntax error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfigError(tt.message, tt.cause)

			if err == nil {
				t.Fatal("expected non-nil error")
			}
			if err.Type != ErrTypeConfig {
				t.Errorf("expected type %s, got %s", ErrTypeConfig, err.Type)
			}
			if err.Message != tt.message {
				t.Errorf("expected message %s, got %s", tt.message, err.Message)
			}
		})
	}
}

func TestNewParsingError(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		message string
		cause   error
	}{
		{
			name:    "JSON parsing error",
			path:    "/data/mappings.json",
			message: "malformed JSON",
			cause:   nil,
		},
		{
			name:    "CSV parsing error",
			path:    "/data/mappings.csv",
			message: "invalid CSV format",
			cause:   errors.New("wrong number of fields"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewParsingError(tt.path, tt.message, tt.cause)

			if err == nil {
				t.Fatal("expected non-nil error")
			}
			if err.Type != ErrTypeParsing {
				t.Errorf("expected type %s, got %s", ErrTypeParsing, err.Type)
			}
			if err.Path != tt.path {
				t.Errorf("expected path %s, got %s", tt.path, err.Path)
			}
		})
	}
}

func TestWrapFileError(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		inputError error
		expectNil  bool
		expectKind any
	}{
		{
			name:       "nil error",
			path:       "/test/fw.conf",
			inputError: nil,
			expectNil:  true,
		},
		{
			name:       "not exist becomes FileNotFoundError",
			path:       "/missing/fw.conf",
			inputError: fs.ErrNotExist,
			expectKind: &FileNotFoundError{},
		},
		{
			name:       "permission becomes FileNotReadableError",
			path:       "/locked/fw.conf",
			inputError: fs.ErrPermission,
			expectKind: &FileNotReadableError{},
		},
		{
			name:       "generic error becomes FileError",
			path:       "/test/fw.conf",
			inputError: errors.New("generic error"),
			expectKind: &FileError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WrapFileError(tt.path, tt.inputError)

			if tt.expectNil {
				if result != nil {
					t.Errorf("expected nil error, got %v", result)
				}
				return
			}
			if result == nil {
				t.Fatal("expected error, got nil")
			}

			switch tt.expectKind.(type) {
			case *FileNotFoundError:
				if _, ok := result.(*FileNotFoundError); !ok {
					t.Errorf("expected *FileNotFoundError, got %T", result)
				}
			case *FileNotReadableError:
				if _, ok := result.(*FileNotReadableError); !ok {
					t.Errorf("expected *FileNotReadableError, got %T", result)
				}
			case *FileError:
				if _, ok := result.(*FileError); !ok {
					t.Errorf("expected *FileError, got %T", result)
				}
			}

			if !errors.Is(result, &ReplacerError{Type: ErrTypeFile}) {
				t.Error("wrapped error should match ErrTypeFile via errors.Is")
			}
		})
	}
}

func TestErrorTypeConstants(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{
			name:      "file error type",
			errorType: ErrTypeFile,
			expected:  "file",
		},
		{
			name:      "config error type",
			errorType: ErrTypeConfig,
			expected:  "config",
		},
		{
			name:      "parsing error type",
			errorType: ErrTypeParsing,
			expected:  "parsing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.errorType) != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, string(tt.errorType))
			}
		})
	}
}
