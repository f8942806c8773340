package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMissingName, "no name in %s", "METADATA")

	if err.Code != ErrCodeMissingName {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMissingName)
	}

	if err.Message != "no name in METADATA" {
		t.Errorf("Message = %v, want %v", err.Message, "no name in METADATA")
	}

	expected := "MISSING_NAME: no name in METADATA"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeInvalidPath, cause, "read site-packages")

	if err.Code != ErrCodeInvalidPath {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidPath)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_PATH: read site-packages: permission denied"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeMissingVersion, "test"),
			code:     ErrCodeMissingVersion,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeMissingVersion, "test"),
			code:     ErrCodeMissingName,
			expected: false,
		},
		{
			name:     "outer code",
			err:      Wrap(ErrCodeInvalidPath, New(ErrCodeMissingName, "inner"), "outer"),
			code:     ErrCodeInvalidPath,
			expected: true,
		},
		{
			name:     "inner code",
			err:      Wrap(ErrCodeInvalidPath, New(ErrCodeMissingName, "inner"), "outer"),
			code:     ErrCodeMissingName,
			expected: true,
		},
		{
			name:     "through fmt wrapping",
			err:      fmt.Errorf("build: %w", New(ErrCodeInvalidDependencyConstraint, "bad")),
			code:     ErrCodeInvalidDependencyConstraint,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeMissingName,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeMissingName,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidFormat, "test"),
			expected: ErrCodeInvalidFormat,
		},
		{
			name:     "wrapped returns outermost",
			err:      Wrap(ErrCodeInvalidPath, New(ErrCodeMissingName, "inner"), "outer"),
			expected: ErrCodeInvalidPath,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeMissingName, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "wrapped Error",
			err:      Wrap(ErrCodeInvalidPath, New(ErrCodeMissingName, "no name"), "parse foo/METADATA"),
			expected: "parse foo/METADATA: no name",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
