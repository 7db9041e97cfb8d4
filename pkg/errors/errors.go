package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures build-configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MissingTokenError reports a theme token that is undefined in the
// requested display mode.
type MissingTokenError struct {
	Token string
	Mode  string
}

// NewMissingTokenError constructs a MissingTokenError.
func NewMissingTokenError(token, mode string) error {
	return &MissingTokenError{Token: token, Mode: mode}
}

func (e *MissingTokenError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("missing theme token: %q is not defined for mode %q", e.Token, e.Mode)
}

// IconNotFoundError reports an icon reference that resolves to no glyph.
type IconNotFoundError struct {
	Name string
	Path string
	Err  error
}

// NewIconNotFoundError constructs an IconNotFoundError.
func NewIconNotFoundError(name, path string, err error) error {
	return &IconNotFoundError{Name: name, Path: path, Err: err}
}

func (e *IconNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("icon not found: path %q", e.Path)
	}
	return fmt.Sprintf("icon not found: name %q", e.Name)
}

// Unwrap exposes the underlying error.
func (e *IconNotFoundError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownKeyError reports a size, variant or kind key outside a
// component's closed key set.
type UnknownKeyError struct {
	Kind string
	Key  string
}

// NewUnknownKeyError constructs an UnknownKeyError.
func NewUnknownKeyError(kind, key string) error {
	return &UnknownKeyError{Kind: kind, Key: key}
}

func (e *UnknownKeyError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown %s key: %q", e.Kind, e.Key)
}
