package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("theme.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "theme.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "theme.yaml")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("safelist.content[0]", "glob is empty", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "safelist.content[0]", validationErr.Field)
	require.Contains(t, validationErr.Message, "glob is empty")
}

func TestMissingTokenErrorNamesTokenAndMode(t *testing.T) {
	t.Parallel()

	err := NewMissingTokenError("color-primary", "dark")

	var missingErr *MissingTokenError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, "color-primary", missingErr.Token)
	require.Equal(t, "dark", missingErr.Mode)
	require.Contains(t, err.Error(), "color-primary")
	require.Contains(t, err.Error(), "dark")
}

func TestIconNotFoundErrorPrefersPath(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("file does not exist")
	err := NewIconNotFoundError("upload", "assets/upload.svg", underlying)

	var iconErr *IconNotFoundError
	require.ErrorAs(t, err, &iconErr)
	require.Equal(t, "upload", iconErr.Name)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "assets/upload.svg")
	require.NotContains(t, err.Error(), `name "upload"`)
}

func TestIconNotFoundErrorFallsBackToName(t *testing.T) {
	t.Parallel()

	err := NewIconNotFoundError("folder", "", nil)
	require.Contains(t, err.Error(), `name "folder"`)
}

func TestUnknownKeyErrorIncludesKindContext(t *testing.T) {
	t.Parallel()

	err := NewUnknownKeyError("size", "xxl")

	var keyErr *UnknownKeyError
	require.ErrorAs(t, err, &keyErr)
	require.Equal(t, "size", keyErr.Kind)
	require.Equal(t, "xxl", keyErr.Key)
	require.Contains(t, err.Error(), `unknown size key: "xxl"`)
}
