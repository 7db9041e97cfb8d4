package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	htmluierrors "github.com/accompanyhq/htmlui/pkg/errors"
)

func TestResolveAllValidPairs(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		for _, size := range SizesFor(kind) {
			for _, variant := range VariantsFor(kind) {
				first, err := Resolve(kind, size, variant)
				require.NoError(t, err, "%s/%s/%s", kind, size, variant)
				require.NotEmpty(t, first)

				second, err := Resolve(kind, size, variant)
				require.NoError(t, err)
				assert.Equal(t, first, second, "resolution must be order-stable")
			}
		}
	}
}

func TestResolveOrdersSizeBeforeVariant(t *testing.T) {
	t.Parallel()

	classes, err := Resolve(KindButton, SizeMD, VariantPrimary)
	require.NoError(t, err)

	assert.Less(t, indexOf(classes, "h-10"), indexOf(classes, "bg-[var(--color-primary)]"),
		"geometry tokens must precede color tokens in the cascade")
	assert.Less(t, indexOf(classes, "inline-flex"), indexOf(classes, "h-10"),
		"base tokens must precede geometry tokens")
}

func TestResolveUnknownKeysFailHard(t *testing.T) {
	t.Parallel()

	var keyErr *htmluierrors.UnknownKeyError

	_, err := Resolve(KindButton, Size(99), VariantPrimary)
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "size", keyErr.Kind)

	_, err = Resolve(KindButton, SizeMD, Variant(99))
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "variant", keyErr.Kind)

	_, err = Resolve(Kind(99), SizeMD, VariantPrimary)
	require.ErrorAs(t, err, &keyErr)
}

func TestResolveEnforcesKindScopedSets(t *testing.T) {
	t.Parallel()

	var keyErr *htmluierrors.UnknownKeyError

	_, err := Resolve(KindBadge, SizeXLG, VariantPrimary)
	require.ErrorAs(t, err, &keyErr, "badge has no xlg size")

	_, err = Resolve(KindBadge, SizeMD, VariantGhost)
	require.ErrorAs(t, err, &keyErr, "badge has no ghost variant")
}

func TestParseKeys(t *testing.T) {
	t.Parallel()

	kind, err := ParseKind("button")
	require.NoError(t, err)
	assert.Equal(t, KindButton, kind)

	size, err := ParseSize("xlg")
	require.NoError(t, err)
	assert.Equal(t, SizeXLG, size)

	variant, err := ParseVariant("destructive")
	require.NoError(t, err)
	assert.Equal(t, VariantDestructive, variant)

	var keyErr *htmluierrors.UnknownKeyError
	_, err = ParseSize("unknown")
	require.ErrorAs(t, err, &keyErr)
	_, err = ParseVariant("loud")
	require.ErrorAs(t, err, &keyErr)
	_, err = ParseKind("carousel")
	require.ErrorAs(t, err, &keyErr)
}

func TestElementTypeStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "button", TypeButton.String())
	assert.Equal(t, "submit", TypeSubmit.String())
	assert.Equal(t, "reset", TypeReset.String())
}

func TestIconSizeClasses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "h-3.5 w-3.5", IconSizeClasses(SizeSM))
	assert.Equal(t, "h-4 w-4", IconSizeClasses(SizeMD))
	assert.Equal(t, "h-5 w-5", IconSizeClasses(SizeLG))
	assert.Equal(t, "h-5 w-5", IconSizeClasses(SizeXLG))
	assert.Equal(t, "h-4 w-4", IconSizeClasses(SizeIcon))
}

func TestEmittedClasses(t *testing.T) {
	t.Parallel()

	classes := EmittedClasses()
	require.NotEmpty(t, classes)

	seen := make(map[string]struct{}, len(classes))
	for _, class := range classes {
		_, dup := seen[class]
		assert.False(t, dup, "duplicate emitted class %q", class)
		seen[class] = struct{}{}
	}

	for _, expected := range []string{
		"bg-[var(--color-primary)]",
		"hover:bg-[var(--color-destructive-hover)]",
		"focus:ring-[var(--color-ring)]",
		"rounded-[var(--radius-md)]",
		"rounded-[var(--radius-sm)]",
		DefaultDisabledClass,
		"animate-spin",
		"h-3.5",
	} {
		_, ok := seen[expected]
		assert.True(t, ok, "expected %q in emitted class set", expected)
	}
}

func indexOf(values []string, target string) int {
	for i, value := range values {
		if value == target {
			return i
		}
	}
	return -1
}
