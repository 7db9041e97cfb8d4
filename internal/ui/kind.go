package ui

import (
	htmluierrors "github.com/accompanyhq/htmlui/pkg/errors"
)

// Kind identifies a component family with its own closed size and variant
// key sets.
type Kind int

const (
	KindButton Kind = iota
	KindBadge
)

func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindBadge:
		return "badge"
	default:
		return "unknown"
	}
}

// ParseKind maps an external kind key onto the closed Kind set.
func ParseKind(key string) (Kind, error) {
	switch key {
	case "button":
		return KindButton, nil
	case "badge":
		return KindBadge, nil
	default:
		return 0, htmluierrors.NewUnknownKeyError("kind", key)
	}
}

// Size is a semantic sizing category controlling geometry classes.
type Size int

const (
	SizeSM Size = iota
	SizeMD
	SizeLG
	SizeXLG
	SizeIcon
)

func (s Size) String() string {
	switch s {
	case SizeSM:
		return "sm"
	case SizeMD:
		return "md"
	case SizeLG:
		return "lg"
	case SizeXLG:
		return "xlg"
	case SizeIcon:
		return "icon"
	default:
		return "unknown"
	}
}

// ParseSize maps an external size key onto the closed Size set.
func ParseSize(key string) (Size, error) {
	switch key {
	case "sm":
		return SizeSM, nil
	case "md":
		return SizeMD, nil
	case "lg":
		return SizeLG, nil
	case "xlg":
		return SizeXLG, nil
	case "icon":
		return SizeIcon, nil
	default:
		return 0, htmluierrors.NewUnknownKeyError("size", key)
	}
}

// Variant is a semantic style category controlling color classes.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
	VariantDestructive
	VariantOutline
	VariantGhost
	VariantLink
)

func (v Variant) String() string {
	switch v {
	case VariantPrimary:
		return "primary"
	case VariantSecondary:
		return "secondary"
	case VariantDestructive:
		return "destructive"
	case VariantOutline:
		return "outline"
	case VariantGhost:
		return "ghost"
	case VariantLink:
		return "link"
	default:
		return "unknown"
	}
}

// ParseVariant maps an external variant key onto the closed Variant set.
func ParseVariant(key string) (Variant, error) {
	switch key {
	case "primary":
		return VariantPrimary, nil
	case "secondary":
		return VariantSecondary, nil
	case "destructive":
		return VariantDestructive, nil
	case "outline":
		return VariantOutline, nil
	case "ghost":
		return VariantGhost, nil
	case "link":
		return VariantLink, nil
	default:
		return 0, htmluierrors.NewUnknownKeyError("variant", key)
	}
}

// ElementType is the rendered element's type attribute.
type ElementType int

const (
	TypeButton ElementType = iota
	TypeSubmit
	TypeReset
)

func (t ElementType) String() string {
	switch t {
	case TypeSubmit:
		return "submit"
	case TypeReset:
		return "reset"
	default:
		return "button"
	}
}

// Kinds returns every component kind.
func Kinds() []Kind {
	return []Kind{KindButton, KindBadge}
}

// SizesFor returns the closed size key set for a kind.
func SizesFor(kind Kind) []Size {
	switch kind {
	case KindBadge:
		return []Size{SizeSM, SizeMD, SizeLG}
	default:
		return []Size{SizeSM, SizeMD, SizeLG, SizeXLG, SizeIcon}
	}
}

// VariantsFor returns the closed variant key set for a kind.
func VariantsFor(kind Kind) []Variant {
	switch kind {
	case KindBadge:
		return []Variant{VariantPrimary, VariantSecondary, VariantDestructive, VariantOutline}
	default:
		return []Variant{VariantPrimary, VariantSecondary, VariantDestructive, VariantOutline, VariantGhost, VariantLink}
	}
}
