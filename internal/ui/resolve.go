package ui

import (
	htmluierrors "github.com/accompanyhq/htmlui/pkg/errors"
)

// Resolve turns a (kind, size, variant) triple into the ordered class
// token list for that combination. Ordering is significant: base tokens
// first, then size (geometry), then variant (color), so later tokens win
// when the utility cascade applies declarations in order.
//
// Resolve is pure. Keys outside the kind's closed sets fail hard; no
// default is ever substituted.
func Resolve(kind Kind, size Size, variant Variant) ([]string, error) {
	base, err := baseClasses(kind)
	if err != nil {
		return nil, err
	}
	geometry, err := sizeClasses(kind, size)
	if err != nil {
		return nil, err
	}
	color, err := variantClasses(kind, variant)
	if err != nil {
		return nil, err
	}

	classes := make([]string, 0, len(base)+len(geometry)+len(color))
	classes = append(classes, base...)
	classes = append(classes, geometry...)
	classes = append(classes, color...)
	return classes, nil
}

func baseClasses(kind Kind) ([]string, error) {
	switch kind {
	case KindButton:
		return []string{
			"inline-flex", "items-center", "justify-center", "gap-2",
			"font-medium", "transition-colors",
			"focus:outline-none", "focus:ring-2", "focus:ring-[var(--color-ring)]", "focus:ring-offset-2",
			"rounded-[var(--radius-md)]",
		}, nil
	case KindBadge:
		return []string{"inline-flex", "items-center", "font-medium", "rounded-[var(--radius-sm)]"}, nil
	default:
		return nil, htmluierrors.NewUnknownKeyError("kind", kind.String())
	}
}

func sizeClasses(kind Kind, size Size) ([]string, error) {
	switch kind {
	case KindButton:
		switch size {
		case SizeSM:
			return []string{"h-8", "px-3", "text-sm"}, nil
		case SizeMD:
			return []string{"h-10", "px-4", "text-sm"}, nil
		case SizeLG:
			return []string{"h-11", "px-6", "text-base"}, nil
		case SizeXLG:
			return []string{"h-12", "px-8", "text-lg"}, nil
		case SizeIcon:
			return []string{"h-10", "w-10", "p-0"}, nil
		}
	case KindBadge:
		switch size {
		case SizeSM:
			return []string{"px-2", "py-0.5", "text-xs"}, nil
		case SizeMD:
			return []string{"px-2.5", "py-0.5", "text-sm"}, nil
		case SizeLG:
			return []string{"px-3", "py-1", "text-sm"}, nil
		}
	}
	return nil, htmluierrors.NewUnknownKeyError("size", size.String())
}

func variantClasses(kind Kind, variant Variant) ([]string, error) {
	switch kind {
	case KindButton:
		switch variant {
		case VariantPrimary:
			return []string{
				"bg-[var(--color-primary)]", "text-[var(--color-primary-fg)]",
				"hover:bg-[var(--color-primary-hover)]",
			}, nil
		case VariantSecondary:
			return []string{
				"bg-[var(--color-secondary)]", "text-[var(--color-secondary-fg)]",
				"hover:bg-[var(--color-secondary-hover)]",
			}, nil
		case VariantDestructive:
			return []string{
				"bg-[var(--color-destructive)]", "text-[var(--color-destructive-fg)]",
				"hover:bg-[var(--color-destructive-hover)]",
			}, nil
		case VariantOutline:
			return []string{
				"border", "border-[var(--color-border)]", "bg-transparent",
				"text-[var(--color-fg)]", "hover:bg-[var(--color-surface-hover)]",
			}, nil
		case VariantGhost:
			return []string{"bg-transparent", "text-[var(--color-fg)]", "hover:bg-[var(--color-surface-hover)]"}, nil
		case VariantLink:
			return []string{"bg-transparent", "text-[var(--color-primary)]", "underline-offset-4", "hover:underline"}, nil
		}
	case KindBadge:
		switch variant {
		case VariantPrimary:
			return []string{"bg-[var(--color-primary)]", "text-[var(--color-primary-fg)]"}, nil
		case VariantSecondary:
			return []string{"bg-[var(--color-secondary)]", "text-[var(--color-secondary-fg)]"}, nil
		case VariantDestructive:
			return []string{"bg-[var(--color-destructive)]", "text-[var(--color-destructive-fg)]"}, nil
		case VariantOutline:
			return []string{"border", "border-[var(--color-border)]", "text-[var(--color-fg)]"}, nil
		}
	}
	return nil, htmluierrors.NewUnknownKeyError("variant", variant.String())
}

// IconSizeClasses returns the glyph sizing classes matching a button size.
// The icon composer never sizes glyphs itself.
func IconSizeClasses(size Size) string {
	switch size {
	case SizeSM:
		return "h-3.5 w-3.5"
	case SizeLG, SizeXLG:
		return "h-5 w-5"
	default:
		return "h-4 w-4"
	}
}

// DefaultDisabledClass styles the non-interactive state when the caller
// does not override it.
const DefaultDisabledClass = "cursor-not-allowed"

// stateClasses are emitted by state-dependent markup rather than the
// resolver tables: the disabled override default and the spinner glyph.
func stateClasses() []string {
	return []string{
		DefaultDisabledClass,
		"animate-spin", "opacity-25", "opacity-75",
	}
}

// EmittedClasses enumerates every class token any valid render combination
// can produce: the full (kind x size x variant) resolver output, the
// state-dependent classes, and the glyph sizing classes. Build tooling
// feeds this to the CSS compiler's safelist so dynamically composed
// classes survive dead-code elimination.
func EmittedClasses() []string {
	seen := make(map[string]struct{})
	var classes []string
	add := func(tokens ...string) {
		for _, token := range tokens {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			classes = append(classes, token)
		}
	}

	for _, kind := range Kinds() {
		for _, size := range SizesFor(kind) {
			for _, variant := range VariantsFor(kind) {
				resolved, err := Resolve(kind, size, variant)
				if err != nil {
					// Kinds/SizesFor/VariantsFor enumerate the closed sets;
					// a failure means the tables and the sets disagree.
					panic(err)
				}
				add(resolved...)
			}
		}
	}

	add(stateClasses()...)
	for _, kind := range Kinds() {
		for _, size := range SizesFor(kind) {
			for _, token := range splitClasses(IconSizeClasses(size)) {
				add(token)
			}
		}
	}

	return classes
}
