package ui

import (
	"html/template"
	"sort"
	"strings"

	"github.com/accompanyhq/htmlui/internal/i18n"
	"github.com/accompanyhq/htmlui/internal/icons"
)

// ButtonRequest carries every parameter of a single button render. It is
// constructed per call and never retained; the renderer only reads it.
type ButtonRequest struct {
	Label    string
	IconName string
	IconPath string
	Size     Size
	Variant  Variant
	Type     ElementType
	Disabled bool
	Loading  bool

	// ExtraClasses are appended after all computed classes, exactly once,
	// never deduplicated against them.
	ExtraClasses string

	// DisabledClass overrides DefaultDisabledClass when non-empty.
	DisabledClass string

	// Attrs are emitted verbatim as element attributes. Keys are unique,
	// values are opaque; nothing is validated.
	Attrs map[string]string
}

// BadgeRequest carries the parameters of a badge render.
type BadgeRequest struct {
	Label        string
	Size         Size
	Variant      Variant
	ExtraClasses string
	Attrs        map[string]string
}

const buttonMacro = `<button type="{{.Type}}" role="button" class="{{.Classes}}" aria-label="{{.Label}}"{{if .Disabled}} disabled aria-disabled="true"{{end}}{{.Attrs}}>{{.Leading}}<span>{{.Label}}</span></button>`

const badgeMacro = `<span class="{{.Classes}}"{{.Attrs}}>{{.Label}}</span>`

type buttonData struct {
	Type     string
	Classes  string
	Label    string
	Disabled bool
	Attrs    template.HTMLAttr
	Leading  template.HTML
}

type badgeData struct {
	Classes string
	Label   string
	Attrs   template.HTMLAttr
}

// Renderer composes resolved classes, glyphs and state-dependent markup
// into widget fragments. It reads only immutable configuration and is safe
// for concurrent use; every render is pure computation over its request.
type Renderer struct {
	icons      *icons.Registry
	translator i18n.Translator
	button     *template.Template
	badge      *template.Template
}

// NewRenderer builds a Renderer over the given glyph registry and
// translation lookup.
func NewRenderer(registry *icons.Registry, translator i18n.Translator) *Renderer {
	if translator == nil {
		translator = i18n.Noop()
	}
	return &Renderer{
		icons:      registry,
		translator: translator,
		button:     template.Must(template.New("button").Parse(buttonMacro)),
		badge:      template.Must(template.New("badge").Parse(badgeMacro)),
	}
}

// Button renders an actionable widget. Leading content is one of three
// mutually exclusive states: loading (spinner, icon suppressed), idle with
// icon, or idle without. Disabled combines freely with loading; the
// spinner wins for content while the non-interactive semantics still
// apply.
func (r *Renderer) Button(req ButtonRequest) (template.HTML, error) {
	classes, err := Resolve(KindButton, req.Size, req.Variant)
	if err != nil {
		return "", err
	}

	leading, err := r.leadingContent(req)
	if err != nil {
		return "", err
	}

	if req.Disabled {
		disabledClass := req.DisabledClass
		if disabledClass == "" {
			disabledClass = DefaultDisabledClass
		}
		classes = append(classes, disabledClass)
	}
	classes = append(classes, splitClasses(req.ExtraClasses)...)

	data := buttonData{
		Type:     req.Type.String(),
		Classes:  strings.Join(classes, " "),
		Label:    r.translator.Translate(req.Label),
		Disabled: req.Disabled,
		Attrs:    passthroughAttrs(req.Attrs),
		Leading:  leading,
	}

	var out strings.Builder
	if err := r.button.Execute(&out, data); err != nil {
		return "", err
	}
	return template.HTML(out.String()), nil
}

// Badge renders a non-interactive label chip against the badge key sets.
func (r *Renderer) Badge(req BadgeRequest) (template.HTML, error) {
	classes, err := Resolve(KindBadge, req.Size, req.Variant)
	if err != nil {
		return "", err
	}
	classes = append(classes, splitClasses(req.ExtraClasses)...)

	data := badgeData{
		Classes: strings.Join(classes, " "),
		Label:   r.translator.Translate(req.Label),
		Attrs:   passthroughAttrs(req.Attrs),
	}

	var out strings.Builder
	if err := r.badge.Execute(&out, data); err != nil {
		return "", err
	}
	return template.HTML(out.String()), nil
}

func (r *Renderer) leadingContent(req ButtonRequest) (template.HTML, error) {
	sizing := IconSizeClasses(req.Size)

	if req.Loading {
		return icons.Spinner(sizing), nil
	}
	if req.IconName == "" && req.IconPath == "" {
		return "", nil
	}
	return r.icons.Resolve(req.IconName, req.IconPath, sizing)
}

// passthroughAttrs serializes the attribute mapping sorted by key so that
// identical requests produce byte-identical markup. Values are
// HTML-escaped; keys are emitted as given.
func passthroughAttrs(attrs map[string]string) template.HTMLAttr {
	if len(attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out strings.Builder
	for _, key := range keys {
		out.WriteByte(' ')
		out.WriteString(key)
		out.WriteString(`="`)
		out.WriteString(template.HTMLEscapeString(attrs[key]))
		out.WriteByte('"')
	}
	return template.HTMLAttr(out.String())
}

func splitClasses(classes string) []string {
	return strings.Fields(classes)
}
