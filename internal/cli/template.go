package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/combinator/internal/colour"
	"github.com/jmylchreest/combinator/internal/combo"
)

var (
	_ pflag.Value = (*Template)(nil)
	_ pflag.Value = (*colour.ContrastLevel)(nil)
	_ pflag.Value = (*combo.Mode)(nil)
)

// Template picks the text colour drawn on both backgrounds.
type Template string

const (
	// TemplateLight draws black text.
	TemplateLight Template = "light"
	// TemplateDark draws white text.
	TemplateDark Template = "dark"
)

// ValidTemplates returns the supported templates.
func ValidTemplates() []Template {
	return []Template{TemplateLight, TemplateDark}
}

// TextColour returns the template's text colour.
func (t Template) TextColour() colour.RGB {
	if t == TemplateDark {
		return colour.RGB{R: 255, G: 255, B: 255}
	}
	return colour.RGB{}
}

// String implements pflag.Value.
func (t Template) String() string {
	return string(t)
}

// Set implements pflag.Value.
func (t *Template) Set(s string) error {
	tmpl := Template(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(ValidTemplates(), tmpl) {
		return fmt.Errorf("invalid template: %s (valid: light, dark)", s)
	}
	*t = tmpl
	return nil
}

// Type implements pflag.Value.
func (t *Template) Type() string {
	return "template"
}
