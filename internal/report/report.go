// Package report prints a resolved match, as the Portuguese text dump of the
// game or as a JSON/YAML document.
package report

import (
	"fmt"
	"io"

	"supertrunfo/internal/game/match"

	"golang.org/x/text/language"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer writes a whole match report.
type Renderer interface {
	Render(w io.Writer, m *match.Match) error
}

// New picks the renderer for format. locale only affects the text format;
// empty means plain "%.2f" numbers.
func New(format, locale string) (Renderer, error) {
	switch format {
	case FormatText, "":
		if locale == "" {
			return textRenderer{printf: plainPrintf}, nil
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		return textRenderer{printf: localePrintf(tag)}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatYAML:
		return yamlRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// Interactive reports whether prompts can share stdout with the report.
func Interactive(format string) bool {
	return format == FormatText || format == ""
}
