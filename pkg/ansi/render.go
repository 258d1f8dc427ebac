package ansi

import (
	"fmt"
	"strings"

	"github.com/skeinchat/skein/pkg/styledtext"
)

// reset returns the terminal to its default rendition.
const reset = "\033[0m"

// Render flattens a styled text and emits it as one string with SGR escape
// sequences around each styled region. Every byte of the buffer appears in
// the output exactly once; plain regions are emitted without escapes.
func Render(t *styledtext.Text) string {
	var b strings.Builder
	b.Grow(t.Len() + 16)

	for _, span := range t.Flatten(Style{}) {
		style, ok := span.Attr.(Style)
		content := span.Resolve(t.Source())
		if !ok || style.IsPlain() {
			b.WriteString(content)
			continue
		}
		b.WriteString(style.SGR())
		b.WriteString(content)
		b.WriteString(reset)
	}

	return b.String()
}

// SGR returns the escape sequence selecting the style's rendition. Plain
// styles return "".
func (s Style) SGR() string {
	if s.IsPlain() {
		return ""
	}

	params := make([]string, 0, 6)
	if s.Effects.Has(Bold) {
		params = append(params, "1")
	}
	if s.Effects.Has(Dim) {
		params = append(params, "2")
	}
	if s.Effects.Has(Italic) {
		params = append(params, "3")
	}
	if s.Effects.Has(Underline) {
		params = append(params, "4")
	}
	if s.FG.IsSet() {
		params = append(params, fmt.Sprintf("38;2;%d;%d;%d", s.FG.R, s.FG.G, s.FG.B))
	}
	if s.BG.IsSet() {
		params = append(params, fmt.Sprintf("48;2;%d;%d;%d", s.BG.R, s.BG.G, s.BG.B))
	}

	return "\033[" + strings.Join(params, ";") + "m"
}
