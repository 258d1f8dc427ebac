package display

import (
	"fmt"
	"io"
	"sync"

	"github.com/skeinchat/skein/pkg/ansi"
	"github.com/skeinchat/skein/pkg/escapes"
	"github.com/skeinchat/skein/pkg/session"
	"github.com/skeinchat/skein/pkg/styledtext"
)

// Display renders chat lines to a writer. Every incoming string passes
// through the escape table before it reaches the terminal, and every line
// is recorded in the session log.
type Display struct {
	mu      sync.Mutex
	w       io.Writer
	theme   Theme
	escapes *escapes.Table
	log     *session.Log
}

// New builds a display writing to w. A nil table disables escaping; a nil
// log disables history.
func New(w io.Writer, theme Theme, table *escapes.Table, log *session.Log) *Display {
	return &Display{w: w, theme: theme, escapes: table, log: log}
}

// SetTheme swaps the styles used for new lines.
func (d *Display) SetTheme(theme Theme) {
	d.mu.Lock()
	d.theme = theme
	d.mu.Unlock()
}

// SetEscapes swaps the substitution table used for new lines.
func (d *Display) SetEscapes(table *escapes.Table) {
	d.mu.Lock()
	d.escapes = table
	d.mu.Unlock()
}

// AddMessage renders a user chat line: sender column, then the escaped
// message body.
func (d *Display) AddMessage(nick, trip, body string) {
	d.line(SenderUser, nick, trip, body)
	d.record(session.NewMessage(session.KindUser, nick, trip, body))
}

// Info renders an informational server line.
func (d *Display) Info(body string) {
	d.line(SenderServer, "", "", body)
	d.record(session.NewMessage(session.KindServer, "", "", body))
}

// Warn renders a server warning line.
func (d *Display) Warn(body string) {
	d.line(SenderWarn, "", "", body)
	d.record(session.NewMessage(session.KindServerWarn, "", "", body))
}

// Emote renders a third-person action line.
func (d *Display) Emote(body string) {
	d.line(SenderNone, "", "", body)
	d.record(session.NewMessage(session.KindEmote, "", "", body))
}

// Plain writes an unstyled line, still escaped and logged as server text.
func (d *Display) Plain(body string) {
	d.line(SenderNone, "", "", body)
	d.record(session.NewMessage(session.KindServer, "", "", body))
}

// line formats, escapes, renders and writes one chat line. The lock covers
// the whole operation so theme and table swaps never tear a line.
func (d *Display) line(kind SenderKind, nick, trip, body string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	line := d.theme.FormatSender(kind, nick, trip)
	bodyText := styledtext.New(body)
	if d.escapes != nil {
		line = d.escapes.Apply(line)
		bodyText = d.escapes.Apply(bodyText)
	}
	line.Append(bodyText)
	fmt.Fprintln(d.w, ansi.Render(line))
}

func (d *Display) record(msg session.Message) {
	if d.log != nil {
		d.log.Add(msg)
	}
}
