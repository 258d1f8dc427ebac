// Package display turns client events into rendered terminal lines: it
// formats the fixed-width sender column, applies the escape table, records
// messages in the session log, and writes ANSI output.
package display

import (
	"strings"

	"github.com/skeinchat/skein/pkg/ansi"
	"github.com/skeinchat/skein/pkg/styledtext"
)

// Sender column layout.
const (
	nickTripSeparator = " "
	textSeparator     = "| "
	nicknameSize      = 24
	tripSize          = 6

	senderColumnSize = nicknameSize + tripSize + len(nickTripSeparator) + len(textSeparator)
)

// SenderKind selects the marker shown in place of a nick.
type SenderKind int

const (
	// SenderNone renders no name, only the separator column.
	SenderNone SenderKind = iota
	// SenderServer marks informational server lines with "*".
	SenderServer
	// SenderWarn marks server warnings with "!".
	SenderWarn
	// SenderUser renders the user's nick.
	SenderUser
)

// Theme carries the styles applied to rendered lines.
type Theme struct {
	Trip   ansi.Style
	Nick   ansi.Style
	Server ansi.Style
	Warn   ansi.Style
}

// DefaultTheme matches the stock terminal look: dark italic trips, bold
// server markers, bold warnings.
func DefaultTheme() Theme {
	return Theme{
		Trip:   ansi.Style{FG: ansi.RGB(0x33, 0x33, 0x33), Effects: ansi.Italic},
		Nick:   ansi.Style{},
		Server: ansi.Style{Effects: ansi.Bold},
		Warn:   ansi.Style{Effects: ansi.Bold},
	}
}

// FormatSender builds the fixed-width sender column. The trip, when
// present, is styled and separated from the name; the whole column is
// left-padded to a constant width so message bodies align. Padding is
// inserted at the front in break-apart mode so the trip's styling shifts
// with it instead of swallowing the spaces.
func (th Theme) FormatSender(kind SenderKind, nick, trip string) *styledtext.Text {
	text := styledtext.New("")
	if trip != "" {
		text.AppendStyled(trip, th.Trip)
		text.AppendSource(nickTripSeparator)
	}

	switch kind {
	case SenderNone:
	case SenderServer:
		text.AppendStyled("*", th.Server)
	case SenderWarn:
		text.AppendStyled("!", th.Warn)
	case SenderUser:
		if th.Nick.IsPlain() {
			text.AppendSource(nick)
		} else {
			text.AppendStyled(nick, th.Nick)
		}
	}

	text.AppendSource(textSeparator)
	if text.Len() < senderColumnSize {
		pad := strings.Repeat(" ", senderColumnSize-text.Len())
		text.Insert(0, pad, styledtext.BreakApart)
	}
	return text
}
