// Package help builds the styled command reference shown by /help. Lines
// are composed as styled text and rendered to ANSI at the end, so the same
// content could be flattened for any other output.
package help

import (
	"strings"

	"github.com/skeinchat/skein/pkg/ansi"
	"github.com/skeinchat/skein/pkg/styledtext"
)

var (
	headerStyle  = ansi.Style{FG: ansi.RGB(0x00, 0xaf, 0xaf), Effects: ansi.Bold}
	commandStyle = ansi.Style{FG: ansi.RGB(0x00, 0xaf, 0xaf)}
	argStyle     = ansi.Style{FG: ansi.RGB(0xaf, 0xaf, 0x00)}
	dimStyle     = ansi.Style{Effects: ansi.Dim}
)

// entry is one command line in the reference.
type entry struct {
	command string
	args    string
	desc    string
}

var entries = []entry{
	{"/help", "", "Show this reference"},
	{"/users", "", "List who is online"},
	{"/history", "[n]", "Show the last n messages (default 20)"},
	{"/save", "[path]", "Write the transcript to a file"},
	{"/quit", "", "Disconnect and exit"},
}

const commandColumn = 18

// Commands renders the command reference as ANSI text.
func Commands() string {
	var b strings.Builder

	header := styledtext.SingleSpan("Commands", headerStyle)
	b.WriteString(ansi.Render(header))
	b.WriteString("\n")

	for _, e := range entries {
		line := styledtext.New("  ")
		line.AppendStyled(e.command, commandStyle)
		if e.args != "" {
			line.AppendSource(" ")
			line.AppendStyled(e.args, argStyle)
		}
		if pad := commandColumn - line.Len(); pad > 0 {
			line.AppendSource(strings.Repeat(" ", pad))
		}
		line.AppendStyled(e.desc, dimStyle)
		b.WriteString(ansi.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	tip := styledtext.New("Anything else is sent to the channel. ")
	tip.AppendStyled("@nick", argStyle)
	tip.AppendSource(" completes against who is online.")
	b.WriteString(ansi.Render(tip))
	b.WriteString("\n")

	return b.String()
}
