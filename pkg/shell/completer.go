package shell

import (
	"strings"

	"github.com/chzyer/readline"

	"github.com/skeinchat/skein/pkg/client"
)

// commands is the static list of available shell commands (without the / prefix).
var commands = []string{
	"help",
	"h",
	"users",
	"history",
	"save",
	"quit",
	"exit",
	"q",
}

// Completer provides tab completion for commands and nicknames. It
// implements the readline.AutoCompleter interface.
type Completer struct {
	roster *client.Roster
}

// NewCompleter creates a completer backed by the channel roster for
// dynamic nick completion.
func NewCompleter(roster *client.Roster) *Completer {
	return &Completer{roster: roster}
}

var _ readline.AutoCompleter = (*Completer)(nil)

// Do implements readline.AutoCompleter. A leading word starting with "/"
// completes against the command list; any word starting with "@" completes
// against the nicks currently online.
func (c *Completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	if len(line) == 0 || pos <= 0 {
		return nil, 0
	}
	if pos > len(line) {
		pos = len(line)
	}

	lineStr := string(line[:pos])
	wordStart := findWordStart(lineStr)
	currentWord := lineStr[wordStart:]
	if currentWord == "" {
		return nil, 0
	}

	if strings.HasPrefix(currentWord, "/") && wordStart == 0 {
		return c.completeCommand(currentWord)
	}
	if strings.HasPrefix(currentWord, "@") {
		return c.completeNick(currentWord)
	}
	return nil, 0
}

// findWordStart returns the index where the current word begins.
func findWordStart(s string) int {
	lastSpace := strings.LastIndex(s, " ")
	lastTab := strings.LastIndex(s, "\t")
	wordStart := lastSpace
	if lastTab > wordStart {
		wordStart = lastTab
	}
	return wordStart + 1
}

func (c *Completer) completeCommand(prefix string) ([][]rune, int) {
	cmdPrefix := strings.TrimPrefix(prefix, "/")

	var matches [][]rune
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, cmdPrefix) {
			suffix := cmd[len(cmdPrefix):] + " "
			matches = append(matches, []rune(suffix))
		}
	}
	return matches, len(prefix)
}

func (c *Completer) completeNick(prefix string) ([][]rune, int) {
	if c.roster == nil {
		return nil, 0
	}
	nickPrefix := strings.TrimPrefix(prefix, "@")

	var matches [][]rune
	for _, nick := range c.roster.OnlineNicks() {
		if strings.HasPrefix(nick, nickPrefix) {
			suffix := nick[len(nickPrefix):] + " "
			matches = append(matches, []rune(suffix))
		}
	}
	return matches, len(prefix)
}
