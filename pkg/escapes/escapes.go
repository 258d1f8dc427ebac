// Package escapes rewrites control characters in untrusted chat text into
// visible escape sequences before the text reaches the terminal.
package escapes

import "github.com/skeinchat/skein/pkg/styledtext"

// Rule maps one literal string to its replacement.
type Rule struct {
	From string
	To   string
}

// Table is an ordered list of replacement rules. Rules are applied in the
// order they were added, so earlier rules see the original text and later
// rules see the already-rewritten text.
type Table struct {
	rules []Rule
}

// New creates an empty table.
func New() *Table {
	return &Table{}
}

// Default returns the standard table covering the control characters a chat
// server should never be able to smuggle onto the terminal. Escape (0x1b) is
// included so remote text cannot inject its own ANSI sequences.
func Default() *Table {
	t := New()
	t.Add("\x00", "\\0")
	t.Add("\x01", "\\1")
	t.Add("\x1b", "\\e")
	t.Add("\x07", "\\a")
	t.Add("\r", "")
	return t
}

// Add appends a rule. Empty From values are ignored; there is nothing to
// match.
func (t *Table) Add(from, to string) {
	if from == "" {
		return
	}
	t.rules = append(t.rules, Rule{From: from, To: to})
}

// Rules returns the rules in application order.
func (t *Table) Rules() []Rule {
	return t.rules
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// Apply runs every rule over the text, keeping styles where the replacement
// machinery can. The input is not modified.
func (t *Table) Apply(text *styledtext.Text) *styledtext.Text {
	for _, rule := range t.rules {
		text = text.ReplaceStyled(rule.From, rule.To)
	}
	return text
}

// ApplyString is a convenience for escaping plain text.
func (t *Table) ApplyString(s string) *styledtext.Text {
	return t.Apply(styledtext.New(s))
}
