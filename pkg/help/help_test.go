package help

import (
	"regexp"
	"strings"
	"testing"
)

var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestCommandsListsEveryCommand(t *testing.T) {
	out := Commands()
	plain := sgrPattern.ReplaceAllString(out, "")

	for _, want := range []string{"/help", "/users", "/history", "/save", "/quit"} {
		if !strings.Contains(plain, want) {
			t.Errorf("reference missing %q:\n%s", want, plain)
		}
	}
	if !strings.HasPrefix(plain, "Commands\n") {
		t.Errorf("reference does not start with header:\n%s", plain)
	}
}

func TestCommandsColumnsAlign(t *testing.T) {
	plain := sgrPattern.ReplaceAllString(Commands(), "")

	var descCols []int
	for _, line := range strings.Split(plain, "\n") {
		if !strings.HasPrefix(line, "  /") {
			continue
		}
		idx := strings.Index(line, "  ")
		rest := line[2:]
		sep := strings.Index(rest, "  ")
		if sep == -1 {
			t.Fatalf("no column gap in %q (idx %d)", line, idx)
		}
		descCols = append(descCols, len(rest)-len(strings.TrimLeft(rest[sep:], " ")))
	}
	if len(descCols) == 0 {
		t.Fatal("no command lines found")
	}
	for _, col := range descCols[1:] {
		if col != descCols[0] {
			t.Errorf("description columns not aligned: %v", descCols)
		}
	}
}

func TestCommandsStyled(t *testing.T) {
	out := Commands()
	if !strings.Contains(out, "\x1b[") {
		t.Error("output carries no styling")
	}
	if !strings.Contains(out, "\x1b[0m") {
		t.Error("output never resets styling")
	}
}
