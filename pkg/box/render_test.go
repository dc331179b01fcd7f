package box

import (
	"strings"
	"testing"
)

func TestLinesRoundTrip(t *testing.T) {
	// render(fill(c,h,w)) is h lines of c repeated w times.
	b := mustFill(t, 'z', 3, 4)
	lines := b.Lines()
	if len(lines) != 3 {
		t.Fatalf("Lines() count = %d, want 3", len(lines))
	}
	for i, line := range lines {
		if line != "zzzz" {
			t.Errorf("line %d = %q, want %q", i, line, "zzzz")
		}
	}
}

func TestRowsIsRestartable(t *testing.T) {
	b := mustFill(t, 'x', 2, 2)
	seq := b.Rows()

	for pass := range 2 {
		var got []string
		for line := range seq {
			got = append(got, line)
		}
		if len(got) != 2 || got[0] != "xx" || got[1] != "xx" {
			t.Errorf("pass %d: Rows() = %v, want [xx xx]", pass, got)
		}
	}
}

func TestRowsEarlyStop(t *testing.T) {
	b := mustFill(t, 'x', 5, 1)
	count := 0
	for range b.Rows() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("stopped after %d rows, want 2", count)
	}
}

func TestStringMatchesLines(t *testing.T) {
	b := Above(Line("ab"), Line("cd"), RowLeft)
	if got, want := b.String(), strings.Join(b.Lines(), "\n"); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEq(t *testing.T) {
	a := mustFill(t, 'a', 2, 2)
	b := mustFill(t, 'a', 2, 2)
	c := mustFill(t, 'c', 2, 2)
	d := mustFill(t, 'a', 2, 3)

	if !a.Eq(b) {
		t.Error("identical boxes should be equal")
	}
	if a.Eq(c) {
		t.Error("different contents should not be equal")
	}
	if a.Eq(d) {
		t.Error("different dimensions should not be equal")
	}
}
