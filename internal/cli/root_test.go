package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}

	want := []string{"render", "demo", "tree", "view", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute(--help) error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("render")) {
		t.Error("help output should list the render command")
	}
}

func TestDemoListsFigures(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"demo", "no-such-figure"})

	if err := root.Execute(); err == nil {
		t.Error("demo with unknown figure should fail argument validation")
	}
}
