package main

import "testing"

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()
	want := []string{
		"transcode", "split-audio", "render", "convert", "seq",
		"version", "jobs", "deps", "config", "watch", "notify-test",
	}
	registered := make(map[string]bool)
	for _, cmd := range root.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Fatalf("subcommand %q not registered", name)
		}
	}
}

func TestRootWithoutArgsShowsHelp(t *testing.T) {
	out, _, err := runCLI(t)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	requireContains(t, out, "Usage:")
	requireContains(t, out, "transcode")
}
