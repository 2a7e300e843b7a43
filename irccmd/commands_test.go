// Copyright (c) 2024 the ircproto authors
// released under the MIT license

package irccmd

import (
	"reflect"
	"testing"
)

func TestParseArgument(t *testing.T) {
	arg, err := ParseArgument("<target>")
	if err != nil || !reflect.DeepEqual(arg, Argument{Name: "target", Required: true}) {
		t.Errorf("ParseArgument(<target>) = %+v, %v", arg, err)
	}

	arg, err = ParseArgument("[message]")
	if err != nil || !reflect.DeepEqual(arg, Argument{Name: "message", Required: false}) {
		t.Errorf("ParseArgument([message]) = %+v, %v", arg, err)
	}

	for _, bad := range []string{"", "x", "<x]", "[x>", "plain", "<"} {
		if _, err := ParseArgument(bad); err == nil {
			t.Errorf("ParseArgument(%q) should fail", bad)
		}
	}
}

func TestParseArguments(t *testing.T) {
	args, err := ParseArguments("<target> [content]")
	if err != nil {
		t.Fatal(err)
	}
	expected := []Argument{
		{Name: "target", Required: true},
		{Name: "content", Required: false},
	}
	if !reflect.DeepEqual(args, expected) {
		t.Errorf("got %+v, expected %+v", args, expected)
	}

	if _, err := ParseArguments("<a> nope"); err == nil {
		t.Error("malformed signature should fail")
	}
}

func TestCommandArity(t *testing.T) {
	cmd := mustCommand("TEST", "<a> <b> [c]")
	if cmd.MinArgs() != 2 || cmd.MaxArgs() != 3 {
		t.Errorf("arity of %+v: min %d max %d", cmd, cmd.MinArgs(), cmd.MaxArgs())
	}
	for n, ok := range map[int]bool{1: false, 2: true, 3: true, 4: false} {
		if cmd.AcceptsArgs(n) != ok {
			t.Errorf("AcceptsArgs(%d) should be %t", n, ok)
		}
	}
}

func TestLookupClient(t *testing.T) {
	cmd, ok := LookupClient("PRIVMSG")
	if !ok || cmd.MinArgs() != 2 {
		t.Errorf("LookupClient(PRIVMSG) = %+v, %v", cmd, ok)
	}
	if _, ok := LookupClient("privmsg"); !ok {
		t.Error("lookup should be case-insensitive")
	}
	if _, ok := LookupClient("WALLOPS"); ok {
		t.Error("unknown command should not resolve")
	}
}
