// Copyright (c) 2024 the ircproto authors
// released under the MIT license

package ircmsg

import (
	"testing"
)

func TestParsePrefix(t *testing.T) {
	cases := []struct {
		segment  string
		expected Prefix
	}{
		{"dan!d@localhost", Prefix{Nick: "dan", User: "d", Host: "localhost"}},
		{"dan", Prefix{Nick: "dan"}},
		{"irc.example.com", Prefix{Nick: "irc.example.com"}},
		{"dan!d", Prefix{Nick: "dan", User: "d"}},
		{"dan@localhost", Prefix{Nick: "dan", Host: "localhost"}},
		// the first '!' ends the nick; later separators belong to the
		// segments after it
		{"a!b!c@d", Prefix{Nick: "a", User: "b!c", Host: "d"}},
		{"a!b@c@d", Prefix{Nick: "a", User: "b", Host: "c@d"}},
		{"", Prefix{}},
	}
	for _, c := range cases {
		if got := ParsePrefix(c.segment); got != c.expected {
			t.Errorf("ParsePrefix(%q) = %+v, expected %+v", c.segment, got, c.expected)
		}
	}
}

func TestPrefixString(t *testing.T) {
	cases := []struct {
		prefix   Prefix
		expected string
	}{
		{Prefix{Nick: "dan", User: "d", Host: "localhost"}, "dan!d@localhost"},
		{Prefix{Nick: "dan", Host: "localhost"}, "dan@localhost"},
		{Prefix{Nick: "dan", User: "d"}, "dan!d"},
		{Prefix{Nick: "irc.example.com"}, "irc.example.com"},
	}
	for _, c := range cases {
		if got := c.prefix.String(); got != c.expected {
			t.Errorf("%+v.String() = %q, expected %q", c.prefix, got, c.expected)
		}
	}
}

func TestPrefixIsServer(t *testing.T) {
	if !(Prefix{Nick: "irc.example.com"}).IsServer() {
		t.Error("irc.example.com should look like a server")
	}
	if (Prefix{Nick: "dan"}).IsServer() {
		t.Error("dan should not look like a server")
	}
	if (Prefix{Nick: "irc.example.com", User: "x"}).IsServer() {
		t.Error("a prefix with a user is not a server")
	}
}
