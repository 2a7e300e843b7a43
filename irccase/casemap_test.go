// Copyright (c) 2024 the ircproto authors
// released under the MIT license

package irccase

import (
	"testing"
)

func assertFolds(m Mapping, input, expected string, t *testing.T) {
	t.Helper()
	if got := m.Fold(input); got != expected {
		t.Errorf("%s fold of %q: expected %q, got %q", m.Name(), input, expected, got)
	}
}

func TestFold(t *testing.T) {
	assertFolds(ASCII, "Ni[ck]", "ni[ck]", t)
	assertFolds(RFC1459, "Ni[ck]", "ni{ck}", t)
	assertFolds(RFC1459Strict, "Ni[ck]", "ni{ck}", t)

	assertFolds(ASCII, `X[\]^x`, `x[\]^x`, t)
	assertFolds(RFC1459, `X[\]^x`, "x{|}~x", t)
	assertFolds(RFC1459Strict, `X[\]^x`, "x{|}^x", t)

	// already-lower characters and non-ASCII pass through
	assertFolds(RFC1459, "abc{|}~", "abc{|}~", t)
	assertFolds(RFC1459, "Skåne", "skåne", t)
	assertFolds(ASCII, "", "", t)
}

func TestFoldIdempotence(t *testing.T) {
	inputs := []string{"Ni[ck]", "UPPER", "lower", `[\]^~{|}`, "mixed Case 123", "ålpha"}
	for _, m := range []Mapping{ASCII, RFC1459, RFC1459Strict} {
		for _, s := range inputs {
			once := m.Fold(s)
			if twice := m.Fold(once); twice != once {
				t.Errorf("%s fold of %q is not idempotent: %q then %q", m.Name(), s, once, twice)
			}
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal("Nick", "nick", ASCII) {
		t.Error("ascii should equate Nick and nick")
	}
	if Equal("ni[ck]", "ni{ck}", ASCII) {
		t.Error("ascii must not equate brackets and braces")
	}
	if !Equal("ni[ck]", "ni{ck}", RFC1459) {
		t.Error("rfc1459 should equate brackets and braces")
	}
	if !Equal("a^b", "a~b", RFC1459) {
		t.Error("rfc1459 should equate ^ and ~")
	}
	if Equal("a^b", "a~b", RFC1459Strict) {
		t.Error("rfc1459-strict must not equate ^ and ~")
	}
	if Equal("abc", "abcd", RFC1459) {
		t.Error("length mismatch should never be equal")
	}
}

func TestByName(t *testing.T) {
	for _, m := range []Mapping{ASCII, RFC1459, RFC1459Strict} {
		got, ok := ByName(m.Name())
		if !ok || got != m {
			t.Errorf("ByName(%q) = %v, %v", m.Name(), got, ok)
		}
	}
	if _, ok := ByName("rfc8265"); ok {
		t.Error("rfc8265 is not a byte mapping and must not resolve")
	}
	if _, ok := ByName("RFC1459"); ok {
		t.Error("ByName takes the exact ISUPPORT token")
	}
}

func BenchmarkFold(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RFC1459.Fold("Some[Longer]Nickname^With_Various|Chars")
	}
}
