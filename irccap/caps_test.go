// Copyright (c) 2024 the ircproto authors
// released under the MIT license

package irccap

import (
	"reflect"
	"testing"
)

func TestParseCap(t *testing.T) {
	cases := []struct {
		input    string
		expected Cap
	}{
		{"sasl", Cap{Name: "sasl"}},
		{"sasl=PLAIN,EXTERNAL", Cap{Name: "sasl", Value: "PLAIN,EXTERNAL"}},
		{"draft/chathistory", Cap{Name: "draft/chathistory"}},
		{"sts=port=6697", Cap{Name: "sts", Value: "port=6697"}},
	}
	for _, c := range cases {
		if got := ParseCap(c.input); got != c.expected {
			t.Errorf("ParseCap(%q) = %+v, expected %+v", c.input, got, c.expected)
		}
	}
}

func TestCapString(t *testing.T) {
	if s := (Cap{Name: "sasl", Value: "PLAIN"}).String(); s != "sasl=PLAIN" {
		t.Errorf("expected sasl=PLAIN, got %q", s)
	}
	if s := (Cap{Name: "sasl"}).String(); s != "sasl" {
		t.Errorf("expected sasl, got %q", s)
	}
}

func TestParseCapList(t *testing.T) {
	list := ParseCapList("multi-prefix sasl=PLAIN server-time")
	expected := CapList{
		{Name: "multi-prefix"},
		{Name: "sasl", Value: "PLAIN"},
		{Name: "server-time"},
	}
	if !reflect.DeepEqual(list, expected) {
		t.Errorf("got %+v, expected %+v", list, expected)
	}

	// leading colon from a trailing param, and the trailing space some
	// networks send in CAP ACK
	list = ParseCapList(":multi-prefix sasl ")
	expected = CapList{{Name: "multi-prefix"}, {Name: "sasl"}}
	if !reflect.DeepEqual(list, expected) {
		t.Errorf("got %+v, expected %+v", list, expected)
	}

	if len(ParseCapList("")) != 0 {
		t.Error("empty payload should yield an empty list")
	}
}

func TestCapListRoundTrip(t *testing.T) {
	payload := "multi-prefix sasl=PLAIN,EXTERNAL server-time"
	if s := ParseCapList(payload).String(); s != payload {
		t.Errorf("round trip changed the payload: %q", s)
	}
}

func TestCapListLookup(t *testing.T) {
	list := ParseCapList("multi-prefix sasl=PLAIN")
	if c, ok := list.Lookup("sasl"); !ok || c.Value != "PLAIN" {
		t.Errorf("Lookup(sasl) = %+v, %v", c, ok)
	}
	if !list.Has("multi-prefix") || list.Has("server-time") {
		t.Error("Has gave wrong answers")
	}
}
