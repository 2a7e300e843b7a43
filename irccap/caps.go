// Copyright (c) 2024 the ircproto authors
// released under the MIT license

// Package irccap parses IRCv3 capability lists, the payloads of CAP LS,
// CAP ACK and friends. Negotiation state machines live elsewhere; this is
// only the entry grammar (`name` or `name=value`, space-separated).
package irccap

import (
	"strings"
)

// Cap is one capability entry. A valueless entry has an empty Value;
// CAP values, unlike message tags, have no empty/absent distinction.
type Cap struct {
	Name  string
	Value string
}

// ParseCap splits a single entry on its first '='.
func ParseCap(text string) Cap {
	if eq := strings.IndexByte(text, '='); eq != -1 {
		return Cap{Name: text[:eq], Value: text[eq+1:]}
	}
	return Cap{Name: text}
}

// String returns the wire form of the entry.
func (c Cap) String() string {
	if c.Value != "" {
		return c.Name + "=" + c.Value
	}
	return c.Name
}

// CapList is an ordered list of capability entries.
type CapList []Cap

// ParseCapList parses a CAP subcommand payload. A leading ':' is
// tolerated (the payload is usually a trailing parameter), as is
// surrounding whitespace: some networks send a trailing space in
// CAP ACK.
func ParseCapList(text string) CapList {
	text = strings.TrimPrefix(text, ":")
	fields := strings.Fields(text)
	list := make(CapList, 0, len(fields))
	for _, field := range fields {
		list = append(list, ParseCap(field))
	}
	return list
}

// String returns the space-joined wire form of the list.
func (l CapList) String() string {
	entries := make([]string, len(l))
	for i, c := range l {
		entries[i] = c.String()
	}
	return strings.Join(entries, " ")
}

// Lookup returns the entry with the given name, if present. CAP names
// are ASCII and compared case-sensitively, as servers send them.
func (l CapList) Lookup(name string) (c Cap, ok bool) {
	for _, entry := range l {
		if entry.Name == name {
			return entry, true
		}
	}
	return
}

// Has returns whether the named capability is present.
func (l CapList) Has(name string) bool {
	_, ok := l.Lookup(name)
	return ok
}
