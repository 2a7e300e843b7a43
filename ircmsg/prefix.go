// Copyright (c) 2024 the ircproto authors
// released under the MIT license

package ircmsg

import (
	"strings"
)

// Prefix is the source of a message: the `:nick!user@host` or
// `:server.name` segment at the start of a line. Nick holds either a
// nickname or a server name; User and Host are empty when their
// separators were absent.
type Prefix struct {
	Nick string
	User string
	Host string
}

// ParsePrefix splits a prefix segment into its parts. Segmentation is
// best-effort and never fails: the first '!' ends the nick, the first '@'
// after it ends the user, and a segment with neither separator is taken
// as a bare nick (commonly a server name).
func ParsePrefix(segment string) (p Prefix) {
	if bang := strings.IndexByte(segment, '!'); bang != -1 {
		p.Nick = segment[:bang]
		rest := segment[bang+1:]
		if at := strings.IndexByte(rest, '@'); at != -1 {
			p.User = rest[:at]
			p.Host = rest[at+1:]
		} else {
			p.User = rest
		}
		return
	}
	if at := strings.IndexByte(segment, '@'); at != -1 {
		p.Nick = segment[:at]
		p.Host = segment[at+1:]
		return
	}
	p.Nick = segment
	return
}

// String returns the canonical wire form of the prefix, without the
// leading ':'.
func (p Prefix) String() string {
	var out strings.Builder
	out.Grow(len(p.Nick) + len(p.User) + len(p.Host) + 2)
	out.WriteString(p.Nick)
	if len(p.User) != 0 {
		out.WriteByte('!')
		out.WriteString(p.User)
	}
	if len(p.Host) != 0 {
		out.WriteByte('@')
		out.WriteString(p.Host)
	}
	return out.String()
}

// IsServer reports whether the prefix looks like a bare server name:
// no user, no host, and a dot in the name.
func (p Prefix) IsServer() bool {
	return p.User == "" && p.Host == "" && strings.IndexByte(p.Nick, '.') != -1
}
