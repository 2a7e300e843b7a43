// Copyright (c) 2024 the ircproto authors
// released under the MIT license

package ircmsg

import (
	"strings"
)

// TagValue is the value of a message tag. A tag that appears on the wire
// without an '=' (for example `+typing`) has HasValue false; a tag written
// as `key=` has HasValue true and an empty Value. The two forms are
// distinct on the wire and stay distinct here.
type TagValue struct {
	HasValue bool
	Value    string
}

// MakeTagValue returns the TagValue for a tag with an explicit value
// (possibly empty).
func MakeTagValue(value string) TagValue {
	return TagValue{HasValue: true, Value: value}
}

// NoTagValue returns the TagValue for a valueless tag.
func NoTagValue() TagValue {
	return TagValue{}
}

// Tag is a single message tag: a name and an optional value.
type Tag struct {
	Name  string
	Value TagValue
}

// Tags is an ordered collection of message tags. Order is irrelevant for
// equality of messages but is preserved so that serialization is
// deterministic. Names are unique within a Tags value.
type Tags []Tag

// Lookup returns the value of the named tag and whether it is present.
func (ts Tags) Lookup(name string) (value TagValue, present bool) {
	for _, tag := range ts {
		if tag.Name == name {
			return tag.Value, true
		}
	}
	return
}

// Get returns the string value of the named tag. Valueless tags and
// absent tags both yield ""; use Lookup to distinguish them.
func (ts Tags) Get(name string) (value string, present bool) {
	tv, present := ts.Lookup(name)
	return tv.Value, present
}

// Has returns whether the named tag is present.
func (ts Tags) Has(name string) bool {
	_, present := ts.Lookup(name)
	return present
}

// set updates ts in place where possible: a duplicate name keeps the
// position of its first occurrence and takes the new value.
func (ts Tags) set(name string, value TagValue) Tags {
	for i := range ts {
		if ts[i].Name == name {
			ts[i].Value = value
			return ts
		}
	}
	return append(ts, Tag{Name: name, Value: value})
}

// valueEscaper rewrites the characters that are significant inside a tag
// section with their escaped forms, per the IRCv3 message-tags spec.
var valueEscaper = strings.NewReplacer(
	"\\", "\\\\",
	";", "\\:",
	" ", "\\s",
	"\r", "\\r",
	"\n", "\\n",
)

// unescapeTable maps the byte following a backslash to its literal.
// Bytes without a defined escape map to themselves (the backslash is
// dropped and the byte kept).
var unescapeTable [256]byte

func init() {
	for i := 0; i < 256; i++ {
		unescapeTable[i] = byte(i)
	}
	unescapeTable[':'] = ';'
	unescapeTable['s'] = ' '
	unescapeTable['r'] = '\r'
	unescapeTable['n'] = '\n'
}

// EscapeTagValue takes a raw tag value and returns its escaped wire form.
// Serialization applies it automatically.
func EscapeTagValue(raw string) string {
	return valueEscaper.Replace(raw)
}

// UnescapeTagValue takes an escaped tag value from the wire and returns
// the raw value. It is total: an undefined escape keeps the escaped byte
// and drops the backslash, and a lone trailing backslash is dropped.
// A single pass is performed; the output is never rescanned.
func UnescapeTagValue(escaped string) string {
	i := strings.IndexByte(escaped, '\\')
	if i == -1 {
		return escaped
	}
	var out strings.Builder
	out.Grow(len(escaped))
	for i != -1 {
		out.WriteString(escaped[:i])
		if i == len(escaped)-1 {
			// trailing backslash with nothing to escape
			return out.String()
		}
		out.WriteByte(unescapeTable[escaped[i+1]])
		escaped = escaped[i+2:]
		i = strings.IndexByte(escaped, '\\')
	}
	out.WriteString(escaped)
	return out.String()
}

func isTagNameByte(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9') || c == '-'
}

// validateTagName checks the syntactic shape of a tag name: an optional
// '+' client-only marker, an optional vendor prefix (a hostname, so dots
// are allowed there and only there), a '/', and a key of letters, digits
// and '-'. No registry lookup is performed.
func validateTagName(name string) bool {
	if len(name) > 0 && name[0] == '+' {
		name = name[1:]
	}
	if len(name) == 0 {
		return false
	}
	key := name
	if slash := strings.IndexByte(name, '/'); slash != -1 {
		vendor := name[:slash]
		key = name[slash+1:]
		if len(vendor) == 0 {
			return false
		}
		for i := 0; i < len(vendor); i++ {
			if !isTagNameByte(vendor[i]) && vendor[i] != '.' {
				return false
			}
		}
	}
	if len(key) == 0 {
		return false
	}
	for i := 0; i < len(key); i++ {
		if !isTagNameByte(key[i]) {
			return false
		}
	}
	return true
}
