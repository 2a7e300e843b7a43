// Copyright (c) 2024 the ircproto authors
// released under the MIT license

// Package ircmsg parses and serializes single IRC protocol lines, per the
// RFC 1459/2812 grammar and the IRCv3 message-tags extension. It operates
// on one already-delimited line at a time; line terminators and length
// limits belong to the transport.
package ircmsg

import (
	"errors"
	"strings"
)

// maxParams is the wire-format bound: a command plus at most 14
// parameters are distinguishable on one line.
const maxParams = 14

var (
	// ErrEmptyLine indicates that the line to parse was empty.
	ErrEmptyLine = errors.New("ircmsg: empty line")

	// ErrMissingCommand indicates that the command token was absent, or
	// was not a run of ASCII letters or exactly three digits.
	ErrMissingCommand = errors.New("ircmsg: missing or malformed command")

	// ErrMalformedTags indicates a tag whose name violates the tag-name
	// grammar. Escaping problems inside tag values are never fatal.
	ErrMalformedTags = errors.New("ircmsg: malformed message tags")

	// ErrInvalidParam indicates a non-final parameter that cannot be
	// represented on the wire: empty, containing a space, or starting
	// with ':'. Serializing such a message would corrupt it.
	ErrInvalidParam = errors.New("ircmsg: non-final parameter is empty, contains a space, or starts with ':'")

	// ErrTooManyParams indicates more than 14 parameters; a longer line
	// would not parse back to the same message.
	ErrTooManyParams = errors.New("ircmsg: more than 14 parameters")
)

// Message is the parsed representation of one protocol line. It is a
// value type: treat a constructed Message as immutable and use the With*
// helpers to derive modified copies.
type Message struct {
	Tags    Tags
	Prefix  *Prefix
	Command string
	Params  []string

	forceTrailing bool
}

// MakeMessage builds an outgoing message from a command and parameters.
func MakeMessage(command string, params ...string) Message {
	return Message{Command: command, Params: params}
}

// WithPrefix returns a copy of the message carrying the given source.
func (msg Message) WithPrefix(p Prefix) Message {
	msg.Prefix = &p
	return msg
}

// WithTag returns a copy of the message with the named tag set. Setting
// an existing name replaces its value in place, keeping tag order stable.
func (msg Message) WithTag(name string, value TagValue) Message {
	tags := make(Tags, len(msg.Tags), len(msg.Tags)+1)
	copy(tags, msg.Tags)
	msg.Tags = tags.set(name, value)
	return msg
}

// WithoutTag returns a copy of the message with the named tag removed.
func (msg Message) WithoutTag(name string) Message {
	tags := make(Tags, 0, len(msg.Tags))
	for _, tag := range msg.Tags {
		if tag.Name != name {
			tags = append(tags, tag)
		}
	}
	msg.Tags = tags
	return msg
}

// GetTag returns the string value of the named tag.
func (msg Message) GetTag(name string) (value string, present bool) {
	return msg.Tags.Get(name)
}

// HasTag returns whether the named tag is present.
func (msg Message) HasTag(name string) bool {
	return msg.Tags.Has(name)
}

// Nick returns the name component of the message source (a nickname or a
// server name), or "" if the message has no source.
func (msg Message) Nick() string {
	if msg.Prefix == nil {
		return ""
	}
	return msg.Prefix.Nick
}

// ForceTrailing returns a copy of the message whose final parameter will
// always be serialized as a trailing parameter (preceded by ':'), even
// when not required. Only useful against broken peers.
func (msg Message) ForceTrailing() Message {
	msg.forceTrailing = true
	return msg
}

// slice off a run of ' ' from the front of the string
func skipSpaces(s string) string {
	var i int
	for i = 0; i < len(s) && s[i] == ' '; i++ {
	}
	return s[i:]
}

// validCommand reports whether the token has the lexical shape of a
// command: one or more ASCII letters, or exactly three ASCII digits.
// Whether the command is a known one is not this package's business.
func validCommand(s string) bool {
	if len(s) == 0 {
		return false
	}
	letters, digits := true, true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')) {
			letters = false
		}
		if !('0' <= c && c <= '9') {
			digits = false
		}
	}
	return letters || (digits && len(s) == 3)
}

// ParseLine parses one raw protocol line (without its CR LF terminator)
// into a Message. It performs a single left-to-right scan with no
// backtracking. Command case is preserved as received.
func ParseLine(line string) (msg Message, err error) {
	if len(line) == 0 {
		return msg, ErrEmptyLine
	}

	// tags
	if line[0] == '@' {
		// escaped spaces are "\s", so a literal space always ends the
		// tag section
		var section string
		if end := strings.IndexByte(line, ' '); end != -1 {
			section, line = line[1:end], line[end+1:]
		} else {
			section, line = line[1:], ""
		}
		msg.Tags, err = parseTags(section)
		if err != nil {
			return Message{}, err
		}
	}

	line = skipSpaces(line)

	// source prefix: any text up to the next space is accepted,
	// server implementations vary too much to be strict here
	if len(line) > 0 && line[0] == ':' {
		var segment string
		if end := strings.IndexByte(line, ' '); end != -1 {
			segment, line = line[1:end], line[end+1:]
		} else {
			segment, line = line[1:], ""
		}
		prefix := ParsePrefix(segment)
		msg.Prefix = &prefix
	}

	line = skipSpaces(line)

	// command
	end := strings.IndexByte(line, ' ')
	if end == -1 {
		end = len(line)
	}
	if !validCommand(line[:end]) {
		return Message{}, ErrMissingCommand
	}
	msg.Command = line[:end]
	line = line[end:]

	// parameters
	for {
		line = skipSpaces(line)
		if len(line) == 0 {
			break
		}
		if line[0] == ':' {
			msg.Params = append(msg.Params, line[1:])
			break
		}
		if len(msg.Params) == maxParams-1 {
			// only 15 tokens are distinguishable on the wire; the rest
			// of the line becomes the 14th parameter, spaces and all
			msg.Params = append(msg.Params, line)
			break
		}
		if end := strings.IndexByte(line, ' '); end != -1 {
			msg.Params = append(msg.Params, line[:end])
			line = line[end+1:]
		} else {
			msg.Params = append(msg.Params, line)
			break
		}
	}

	return msg, nil
}

// parseTags parses the tag section of a line (after the leading '@').
// A duplicate name takes the last value seen; this is deliberate, not
// incidental.
func parseTags(section string) (tags Tags, err error) {
	tags = make(Tags, 0, strings.Count(section, ";")+1)
	for len(section) > 0 {
		var entry string
		if sep := strings.IndexByte(section, ';'); sep != -1 {
			entry, section = section[:sep], section[sep+1:]
		} else {
			entry, section = section, ""
		}
		if len(entry) == 0 {
			continue
		}
		name, value := entry, NoTagValue()
		if eq := strings.IndexByte(entry, '='); eq != -1 {
			name = entry[:eq]
			value = MakeTagValue(UnescapeTagValue(entry[eq+1:]))
		}
		if !validateTagName(name) {
			return nil, ErrMalformedTags
		}
		tags = tags.set(name, value)
	}
	return tags, nil
}

// paramNeedsTrailing reports whether a parameter can only be represented
// as a trailing parameter.
func paramNeedsTrailing(param string) bool {
	return len(param) == 0 || strings.IndexByte(param, ' ') != -1 || param[0] == ':'
}

// Line serializes the message back into a raw protocol line, without a
// terminator. It is the exact inverse of ParseLine's tokenization, so a
// successfully serialized message reparses to an equal Message.
func (msg Message) Line() (string, error) {
	bs, err := msg.LineBytes()
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

// LineBytes is Line, returning the raw bytes. No length limit is
// enforced; truncation policy is connection-dependent and belongs to the
// transport.
func (msg Message) LineBytes() ([]byte, error) {
	if !validCommand(msg.Command) {
		return nil, ErrMissingCommand
	}
	if len(msg.Params) > maxParams {
		return nil, ErrTooManyParams
	}

	var buf strings.Builder

	if len(msg.Tags) > 0 {
		buf.WriteByte('@')
		for i, tag := range msg.Tags {
			if !validateTagName(tag.Name) {
				return nil, ErrMalformedTags
			}
			if i > 0 {
				buf.WriteByte(';')
			}
			buf.WriteString(tag.Name)
			if tag.Value.HasValue {
				buf.WriteByte('=')
				buf.WriteString(EscapeTagValue(tag.Value.Value))
			}
		}
		buf.WriteByte(' ')
	}

	if msg.Prefix != nil {
		buf.WriteByte(':')
		buf.WriteString(msg.Prefix.String())
		buf.WriteByte(' ')
	}

	buf.WriteString(msg.Command)

	for i, param := range msg.Params {
		last := i == len(msg.Params)-1
		buf.WriteByte(' ')
		switch {
		case last && (paramNeedsTrailing(param) || msg.forceTrailing):
			buf.WriteByte(':')
		case !last && paramNeedsTrailing(param):
			return nil, ErrInvalidParam
		}
		buf.WriteString(param)
	}

	return []byte(buf.String()), nil
}
