// Copyright (c) 2024 the ircproto authors
// released under the MIT license

// Package irccase implements IRC casemapping: the network-announced rules
// for folding nicknames and channel names so they can be compared
// case-insensitively. Identity comparison on IRC must always go through a
// fold; raw string equality is wrong for every mapping except none.
package irccase

// Mapping selects which characters fold together. The three classic
// mappings all fold ASCII 'A'-'Z' to 'a'-'z'; they differ on the
// RFC 1459 extra pairs ([{ ]} \| ^~), which exist because those
// characters were interchangeable in Scandinavian charsets.
type Mapping uint8

const (
	// ASCII folds 'A'-'Z' only.
	ASCII Mapping = iota
	// RFC1459 additionally folds '[' to '{', '\' to '|', ']' to '}'
	// and '^' to '~'.
	RFC1459
	// RFC1459Strict folds '[' to '{', '\' to '|' and ']' to '}', but
	// leaves '^' and '~' distinct.
	RFC1459Strict
)

// ByName returns the Mapping for an ISUPPORT CASEMAPPING token.
func ByName(token string) (m Mapping, ok bool) {
	switch token {
	case "ascii":
		return ASCII, true
	case "rfc1459":
		return RFC1459, true
	case "rfc1459-strict":
		return RFC1459Strict, true
	}
	return
}

// Name returns the ISUPPORT token for the mapping.
func (m Mapping) Name() string {
	switch m {
	case RFC1459:
		return "rfc1459"
	case RFC1459Strict:
		return "rfc1459-strict"
	default:
		return "ascii"
	}
}

// foldLimit is the last byte of the folded upper range for each mapping:
// 'Z' for ascii, ']' for rfc1459-strict, '^' for rfc1459. Every byte in
// 'A'..limit folds by adding 0x20, which is exactly the classic tables.
func (m Mapping) foldLimit() byte {
	switch m {
	case RFC1459:
		return '^'
	case RFC1459Strict:
		return ']'
	default:
		return 'Z'
	}
}

func (m Mapping) foldByte(c byte) byte {
	if 'A' <= c && c <= m.foldLimit() {
		return c + 0x20
	}
	return c
}

// Fold returns the case-folded form of text under the mapping. It is
// total and idempotent; bytes outside the mapping's fold range (including
// all non-ASCII bytes) pass through unchanged.
func (m Mapping) Fold(text string) string {
	var folded []byte
	for i := 0; i < len(text); i++ {
		f := m.foldByte(text[i])
		if folded == nil {
			if f == text[i] {
				continue
			}
			folded = []byte(text)
		}
		folded[i] = f
	}
	if folded == nil {
		return text
	}
	return string(folded)
}

// Equal reports whether a and b are the same identifier under the
// mapping: equality of their folded forms.
func Equal(a, b string, m Mapping) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if m.foldByte(a[i]) != m.foldByte(b[i]) {
			return false
		}
	}
	return true
}
