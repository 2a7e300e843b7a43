// Copyright (c) 2024 the ircproto authors
// released under the MIT license

// Package ircmask matches hostmask patterns ('*!*@host' and friends)
// against nick!user@host strings. Matching is anchored at both ends and
// case-insensitive under a chosen casemapping; '*' matches any run of
// characters (including none) and '?' matches exactly one. There is no
// other wildcard syntax: brackets and braces are ordinary nick
// characters here, never character classes.
package ircmask

import (
	"github.com/ergochat/ircproto/irccase"
)

// Mask is a compiled (pre-folded) pattern, for reuse against many
// candidates, e.g. when scanning a ban list.
type Mask struct {
	pattern string
	mapping irccase.Mapping
}

// Compile folds the pattern under the mapping and returns a reusable
// Mask. It cannot fail: every string is a valid pattern.
func Compile(pattern string, m irccase.Mapping) Mask {
	return Mask{pattern: m.Fold(pattern), mapping: m}
}

// Match reports whether the candidate matches the mask.
func (mask Mask) Match(candidate string) bool {
	return matchFolded(mask.mapping.Fold(candidate), mask.pattern)
}

// Mapping returns the casemapping the mask was compiled under.
func (mask Mask) Mapping() irccase.Mapping {
	return mask.mapping
}

// String returns the folded pattern.
func (mask Mask) String() string {
	return mask.pattern
}

// Match reports whether candidate matches pattern under the mapping.
// It is total over arbitrary byte strings.
func Match(candidate, pattern string, m irccase.Mapping) bool {
	return matchFolded(m.Fold(candidate), m.Fold(pattern))
}

// matchFolded runs two-pointer glob matching with backtracking to the
// most recent '*'. Greedy one-pass matching is not enough: a pattern
// like *a*b against xaxb needs the first '*' re-extended after the
// inner match fails.
func matchFolded(s, p string) bool {
	si, pi := 0, 0
	starPi, starSi := -1, 0
	for si < len(s) {
		switch {
		case pi < len(p) && (p[pi] == '?' || p[pi] == s[si]):
			si++
			pi++
		case pi < len(p) && p[pi] == '*':
			starPi, starSi = pi, si
			pi++
		case starPi != -1:
			// backtrack: let the last '*' consume one more byte
			starSi++
			si, pi = starSi, starPi+1
		default:
			return false
		}
	}
	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}
