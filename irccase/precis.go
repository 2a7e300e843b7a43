// Copyright (c) 2024 the ircproto authors
// released under the MIT license

package irccase

import (
	"errors"

	"github.com/ergochat/confusables"
	"golang.org/x/text/secure/precis"
	"golang.org/x/text/unicode/norm"
)

// ErrCouldNotStabilize indicates that PRECIS casefolding failed to reach
// a fixed point.
var ErrCouldNotStabilize = errors.New("irccase: casefolding did not stabilize")

// A single PRECIS pass composes idempotent operations but is not itself
// idempotent, so the spec's stabilization rule is to repeat up to four
// times and require convergence.
func stabilize(profile *precis.Profile, old string) (string, error) {
	current := old
	for i := 0; i < 4; i++ {
		next, err := profile.CompareKey(current)
		if err != nil {
			return "", err
		}
		if next == current {
			return current, nil
		}
		current = next
	}
	return "", ErrCouldNotStabilize
}

// Casefold folds a Unicode identifier under the PRECIS UsernameCaseMapped
// profile (RFC 8265), the casemapping modern networks announce as
// CASEMAPPING=rfc8265. Unlike the classic byte mappings it can fail, on
// input the profile rejects outright.
func Casefold(text string) (string, error) {
	return stabilize(precis.UsernameCaseMapped, text)
}

// isPlainASCII identifiers are exempt from skeletonization:
// confusables.txt treats various pure-ASCII alphanumeric strings as
// confusable (0/O, 1/l, m/rn), which causes more trouble than it
// prevents.
func isPlainASCII(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			continue
		}
		switch c {
		case '$', '%', '^', '&', '(', ')', '{', '}', '[', ']', '<', '>', '=':
			continue
		default:
			return false
		}
	}
	return true
}

// skeletons may mix scripts in ways the bidi rule rejects, so the
// skeleton profile skips it
var skeletonProfile = precis.NewIdentifier(precis.FoldWidth, precis.LowerCase(), precis.Norm(norm.NFC))

// Skeleton produces a canonical identifier that catches homoglyphic
// (visually confusable) spoofs of name, via the TR39 skeleton algorithm.
// The skeleton is computed from the unfolded identifier and only then
// casefolded; folding first would lose visual information, so a skeleton
// is not a function of the casefolded name and must be tracked
// separately.
func Skeleton(name string) (string, error) {
	if !isPlainASCII(name) {
		name = confusables.Skeleton(name)
	}
	return stabilize(skeletonProfile, name)
}
