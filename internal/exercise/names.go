package exercise

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NameKey returns the lookup key for an exercise or muscle name.
//
// Keys are NFC-normalized with surrounding whitespace removed. Case is
// preserved: "Squat" and "squat" are different names.
func NameKey(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// NameSet is a set of NameKey values.
type NameSet map[string]struct{}

// NewNameSet builds a set from names. Empty names are ignored.
// Returns nil for an empty input so callers can treat "no list" and
// "empty list" identically.
func NewNameSet(names []string) NameSet {
	if len(names) == 0 {
		return nil
	}
	set := make(NameSet, len(names))
	for _, n := range names {
		k := NameKey(n)
		if k == "" {
			continue
		}
		set[k] = struct{}{}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

// Has reports whether name is in the set. Safe on a nil set.
func (s NameSet) Has(name string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[NameKey(name)]
	return ok
}

// HasAny reports whether any of names is in the set.
func (s NameSet) HasAny(names []string) bool {
	if len(s) == 0 {
		return false
	}
	for _, n := range names {
		if s.Has(n) {
			return true
		}
	}
	return false
}

// Len returns the number of keys in the set.
func (s NameSet) Len() int {
	return len(s)
}
