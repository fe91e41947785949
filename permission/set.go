package permission

import "sort"

// Set is an unordered collection of permission codes. The zero value is an
// empty, usable set for reads; use [NewSet] or [FromList] to build one.
type Set map[string]struct{}

// NewSet creates a [Set] from the given codes. Empty codes and duplicates
// are dropped.
func NewSet(codes ...string) Set {
	return FromList(codes)
}

// FromList creates a [Set] from a server-supplied code list. Empty codes and
// duplicates are dropped. A nil or empty list yields an empty set.
func FromList(codes []string) Set {
	s := make(Set, len(codes))
	for _, code := range codes {
		if code == "" {
			continue
		}
		s[code] = struct{}{}
	}
	return s
}

// Has reports whether the set contains code.
func (s Set) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// HasAny reports whether the set contains at least one of codes.
// An empty codes list yields false.
func (s Set) HasAny(codes []string) bool {
	for _, code := range codes {
		if s.Has(code) {
			return true
		}
	}
	return false
}

// HasAll reports whether the set contains every one of codes.
// An empty codes list yields true.
func (s Set) HasAll(codes []string) bool {
	for _, code := range codes {
		if !s.Has(code) {
			return false
		}
	}
	return true
}

// Len returns the number of codes in the set.
func (s Set) Len() int {
	return len(s)
}

// List returns the codes in sorted order. The result is a copy.
func (s Set) List() []string {
	out := make([]string, 0, len(s))
	for code := range s {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
