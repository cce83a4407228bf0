// Package byteset provides a fixed-size membership set over the 256
// possible byte values, used by character-class scans and trimming where
// the caller's items are a set of candidate bytes rather than a substring.
package byteset

// Set is a 256-bit membership bitmap. The zero value is the empty set.
type Set [4]uint64

// Make builds a Set containing every byte that appears in items.
// Duplicates are harmless.
func Make(items []byte) Set {
	var s Set
	for _, b := range items {
		s[b>>6] |= 1 << (b & 63)
	}
	return s
}

// Contains reports whether b is a member of the set.
func (s Set) Contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}
