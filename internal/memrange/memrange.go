// Package memrange detects aliasing between byte slices by comparing the
// memory extents they occupy.
//
// The string container rejects caller input that aliases its own backing
// buffer: an in-place shift would corrupt the input mid-operation. A Go
// caller can produce such aliasing by passing a sub-slice of the
// container's own data view, so the check is expressed as a half-open
// address-range intersection over the two slices' extents.
package memrange

import "unsafe"

// Overlaps reports whether the memory extents of a and b intersect.
// Zero-length slices never overlap anything.
func Overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	aLo := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	aHi := aLo + uintptr(len(a))
	bLo := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	bHi := bLo + uintptr(len(b))

	return aLo < bHi && bLo < aHi
}
