// Package horspool implements Boyer-Moore-Horspool substring search over
// byte slices, in forward and reverse orientation.
//
// Both searches build a 256-entry bad-character shift table from the
// pattern and advance the scan by the table value on a mismatch, which
// makes the scan sub-linear for most inputs. A pattern of length 1
// degenerates to a plain byte scan.
//
// Callers pass the already-bounded search window; offsets returned are
// relative to the start of that window, or -1 when there is no match.
package horspool

import "bytes"

// Index returns the offset of the first occurrence of pattern in data,
// or -1 if pattern is absent. An empty pattern or a pattern longer than
// data never matches.
func Index(data, pattern []byte) int {
	n, m := len(data), len(pattern)
	if m == 0 || m > n {
		return -1
	}
	if m == 1 {
		return IndexByte(data, pattern[0])
	}

	// Bad-character table: distance from the last occurrence of each
	// byte (excluding the final position) to the end of the pattern.
	// Bytes absent from the pattern shift by the full pattern length.
	var shift [256]int
	for i := range shift {
		shift[i] = m
	}
	for i := 0; i < m-1; i++ {
		shift[pattern[i]] = m - 1 - i
	}

	pos := 0
	for pos <= n-m {
		last := data[pos+m-1]
		if last == pattern[m-1] && bytes.Equal(data[pos:pos+m-1], pattern[:m-1]) {
			return pos
		}
		pos += shift[last]
	}
	return -1
}

// LastIndex returns the offset of the last occurrence of pattern in data,
// or -1 if pattern is absent. It is the right-to-left mirror of Index:
// the shift table records the first occurrence of each byte scanning
// backward from the start of the pattern.
func LastIndex(data, pattern []byte) int {
	n, m := len(data), len(pattern)
	if m == 0 || m > n {
		return -1
	}
	if m == 1 {
		return LastIndexByte(data, pattern[0])
	}

	var shift [256]int
	for i := range shift {
		shift[i] = m
	}
	for i := m - 1; i > 0; i-- {
		shift[pattern[i]] = i
	}

	pos := n - m
	for pos >= 0 {
		first := data[pos]
		if first == pattern[0] && bytes.Equal(data[pos+1:pos+m], pattern[1:]) {
			return pos
		}
		pos -= shift[first]
	}
	return -1
}

// IndexByte returns the offset of the first occurrence of item in data,
// or -1 if item is absent.
func IndexByte(data []byte, item byte) int {
	for i := 0; i < len(data); i++ {
		if data[i] == item {
			return i
		}
	}
	return -1
}

// LastIndexByte returns the offset of the last occurrence of item in
// data, or -1 if item is absent.
func LastIndexByte(data []byte, item byte) int {
	for i := len(data) - 1; i >= 0; i-- {
		if data[i] == item {
			return i
		}
	}
	return -1
}
