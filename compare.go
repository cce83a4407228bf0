package ansidyn

import (
	"bytes"

	"github.com/maxdz-gmbh/mdz-ansi-dyn/internal/horspool"
)

// CompareResult is the outcome of Compare. Greater and Smaller are
// reserved for ordered comparison and are not produced by the current
// equality entry point.
type CompareResult uint8

const (
	CompareEqual CompareResult = iota
	CompareNonEqual
	CompareGreater
	CompareSmaller
	CompareError
)

// String returns a human-readable name for the result.
func (r CompareResult) String() string {
	switch r {
	case CompareEqual:
		return "equal"
	case CompareNonEqual:
		return "non-equal"
	case CompareGreater:
		return "greater"
	case CompareSmaller:
		return "smaller"
	default:
		return "error"
	}
}

// Compare compares content starting at position left against items.
// With partial true only len(items) bytes are compared; otherwise the
// whole remaining content must match items exactly, length included.
// On an invalid call the result is CompareError with the specific error.
func (s *Str) Compare(left int, items []byte, partial bool) (CompareResult, error) {
	if err := s.validate(); err != nil {
		return CompareError, err
	}
	if err := checkItems(items); err != nil {
		return CompareError, err
	}
	if left < 0 || left >= s.size {
		return CompareError, ErrLeftOutOfRange
	}
	if len(items) > s.size-left {
		return CompareError, ErrCountOutOfRange
	}
	if err := s.checkOverlap(items); err != nil {
		return CompareError, err
	}

	if !partial && s.size-left != len(items) {
		return CompareNonEqual, nil
	}
	if bytes.Equal(s.data[left:left+len(items)], items) {
		return CompareEqual, nil
	}
	return CompareNonEqual, nil
}

// Count counts the occurrences of the items substring inside the
// [left, right] window. With allowOverlapped the scan cursor advances by
// one byte after a hit so overlapping matches are counted; otherwise it
// advances by the pattern length. fromLeft selects the scan direction.
// On an invalid call the count is 0 with the specific error.
func (s *Str) Count(left, right int, items []byte, allowOverlapped, fromLeft bool) (int, error) {
	if err := s.findChecks(left, right, items); err != nil {
		return 0, err
	}
	return s.countIn(left, right, items, allowOverlapped, fromLeft), nil
}

// countIn is the counting core. Inputs are already validated.
func (s *Str) countIn(left, right int, items []byte, allowOverlapped, fromLeft bool) int {
	m := len(items)
	n := 0

	if fromLeft {
		l, r := left, right
		for r-l+1 >= m {
			pos := horspool.Index(s.data[l:r+1], items)
			if pos < 0 {
				break
			}
			n++
			if allowOverlapped {
				l += pos + 1
			} else {
				l += pos + m
			}
		}
		return n
	}

	l, r := left, right
	for r-l+1 >= m {
		pos := horspool.LastIndex(s.data[l:r+1], items)
		if pos < 0 {
			break
		}
		n++
		pos += l
		if allowOverlapped {
			r = pos + m - 2
		} else {
			r = pos - 1
		}
	}
	return n
}
