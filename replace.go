package ansidyn

import (
	"github.com/maxdz-gmbh/mdz-ansi-dyn/internal/horspool"
	"github.com/maxdz-gmbh/mdz-ansi-dyn/internal/memrange"
)

// ReplaceMode selects the strategy used when a replacement grows the
// string (len(after) > len(before)).
type ReplaceMode uint8

const (
	// ReplaceDual is the default: a first pass counts the occurrences to
	// compute the exact final size and grow once up front, then a second
	// pass substitutes without re-scanning settled output. The operation
	// is all-or-nothing.
	ReplaceDual ReplaceMode = iota

	// ReplaceStraight substitutes optimistically in a single pass. If
	// capacity runs out mid-operation and the string cannot grow, it
	// stops immediately and leaves the string partially replaced. This
	// trades the counting pass for a documented non-atomic failure mode;
	// callers must not rely on the content after a failure.
	ReplaceStraight
)

// Replace substitutes every occurrence of before inside the [left, right]
// window with after. after may be empty, which removes the occurrences.
// fromLeft selects the scan direction.
//
// When after is not longer than before the substitution happens in place
// in a single pass and never changes capacity. When after is longer the
// string grows according to mode; growth on an attached string fails with
// ErrAttached (ReplaceDual) or ErrReplaceExceedsCapacity (ReplaceStraight,
// partial state possible).
func (s *Str) Replace(left, right int, before, after []byte, fromLeft bool, mode ReplaceMode) error {
	if err := s.validate(); err != nil {
		return err
	}
	if s.size == 0 {
		return ErrEmpty
	}
	if err := checkItems(before); err != nil {
		return err
	}
	if err := s.checkWindow(left, right); err != nil {
		return err
	}
	if len(before) > right-left+1 {
		return ErrCountOutOfRange
	}
	if mode != ReplaceDual && mode != ReplaceStraight {
		return ErrInvalidReplaceMode
	}
	if err := s.checkOverlap(before); err != nil {
		return err
	}
	if err := s.checkOverlap(after); err != nil {
		return err
	}

	switch {
	case len(after) <= len(before):
		s.replaceShrink(left, right, before, after, fromLeft)
		return nil
	case mode == ReplaceDual:
		return s.replaceGrowDual(left, right, before, after, fromLeft)
	default:
		return s.replaceGrowStraight(left, right, before, after, fromLeft)
	}
}

// replaceShrink handles len(after) <= len(before): every substitution
// fits in place, shifting the remainder left when after is shorter.
func (s *Str) replaceShrink(left, right int, before, after []byte, fromLeft bool) {
	nb, na := len(before), len(after)
	shrink := nb - na

	l, r := left, right
	for r-l+1 >= nb {
		var pos int
		if fromLeft {
			pos = horspool.Index(s.data[l:r+1], before)
		} else {
			pos = horspool.LastIndex(s.data[l:r+1], before)
		}
		if pos < 0 {
			return
		}
		pos += l

		copy(s.data[pos:pos+na], after)
		if shrink > 0 {
			copy(s.data[pos+na:], s.data[pos+nb:s.size])
			s.size -= shrink
			s.data[s.size] = 0
		}

		if fromLeft {
			l = pos + na
			r -= shrink
		} else {
			r = pos - 1
		}
	}
}

// replaceGrowDual handles len(after) > len(before) atomically: pass one
// counts the occurrences and grows the buffer to the exact final size,
// pass two substitutes right-to-left so trailing content is shifted into
// its final place exactly once.
func (s *Str) replaceGrowDual(left, right int, before, after []byte, fromLeft bool) error {
	nb, na := len(before), len(after)
	delta := na - nb

	positions := s.collectMatches(left, right, before, fromLeft)
	if len(positions) == 0 {
		return nil
	}

	growth := len(positions) * delta
	if growth > maxCapacity-s.size {
		return ErrInvalidCapacity
	}
	newSize := s.size + growth
	if err := s.grow(newSize); err != nil {
		return err
	}

	// Reallocation may have moved the buffer; the inputs must not alias
	// the storage the substitutions are about to write.
	if memrange.Overlaps(s.data, before) || memrange.Overlaps(s.data, after) {
		return ErrOverlapReplace
	}

	// Settle from the tail: each iteration moves the source bytes after
	// match i to their final offset, then writes the replacement.
	srcEnd := s.size
	dstEnd := newSize
	for i := len(positions) - 1; i >= 0; i-- {
		pos := positions[i]
		tail := srcEnd - (pos + nb)
		copy(s.data[dstEnd-tail:dstEnd], s.data[pos+nb:srcEnd])
		copy(s.data[dstEnd-tail-na:dstEnd-tail], after)
		dstEnd -= tail + na
		srcEnd = pos
	}

	s.size = newSize
	s.data[s.size] = 0
	return nil
}

// replaceGrowStraight handles len(after) > len(before) optimistically:
// each substitution shifts the tail right immediately, growing on demand.
// If growth is impossible mid-operation the string is left as-is at that
// point, already-performed substitutions included.
func (s *Str) replaceGrowStraight(left, right int, before, after []byte, fromLeft bool) error {
	nb, na := len(before), len(after)
	delta := na - nb

	l, r := left, right
	for r-l+1 >= nb {
		var pos int
		if fromLeft {
			pos = horspool.Index(s.data[l:r+1], before)
		} else {
			pos = horspool.LastIndex(s.data[l:r+1], before)
		}
		if pos < 0 {
			return nil
		}
		pos += l

		newSize := s.size + delta
		if newSize > len(s.data)-1 {
			if !s.owned || s.alloc.Realloc == nil {
				return ErrReplaceExceedsCapacity
			}
			if err := s.grow(newSize); err != nil {
				return err
			}
			if memrange.Overlaps(s.data, before) || memrange.Overlaps(s.data, after) {
				return ErrOverlapReplace
			}
		}

		copy(s.data[pos+na:newSize], s.data[pos+nb:s.size])
		copy(s.data[pos:pos+na], after)
		s.size = newSize
		s.data[s.size] = 0

		if fromLeft {
			l = pos + na
			r += delta
		} else {
			r = pos - 1
		}
	}
	return nil
}

// collectMatches returns the non-overlapping match positions of before
// inside the window, ascending. fromLeft decides which occurrences win
// when candidates overlap.
func (s *Str) collectMatches(left, right int, before []byte, fromLeft bool) []int {
	nb := len(before)
	var positions []int

	if fromLeft {
		l, r := left, right
		for r-l+1 >= nb {
			pos := horspool.Index(s.data[l:r+1], before)
			if pos < 0 {
				break
			}
			pos += l
			positions = append(positions, pos)
			l = pos + nb
		}
		return positions
	}

	l, r := left, right
	for r-l+1 >= nb {
		pos := horspool.LastIndex(s.data[l:r+1], before)
		if pos < 0 {
			break
		}
		pos += l
		positions = append(positions, pos)
		r = pos - 1
	}
	// Scanned right-to-left; pass two wants ascending order.
	for i, j := 0, len(positions)-1; i < j; i, j = i+1, j-1 {
		positions[i], positions[j] = positions[j], positions[i]
	}
	return positions
}
