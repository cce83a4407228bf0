package ansidyn

import (
	"github.com/maxdz-gmbh/mdz-ansi-dyn/internal/byteset"
	"github.com/maxdz-gmbh/mdz-ansi-dyn/internal/horspool"
)

// Insert inserts items at position left, shifting the tail right.
// left == Size appends; left > Size fails with ErrLeftOutOfRange. If the
// new size exceeds the capacity the string grows first (owned strings
// only); growth may replace the backing buffer.
func (s *Str) Insert(left int, items []byte) error {
	if err := s.validate(); err != nil {
		return err
	}
	if err := checkItems(items); err != nil {
		return err
	}
	if left < 0 || left > s.size {
		return ErrLeftOutOfRange
	}
	count := len(items)
	if count > maxCapacity-s.size {
		return ErrCountOutOfRange
	}
	if err := s.checkOverlap(items); err != nil {
		return err
	}
	if err := s.grow(s.size + count); err != nil {
		return err
	}

	copy(s.data[left+count:s.size+count], s.data[left:s.size])
	copy(s.data[left:left+count], items)
	s.size += count
	s.data[s.size] = 0
	return nil
}

// RemoveFrom removes count bytes starting at position left, shifting the
// tail left to close the gap. Capacity is unchanged.
func (s *Str) RemoveFrom(left, count int) error {
	if err := s.validate(); err != nil {
		return err
	}
	if s.size == 0 {
		return ErrEmpty
	}
	if count == 0 {
		return ErrZeroCount
	}
	if left < 0 || left >= s.size {
		return ErrLeftOutOfRange
	}
	if count < 0 || count > s.size-left {
		return ErrCountOutOfRange
	}

	copy(s.data[left:], s.data[left+count:s.size])
	s.size -= count
	s.data[s.size] = 0
	return nil
}

// Remove removes every occurrence of the items substring found inside
// the [left, right] window, re-searching the shrunken remainder until no
// match is left. fromLeft selects the search direction.
func (s *Str) Remove(left, right int, items []byte, fromLeft bool) error {
	if err := s.validate(); err != nil {
		return err
	}
	if s.size == 0 {
		return ErrEmpty
	}
	if err := checkItems(items); err != nil {
		return err
	}
	if err := s.checkWindow(left, right); err != nil {
		return err
	}
	m := len(items)
	if m > right-left+1 {
		return ErrCountOutOfRange
	}
	if err := s.checkOverlap(items); err != nil {
		return err
	}

	l, r := left, right
	for r-l+1 >= m {
		var pos int
		if fromLeft {
			pos = horspool.Index(s.data[l:r+1], items)
		} else {
			pos = horspool.LastIndex(s.data[l:r+1], items)
		}
		if pos < 0 {
			break
		}
		pos += l

		copy(s.data[pos:], s.data[pos+m:s.size])
		s.size -= m
		s.data[s.size] = 0

		if fromLeft {
			l = pos
			r -= m
		} else {
			r = pos - 1
		}
	}
	return nil
}

// TrimLeft removes bytes from the left edge of the window as long as
// they are members of the items set, stopping at the first non-member.
func (s *Str) TrimLeft(left, right int, items []byte) error {
	if err := s.trimChecks(left, right, items); err != nil {
		return err
	}

	set := byteset.Make(items)
	i := left
	for i <= right && set.Contains(s.data[i]) {
		i++
	}
	if i == left {
		return nil
	}

	copy(s.data[left:], s.data[i:s.size])
	s.size -= i - left
	s.data[s.size] = 0
	return nil
}

// TrimRight removes bytes from the right edge of the window as long as
// they are members of the items set, stopping at the first non-member.
func (s *Str) TrimRight(left, right int, items []byte) error {
	if err := s.trimChecks(left, right, items); err != nil {
		return err
	}

	set := byteset.Make(items)
	j := right
	for j >= left && set.Contains(s.data[j]) {
		j--
	}
	if j == right {
		return nil
	}

	copy(s.data[j+1:], s.data[right+1:s.size])
	s.size -= right - j
	s.data[s.size] = 0
	return nil
}

// Trim removes member bytes from both edges of the window.
func (s *Str) Trim(left, right int, items []byte) error {
	if err := s.trimChecks(left, right, items); err != nil {
		return err
	}

	set := byteset.Make(items)
	j := right
	for j >= left && set.Contains(s.data[j]) {
		j--
	}
	i := left
	for i <= j && set.Contains(s.data[i]) {
		i++
	}

	// Close the right gap first so the left shift works on settled bytes.
	if j < right {
		copy(s.data[j+1:], s.data[right+1:s.size])
		s.size -= right - j
	}
	if i > left {
		copy(s.data[left:], s.data[i:s.size])
		s.size -= i - left
	}
	s.data[s.size] = 0
	return nil
}

// Reverse swaps bytes in place from both ends of the [left, right]
// window toward the center. The window must span at least two bytes.
func (s *Str) Reverse(left, right int) error {
	if err := s.validate(); err != nil {
		return err
	}
	if right < 0 || right >= s.size {
		return ErrRightOutOfRange
	}
	if left < 0 || left >= right {
		return ErrLeftOutOfRange
	}

	for i, j := left, right; i < j; i, j = i+1, j-1 {
		s.data[i], s.data[j] = s.data[j], s.data[i]
	}
	return nil
}

func (s *Str) trimChecks(left, right int, items []byte) error {
	if err := s.validate(); err != nil {
		return err
	}
	if s.size == 0 {
		return ErrEmpty
	}
	if err := checkItems(items); err != nil {
		return err
	}
	if err := s.checkWindow(left, right); err != nil {
		return err
	}
	return s.checkOverlap(items)
}
