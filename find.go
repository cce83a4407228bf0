package ansidyn

import (
	"github.com/maxdz-gmbh/mdz-ansi-dyn/internal/byteset"
	"github.com/maxdz-gmbh/mdz-ansi-dyn/internal/horspool"
)

// Search operations. All of them scan an inclusive [left, right] window
// within [0, Size-1] and return the 0-based offset of the match, or -1.
// A -1 with a non-nil error means the call was invalid, not that the
// pattern is absent.

// FindByte returns the first occurrence of item within the window.
func (s *Str) FindByte(left, right int, item byte) (int, error) {
	if err := s.validate(); err != nil {
		return -1, err
	}
	if err := s.checkWindow(left, right); err != nil {
		return -1, err
	}
	if pos := horspool.IndexByte(s.data[left:right+1], item); pos >= 0 {
		return left + pos, nil
	}
	return -1, nil
}

// RFindByte returns the last occurrence of item within the window.
func (s *Str) RFindByte(left, right int, item byte) (int, error) {
	if err := s.validate(); err != nil {
		return -1, err
	}
	if err := s.checkWindow(left, right); err != nil {
		return -1, err
	}
	if pos := horspool.LastIndexByte(s.data[left:right+1], item); pos >= 0 {
		return left + pos, nil
	}
	return -1, nil
}

// Find returns the first occurrence of the items substring within the
// window, using Horspool search. A single-byte pattern degenerates to
// the plain byte scan.
func (s *Str) Find(left, right int, items []byte) (int, error) {
	if err := s.findChecks(left, right, items); err != nil {
		return -1, err
	}
	if pos := horspool.Index(s.data[left:right+1], items); pos >= 0 {
		return left + pos, nil
	}
	return -1, nil
}

// RFind returns the last occurrence of the items substring within the
// window, using the reverse-oriented Horspool search.
func (s *Str) RFind(left, right int, items []byte) (int, error) {
	if err := s.findChecks(left, right, items); err != nil {
		return -1, err
	}
	if pos := horspool.LastIndex(s.data[left:right+1], items); pos >= 0 {
		return left + pos, nil
	}
	return -1, nil
}

// FirstOf returns the first position in the window whose byte is a
// member of items. Items are an unordered set of candidate bytes, not a
// substring.
func (s *Str) FirstOf(left, right int, items []byte) (int, error) {
	if err := s.classChecks(left, right, items); err != nil {
		return -1, err
	}
	set := byteset.Make(items)
	for i := left; i <= right; i++ {
		if set.Contains(s.data[i]) {
			return i, nil
		}
	}
	return -1, nil
}

// FirstNotOf returns the first position in the window whose byte is not
// a member of items.
func (s *Str) FirstNotOf(left, right int, items []byte) (int, error) {
	if err := s.classChecks(left, right, items); err != nil {
		return -1, err
	}
	set := byteset.Make(items)
	for i := left; i <= right; i++ {
		if !set.Contains(s.data[i]) {
			return i, nil
		}
	}
	return -1, nil
}

// LastOf returns the last position in the window whose byte is a member
// of items.
func (s *Str) LastOf(left, right int, items []byte) (int, error) {
	if err := s.classChecks(left, right, items); err != nil {
		return -1, err
	}
	set := byteset.Make(items)
	for i := right; i >= left; i-- {
		if set.Contains(s.data[i]) {
			return i, nil
		}
	}
	return -1, nil
}

// LastNotOf returns the last position in the window whose byte is not a
// member of items.
func (s *Str) LastNotOf(left, right int, items []byte) (int, error) {
	if err := s.classChecks(left, right, items); err != nil {
		return -1, err
	}
	set := byteset.Make(items)
	for i := right; i >= left; i-- {
		if !set.Contains(s.data[i]) {
			return i, nil
		}
	}
	return -1, nil
}

// findChecks validates a substring search: the pattern must also fit the
// window.
func (s *Str) findChecks(left, right int, items []byte) error {
	if err := s.validate(); err != nil {
		return err
	}
	if err := checkItems(items); err != nil {
		return err
	}
	if err := s.checkWindow(left, right); err != nil {
		return err
	}
	if len(items) > right-left+1 {
		return ErrCountOutOfRange
	}
	return s.checkOverlap(items)
}

// classChecks validates a set-membership scan; any non-empty set fits
// any window.
func (s *Str) classChecks(left, right int, items []byte) error {
	if err := s.validate(); err != nil {
		return err
	}
	if err := checkItems(items); err != nil {
		return err
	}
	if err := s.checkWindow(left, right); err != nil {
		return err
	}
	return s.checkOverlap(items)
}
