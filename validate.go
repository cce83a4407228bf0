package ansidyn

import "github.com/maxdz-gmbh/mdz-ansi-dyn/internal/memrange"

// Pre-flight checks shared by every public operation. Checks run in a
// fixed order and short-circuit on the first failure; a failed check
// means the operation performs no side effects.

// validate checks the structural invariants: live handle, sane capacity,
// size within capacity, terminator present.
func (s *Str) validate() error {
	if s == nil || s.data == nil {
		return ErrNilStr
	}
	if len(s.data) < 1 {
		return ErrInvalidCapacity
	}
	if s.size > len(s.data)-1 {
		return ErrSizeExceedsCapacity
	}
	if s.data[s.size] != 0 {
		return ErrNoTerminator
	}
	return nil
}

// checkWindow validates an inclusive [left, right] window against the
// current content. The right bound is checked first.
func (s *Str) checkWindow(left, right int) error {
	if right < 0 || right >= s.size {
		return ErrRightOutOfRange
	}
	if left < 0 || left > right {
		return ErrLeftOutOfRange
	}
	return nil
}

// checkItems validates a required input slice: present and non-empty.
func checkItems(items []byte) error {
	if items == nil {
		return ErrNilItems
	}
	if len(items) == 0 {
		return ErrZeroCount
	}
	return nil
}

// checkOverlap rejects input that aliases the backing buffer. The whole
// buffer extent is used rather than just the active region: any aliasing
// input would be corrupted by an in-place shift.
func (s *Str) checkOverlap(items []byte) error {
	if memrange.Overlaps(s.data, items) {
		return ErrOverlap
	}
	return nil
}
