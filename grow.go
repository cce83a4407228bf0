package ansidyn

// grow ensures the string can hold newSize content bytes plus the
// terminator, reallocating through the Realloc hook when needed. The new
// buffer is sized to exactly fit: every capacity change is explicit and
// caller-visible, never a hidden growth heuristic.
//
// Growth is refused unconditionally for attached strings. On any
// failure the original buffer is left valid and unmodified.
func (s *Str) grow(newSize int) error {
	if newSize <= len(s.data)-1 {
		return nil
	}
	if !s.owned {
		return ErrAttached
	}
	if s.alloc.Realloc == nil {
		return ErrReallocFuncNotSet
	}

	next := s.alloc.Realloc(s.data, newSize+1)
	if next == nil || len(next) < newSize+1 {
		return ErrAllocFailed
	}

	s.data = next[:newSize+1]
	return nil
}
