package ansidyn

import "math"

// maxCapacity is the largest representable content length, leaving room
// for the mandatory terminator byte.
const maxCapacity = math.MaxInt - 1

// AttachMode selects how Attach interprets the caller's buffer contents.
// The policy is explicit; it is never inferred from the buffer.
type AttachMode uint8

const (
	// AttachZeroSize ignores the buffer contents: the string starts
	// empty and a terminator is written at offset 0.
	AttachZeroSize AttachMode = iota

	// AttachSizeWithTerminator trusts the declared size and requires a
	// terminator to already be present at that offset.
	AttachSizeWithTerminator

	// AttachSizeNoTerminator trusts the declared size and writes a
	// terminator at that offset.
	AttachSizeNoTerminator
)

// Str is a dynamically-sized contiguous byte string. The backing buffer
// holds capacity+1 bytes; the byte at offset Size is always the zero
// terminator after any successful operation.
//
// A Str is either owned (buffer obtained from its Allocator, may grow,
// freed by Destroy) or attached (buffer supplied by the caller, never
// grown or freed). Methods are not safe for concurrent use.
type Str struct {
	data  []byte // len(data) == capacity+1; data[size] == 0
	size  int
	owned bool
	alloc Allocator
}

// New creates an empty owned string with the given capacity.
func New(capacity int, opts ...Option) (*Str, error) {
	if capacity < 0 || capacity > maxCapacity {
		return nil, ErrInvalidCapacity
	}

	s := &Str{owned: true, alloc: HeapAllocator()}
	for _, opt := range opts {
		opt(s)
	}

	if s.alloc.Alloc == nil {
		return nil, ErrAllocFuncNotSet
	}
	buf := s.alloc.Alloc(capacity + 1)
	if buf == nil || len(buf) < capacity+1 {
		return nil, ErrAllocFailed
	}

	s.data = buf[:capacity+1]
	s.data[0] = 0
	return s, nil
}

// Attach wraps caller-supplied memory in a string view. The capacity is
// len(buf)-1: one byte is reserved for the terminator. The string never
// grows past that capacity and Destroy never frees the buffer; its
// validity is bounded by the lifetime of buf.
//
// size declares the pre-existing content length and is consulted by the
// two size-preserving modes; AttachZeroSize ignores it.
func Attach(buf []byte, size int, mode AttachMode, opts ...Option) (*Str, error) {
	if buf == nil {
		return nil, ErrNilItems
	}
	if len(buf) < 1 {
		return nil, ErrInvalidCapacity
	}

	s := &Str{data: buf, owned: false}
	for _, opt := range opts {
		opt(s)
	}

	capacity := len(buf) - 1
	switch mode {
	case AttachZeroSize:
		s.size = 0
		buf[0] = 0
	case AttachSizeWithTerminator:
		if size < 0 || size > capacity {
			return nil, ErrSizeExceedsCapacity
		}
		if buf[size] != 0 {
			return nil, ErrNoTerminator
		}
		s.size = size
	case AttachSizeNoTerminator:
		if size < 0 || size > capacity {
			return nil, ErrSizeExceedsCapacity
		}
		buf[size] = 0
		s.size = size
	default:
		return nil, ErrInvalidAttachMode
	}

	return s, nil
}

// Destroy releases the string. For an owned string the buffer is handed
// to the Free hook; for an attached string the caller's buffer is left
// untouched and only the handle is invalidated. Any use after Destroy
// fails with ErrNilStr.
func (s *Str) Destroy() error {
	if s == nil || s.data == nil {
		return ErrNilStr
	}

	if s.owned {
		if s.alloc.Free == nil {
			return ErrFreeFuncNotSet
		}
		s.alloc.Free(s.data)
	}

	s.data = nil
	s.size = 0
	return nil
}

// Size returns the current content length in bytes. A nil or destroyed
// string reports 0.
func (s *Str) Size() int {
	if s == nil || s.data == nil {
		return 0
	}
	return s.size
}

// Capacity returns the maximum content length excluding the terminator.
// A nil or destroyed string reports 0.
func (s *Str) Capacity() int {
	if s == nil || s.data == nil {
		return 0
	}
	return len(s.data) - 1
}

// Owned reports whether the string owns its backing buffer.
func (s *Str) Owned() bool {
	return s != nil && s.owned
}

// Bytes returns the content as a view into the backing buffer, without
// the terminator. The view is invalidated by any mutating call; do not
// cache it across mutations.
func (s *Str) Bytes() []byte {
	if s == nil || s.data == nil {
		return nil
	}
	return s.data[:s.size]
}

// String returns a copy of the content.
func (s *Str) String() string {
	if s == nil || s.data == nil {
		return ""
	}
	return string(s.data[:s.size])
}
