package ansidyn

// Allocator supplies the memory hooks a string uses for its backing
// buffer. Each hook is independently optional; an operation that needs
// an unset hook fails with a dedicated error (ErrAllocFuncNotSet,
// ErrReallocFuncNotSet or ErrFreeFuncNotSet) instead of panicking.
//
// An Allocator is injected per string via WithAllocator, which keeps
// tests hermetic: a failing or partial allocator affects only the
// strings it was given to.
type Allocator struct {
	// Alloc returns a buffer of at least size bytes, or nil on failure.
	Alloc func(size int) []byte

	// Realloc returns a buffer of at least size bytes carrying the
	// contents of buf, or nil on failure. On failure the original buf
	// must remain valid so the string can roll back untouched.
	Realloc func(buf []byte, size int) []byte

	// Free releases a buffer obtained from Alloc or Realloc.
	Free func(buf []byte)
}

// HeapAllocator returns the default Allocator backed by the Go heap.
// Free is a no-op; the garbage collector reclaims released buffers.
func HeapAllocator() Allocator {
	return Allocator{
		Alloc: func(size int) []byte {
			return make([]byte, size)
		},
		Realloc: func(buf []byte, size int) []byte {
			next := make([]byte, size)
			copy(next, buf)
			return next
		},
		Free: func([]byte) {},
	}
}
