package ansidyn

// Option is a functional option for configuring a string at creation.
type Option func(*Str)

// WithAllocator sets the memory hooks used by an owned string. Strings
// created by New use HeapAllocator by default; attached strings never
// invoke any hook.
func WithAllocator(a Allocator) Option {
	return func(s *Str) {
		s.alloc = a
	}
}
