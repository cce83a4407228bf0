// Package ansidyn provides a dynamically-resizable single-byte string
// container with two coexisting ownership modes: heap-owned strings that
// grow through a pluggable allocator, and strings attached to
// caller-supplied storage that can never grow.
//
// Content is opaque bytes (0..255); there is no Unicode awareness. A
// string may contain zero bytes inside its content, and always carries a
// mandatory zero terminator at offset Size. Capacity is the maximum
// content length excluding that terminator.
//
// Basic usage:
//
//	// Create an owned string with room for 10 bytes
//	s, err := ansidyn.New(10)
//	if err != nil { ... }
//	defer s.Destroy()
//
//	s.Insert(0, []byte("hello"))        // "hello", Size 5
//	pos, _ := s.Find(0, 4, []byte("lo")) // 3
//	s.Replace(0, 4, []byte("l"), []byte("L"), true, ansidyn.ReplaceDual)
//
//	// Attach to caller memory; the library never grows or frees it
//	buf := make([]byte, 16)
//	a, err := ansidyn.Attach(buf, 0, ansidyn.AttachZeroSize)
//
// Windows:
//
// Every search and mutation takes an explicit inclusive [left, right]
// window (or [left, count] span). There are no implicit whole-string
// defaults; pass 0 and Size()-1 to cover the full content.
//
// Errors:
//
// Operations return sentinel errors (see errors.go) and are all-or-nothing:
// a failed call leaves the string exactly as it was, with one documented
// exception (ReplaceStraight, see Replace). Searches report -1 together
// with a nil error when the pattern is simply absent; -1 with a non-nil
// error means the call itself was invalid, so callers must check the
// error to tell the two apart.
//
// Ownership and concurrency:
//
// A string is single-owner and not safe for concurrent mutation; callers
// needing shared access must synchronize externally. Growth may replace
// the backing buffer, so slices previously obtained from Bytes() must not
// be cached across mutating calls. An attached string is a non-owning
// view whose validity is bounded by the lifetime of the caller's buffer.
package ansidyn
