package ansidyn

import "errors"

// Errors returned by string operations. Validation short-circuits on
// the first failing check, so at most one of these is reported per call.
var (
	// ErrNilStr reports a nil or destroyed string handle.
	ErrNilStr = errors.New("string is nil")

	// ErrInvalidCapacity reports a requested or structural capacity
	// outside the representable range.
	ErrInvalidCapacity = errors.New("capacity out of range")

	// ErrEmpty reports an operation that requires content on an empty
	// string.
	ErrEmpty = errors.New("string is empty")

	// ErrSizeExceedsCapacity reports structural corruption: the recorded
	// size is larger than the capacity.
	ErrSizeExceedsCapacity = errors.New("size exceeds capacity")

	// ErrNoTerminator reports structural corruption: the mandatory zero
	// byte at the size offset is missing.
	ErrNoTerminator = errors.New("missing terminator at size offset")

	// ErrNilItems reports a required input slice that is nil.
	ErrNilItems = errors.New("items is nil")

	// ErrZeroCount reports a required input length of zero.
	ErrZeroCount = errors.New("count is zero")

	// ErrLeftOutOfRange reports a left position beyond its allowed bound.
	ErrLeftOutOfRange = errors.New("left position out of range")

	// ErrRightOutOfRange reports a right position at or beyond the size.
	ErrRightOutOfRange = errors.New("right position out of range")

	// ErrCountOutOfRange reports a count larger than the window or
	// remaining content it applies to.
	ErrCountOutOfRange = errors.New("count exceeds window")

	// ErrOverlap reports caller input that aliases the string's own
	// storage.
	ErrOverlap = errors.New("items overlap string storage")

	// ErrOverlapReplace reports input that aliases the string's storage
	// after replacement has relocated or resized it.
	ErrOverlapReplace = errors.New("items overlap string storage after replacement")

	// ErrAttached reports a growth attempt on a string backed by
	// caller-supplied memory. Attachment is a hard capacity ceiling.
	ErrAttached = errors.New("attached string cannot grow")

	// ErrAllocFuncNotSet reports a creation attempt with no Alloc hook.
	ErrAllocFuncNotSet = errors.New("alloc function not set")

	// ErrReallocFuncNotSet reports a growth attempt with no Realloc hook.
	ErrReallocFuncNotSet = errors.New("realloc function not set")

	// ErrFreeFuncNotSet reports a destroy attempt on an owned string
	// with no Free hook.
	ErrFreeFuncNotSet = errors.New("free function not set")

	// ErrAllocFailed reports an allocator hook returning no usable buffer.
	ErrAllocFailed = errors.New("allocation failed")

	// ErrInvalidAttachMode reports an unknown AttachMode value.
	ErrInvalidAttachMode = errors.New("invalid attach mode")

	// ErrInvalidReplaceMode reports an unknown ReplaceMode value.
	ErrInvalidReplaceMode = errors.New("invalid replace mode")

	// ErrReplaceExceedsCapacity reports a single-pass replacement that
	// ran out of capacity with no way to grow. The string may be left
	// partially replaced; see Replace.
	ErrReplaceExceedsCapacity = errors.New("replacement exceeds capacity")
)
