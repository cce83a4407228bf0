package ansidyn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareFull(t *testing.T) {
	s := newStr(t, 16, "hello")

	res, err := s.Compare(0, []byte("hello"), false)
	require.NoError(t, err)
	assert.Equal(t, CompareEqual, res)

	res, err = s.Compare(0, []byte("hellx"), false)
	require.NoError(t, err)
	assert.Equal(t, CompareNonEqual, res)

	// Full compare from an offset covers the remaining content only.
	res, err = s.Compare(2, []byte("llo"), false)
	require.NoError(t, err)
	assert.Equal(t, CompareEqual, res)

	// Length mismatch is non-equal for a full compare.
	res, err = s.Compare(0, []byte("hell"), false)
	require.NoError(t, err)
	assert.Equal(t, CompareNonEqual, res)
}

func TestComparePartial(t *testing.T) {
	s := newStr(t, 16, "hello")

	res, err := s.Compare(0, []byte("hell"), true)
	require.NoError(t, err)
	assert.Equal(t, CompareEqual, res)

	res, err = s.Compare(1, []byte("ell"), true)
	require.NoError(t, err)
	assert.Equal(t, CompareEqual, res)

	res, err = s.Compare(1, []byte("elx"), true)
	require.NoError(t, err)
	assert.Equal(t, CompareNonEqual, res)
}

func TestCompareErrors(t *testing.T) {
	s := newStr(t, 16, "hello")

	res, err := s.Compare(0, nil, true)
	assert.ErrorIs(t, err, ErrNilItems)
	assert.Equal(t, CompareError, res)

	res, err = s.Compare(0, []byte{}, true)
	assert.ErrorIs(t, err, ErrZeroCount)
	assert.Equal(t, CompareError, res)

	res, err = s.Compare(5, []byte("x"), true)
	assert.ErrorIs(t, err, ErrLeftOutOfRange)
	assert.Equal(t, CompareError, res)

	// More bytes than remain after the offset.
	res, err = s.Compare(3, []byte("low"), true)
	assert.ErrorIs(t, err, ErrCountOutOfRange)
	assert.Equal(t, CompareError, res)
}

func TestCompareResultString(t *testing.T) {
	assert.Equal(t, "equal", CompareEqual.String())
	assert.Equal(t, "non-equal", CompareNonEqual.String())
	assert.Equal(t, "greater", CompareGreater.String())
	assert.Equal(t, "smaller", CompareSmaller.String())
	assert.Equal(t, "error", CompareError.String())
}

func TestCountNonOverlapped(t *testing.T) {
	s := newStr(t, 16, "llll")

	n, err := s.Count(0, 3, []byte("ll"), false, true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Direction does not change the non-overlapped total here.
	n, err = s.Count(0, 3, []byte("ll"), false, false)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountOverlapped(t *testing.T) {
	s := newStr(t, 16, "llll")

	n, err := s.Count(0, 3, []byte("ll"), true, true)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = s.Count(0, 3, []byte("ll"), true, false)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCountWindowed(t *testing.T) {
	s := newStr(t, 32, "ab ab ab")

	n, err := s.Count(0, 4, []byte("ab"), false, true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.Count(3, 7, []byte("ab"), false, true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountAbsent(t *testing.T) {
	s := newStr(t, 16, "hello")

	n, err := s.Count(0, 4, []byte("xyz"), false, true)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCountErrors(t *testing.T) {
	s := newStr(t, 16, "hello")

	_, err := s.Count(0, 5, []byte("l"), false, true)
	assert.ErrorIs(t, err, ErrRightOutOfRange)

	_, err = s.Count(0, 2, []byte("hell"), false, true)
	assert.ErrorIs(t, err, ErrCountOutOfRange)

	_, err = s.Count(0, 4, nil, false, true)
	assert.ErrorIs(t, err, ErrNilItems)
}

func TestCountAgreesWithReplaceGrowth(t *testing.T) {
	// The count drives replace's exact final size: verify they line up.
	s := newStr(t, 16, "one one one")

	n, err := s.Count(0, s.Size()-1, []byte("one"), false, true)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	sizeBefore := s.Size()
	require.NoError(t, s.Replace(0, s.Size()-1, []byte("one"), []byte("three"), true, ReplaceDual))
	assert.Equal(t, "three three three", s.String())
	assert.Equal(t, sizeBefore+n*2, s.Size())
}
