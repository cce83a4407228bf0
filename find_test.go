package ansidyn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	s := newStr(t, 16, "hello")

	pos, err := s.Find(0, 4, []byte("lo"))
	require.NoError(t, err)
	assert.Equal(t, 3, pos)

	pos, err = s.Find(0, 4, []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	pos, err = s.Find(0, 4, []byte("xyz"))
	require.NoError(t, err)
	assert.Equal(t, -1, pos)

	// Window excludes the match.
	pos, err = s.Find(0, 2, []byte("lo"))
	require.NoError(t, err)
	assert.Equal(t, -1, pos)
}

func TestRFind(t *testing.T) {
	s := newStr(t, 16, "abcabcabc")

	pos, err := s.RFind(0, 8, []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 6, pos)

	pos, err = s.RFind(0, 7, []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, pos)

	// Single-byte pattern degenerates to the reverse byte scan.
	pos, err = s.RFind(0, 8, []byte("b"))
	require.NoError(t, err)
	assert.Equal(t, 7, pos)
}

func TestFindByte(t *testing.T) {
	s := newStr(t, 16, "hello")

	pos, err := s.FindByte(0, 4, 'l')
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	pos, err = s.RFindByte(0, 4, 'l')
	require.NoError(t, err)
	assert.Equal(t, 3, pos)

	pos, err = s.FindByte(0, 4, 'z')
	require.NoError(t, err)
	assert.Equal(t, -1, pos)

	// Window is inclusive on both ends.
	pos, err = s.FindByte(4, 4, 'o')
	require.NoError(t, err)
	assert.Equal(t, 4, pos)
}

func TestFindAgreesWithFindByte(t *testing.T) {
	// Horspool with a single-byte pattern must land where the linear
	// byte scan lands, over every window.
	s := newStr(t, 32, "abracadabra")

	for left := 0; left < s.Size(); left++ {
		for right := left; right < s.Size(); right++ {
			for _, b := range []byte("abrcdz") {
				single, err := s.FindByte(left, right, b)
				require.NoError(t, err)
				multi, err := s.Find(left, right, []byte{b})
				require.NoError(t, err)
				assert.Equal(t, single, multi,
					"window [%d,%d] byte %q", left, right, b)

				rsingle, err := s.RFindByte(left, right, b)
				require.NoError(t, err)
				rmulti, err := s.RFind(left, right, []byte{b})
				require.NoError(t, err)
				assert.Equal(t, rsingle, rmulti,
					"reverse window [%d,%d] byte %q", left, right, b)
			}
		}
	}
}

func TestFindWindowErrors(t *testing.T) {
	s := newStr(t, 16, "hello")

	_, err := s.Find(0, 5, []byte("lo")) // right >= size
	assert.ErrorIs(t, err, ErrRightOutOfRange)

	_, err = s.Find(3, 2, []byte("lo")) // left > right
	assert.ErrorIs(t, err, ErrLeftOutOfRange)

	_, err = s.Find(-1, 2, []byte("lo"))
	assert.ErrorIs(t, err, ErrLeftOutOfRange)

	_, err = s.Find(0, 4, nil)
	assert.ErrorIs(t, err, ErrNilItems)

	_, err = s.Find(0, 4, []byte{})
	assert.ErrorIs(t, err, ErrZeroCount)

	// Pattern longer than the window.
	_, err = s.Find(0, 2, []byte("hell"))
	assert.ErrorIs(t, err, ErrCountOutOfRange)
}

func TestFindOverlapRejected(t *testing.T) {
	s := newStr(t, 16, "hello")

	pos, err := s.Find(0, 4, s.Bytes()[1:3])
	assert.ErrorIs(t, err, ErrOverlap)
	assert.Equal(t, -1, pos)
}

func TestFirstOf(t *testing.T) {
	s := newStr(t, 32, "key = value")

	pos, err := s.FirstOf(0, s.Size()-1, []byte("=:"))
	require.NoError(t, err)
	assert.Equal(t, 4, pos)

	pos, err = s.FirstOf(0, s.Size()-1, []byte("#!"))
	require.NoError(t, err)
	assert.Equal(t, -1, pos)

	// Items are a set, not a substring: order is irrelevant.
	pos, err = s.FirstOf(0, s.Size()-1, []byte("e k"))
	require.NoError(t, err)
	assert.Equal(t, 0, pos)
}

func TestFirstNotOf(t *testing.T) {
	s := newStr(t, 32, "   indent")

	pos, err := s.FirstNotOf(0, s.Size()-1, []byte(" \t"))
	require.NoError(t, err)
	assert.Equal(t, 3, pos)

	// Everything is a member.
	w := newStr(t, 8, "    ")
	pos, err = w.FirstNotOf(0, w.Size()-1, []byte(" "))
	require.NoError(t, err)
	assert.Equal(t, -1, pos)
}

func TestLastOfLastNotOf(t *testing.T) {
	s := newStr(t, 32, "value;; ")

	pos, err := s.LastOf(0, s.Size()-1, []byte("; "))
	require.NoError(t, err)
	assert.Equal(t, 7, pos)

	pos, err = s.LastNotOf(0, s.Size()-1, []byte("; "))
	require.NoError(t, err)
	assert.Equal(t, 4, pos)

	pos, err = s.LastOf(0, 4, []byte("; "))
	require.NoError(t, err)
	assert.Equal(t, -1, pos)
}
