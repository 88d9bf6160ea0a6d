// Package selfcheck exercises wstr end to end through the check harness.
package selfcheck

import (
	"bytes"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuning888/wstr/pkg/check"
	"github.com/xuning888/wstr/pkg/datastruct/wstr"
)

type Scenario struct {
	Name string
	Fn   func(t *check.T)
}

func Scenarios() []Scenario {
	return []Scenario{
		{"equality", testEquality},
		{"comparison", testComparison},
		{"length", testLength},
		{"empty", testEmpty},
		{"append", testAppend},
		{"multiply", testMultiply},
		{"indexed_read", testIndexedRead},
		{"indexed_write", testIndexedWrite},
		{"index_of", testIndexOf},
		{"output", testOutput},
		{"input", testInput},
	}
}

// Run executes every scenario on suite and returns the number of failed ones.
func Run(suite *check.Suite) int {
	for _, sc := range Scenarios() {
		suite.Run(sc.Name, sc.Fn)
	}
	return suite.Failed()
}

func equal(t *check.T, expected, actual *wstr.Wstr) bool {
	return assert.True(t, expected.Equals(actual), "Expected:\n\t%s\nActual:\n\t%s", expected, actual)
}

func notEqual(t *check.T, expected, actual *wstr.Wstr) bool {
	return assert.True(t, expected.NotEquals(actual), "Expected:\n\t%s\nActual:\n\t%s", expected, actual)
}

func mustConcat(t *check.T, a, b *wstr.Wstr) *wstr.Wstr {
	r, err := a.Concat(b)
	require.NoError(t, err)
	return r
}

func mustRepeat(t *check.T, s *wstr.Wstr, count int) *wstr.Wstr {
	r, err := s.Repeat(count)
	require.NoError(t, err)
	return r
}

func testEquality(t *check.T) {
	equal(t, wstr.New(""), wstr.New(""))
	equal(t, wstr.New("hello"), wstr.New("hello"))
	notEqual(t, wstr.New("foo"), wstr.New("bar"))

	built := wstr.NewEmpty()
	for _, b := range []byte("foo") {
		require.NoError(t, built.AppendByte(b))
	}
	equal(t, wstr.New("foo"), built)
}

func testComparison(t *check.T) {
	assert.True(t, wstr.New("foo").Greater(wstr.New("fo")))
	assert.True(t, wstr.New("foo").GreaterOrEqual(wstr.New("fo")))
	assert.True(t, wstr.New("fo").Less(wstr.New("foo")))
	assert.True(t, wstr.New("fo").LessOrEqual(wstr.New("foo")))
}

func testLength(t *check.T) {
	assert.Equal(t, 0, wstr.New("").Len())
	assert.Equal(t, 3, wstr.New("foo").Len())
	assert.Equal(t, 11, wstr.New("Hello world").Len())
}

func testEmpty(t *check.T) {
	assert.True(t, wstr.New("").IsEmpty())
	assert.False(t, wstr.New("hello").IsEmpty())
	assert.False(t, wstr.New(" ").IsEmpty())
	assert.False(t, wstr.New("     ").IsEmpty())
	assert.False(t, wstr.New("\n").IsEmpty())

	filled, err := wstr.NewFilled(0, 'x')
	require.NoError(t, err)
	assert.True(t, filled.IsEmpty())
}

func testAppend(t *check.T) {
	s := wstr.New("")
	equal(t, wstr.New(""), s)
	equal(t, wstr.New("foo"), mustConcat(t, s, wstr.New("foo")))
	equal(t, wstr.New(""), s)

	s.Assign(wstr.New("bar"))
	equal(t, wstr.New("bar"), s)
	equal(t, wstr.New("barbaz"), mustConcat(t, s, wstr.New("baz")))
	equal(t, wstr.New("bar"), s)

	built := wstr.NewEmpty()
	for _, r := range "bar" {
		require.NoError(t, built.AppendRune(r))
	}
	equal(t, wstr.New("bar"), built)
}

func testMultiply(t *check.T) {
	s := wstr.New("")
	equal(t, wstr.New(""), s)
	equal(t, wstr.New(""), mustRepeat(t, s, 3))
	equal(t, wstr.New(""), s)

	s.Assign(wstr.New("bar"))
	equal(t, wstr.New("bar"), s)
	equal(t, wstr.New("barbarbarbarbar"), mustRepeat(t, s, 5))
	equal(t, wstr.New("bar"), s)

	_, err := s.Repeat(wstr.MaxCapacity)
	assert.ErrorIs(t, err, wstr.ErrCapacityExhausted)
}

func testIndexedRead(t *check.T) {
	s := wstr.New("")
	_, err := s.At(0)
	assert.ErrorIs(t, err, wstr.ErrOutOfRange)
	_, err = s.At(1)
	assert.ErrorIs(t, err, wstr.ErrOutOfRange)

	s.Assign(wstr.New("Hello world"))
	for index, want := range map[int]rune{0: 'H', 1: 'e', 10: 'd'} {
		r, err := s.At(index)
		if assert.NoError(t, err) {
			assert.Equal(t, want, r)
		}
	}
	_, err = s.At(11)
	assert.ErrorIs(t, err, wstr.ErrOutOfRange)
}

func testIndexedWrite(t *check.T) {
	s := wstr.New("")
	assert.ErrorIs(t, s.Set(0, 'a'), wstr.ErrOutOfRange)
	assert.ErrorIs(t, s.Set(1, 'b'), wstr.ErrOutOfRange)

	s.Assign(wstr.New("Hello world"))
	for _, index := range []int{0, 5, 10} {
		require.NoError(t, s.Set(index, '*'))
		r, err := s.At(index)
		require.NoError(t, err)
		assert.Equal(t, '*', r)
	}
	assert.ErrorIs(t, s.Set(11, '!'), wstr.ErrOutOfRange)
}

func testIndexOf(t *check.T) {
	s := wstr.NewEmpty()
	assert.Equal(t, check.Some(0), check.Index(s.IndexOf(wstr.New(""))))
	assert.Equal(t, check.None(), check.Index(s.IndexOfRune(' ')))
	assert.Equal(t, check.None(), check.Index(s.IndexOfByte(' ')))
	for _, text := range []string{" ", "h", "hello", "hello world"} {
		assert.Equal(t, check.None(), check.Index(s.IndexOf(wstr.New(text))))
	}

	s.Assign(wstr.New("foo bar baz"))
	assert.Equal(t, check.Some(0), check.Index(s.IndexOf(wstr.New(""))))
	assert.Equal(t, check.Some(0), check.Index(s.IndexOf(wstr.New("foo bar baz"))))
	assert.Equal(t, check.Some(8), check.Index(s.IndexOf(wstr.New("baz"))))

	found := map[byte]int{'f': 0, 'o': 1, 'a': 5, ' ': 3, 'z': 10}
	for ch, want := range found {
		assert.Equal(t, check.Some(want), check.Index(s.IndexOfRune(rune(ch))))
		assert.Equal(t, check.Some(want), check.Index(s.IndexOfByte(ch)))
		assert.Equal(t, check.Some(want), check.Index(s.IndexOf(wstr.FromBytes([]byte{ch}))))
	}
	for _, ch := range []byte{'u', '#', '\n', '\r'} {
		assert.Equal(t, check.None(), check.Index(s.IndexOfRune(rune(ch))))
		assert.Equal(t, check.None(), check.Index(s.IndexOfByte(ch)))
		assert.Equal(t, check.None(), check.Index(s.IndexOf(wstr.FromBytes([]byte{ch}))))
	}
	assert.Equal(t, check.None(), check.Index(s.IndexOf(wstr.New("fo0"))))
	assert.Equal(t, check.None(), check.Index(s.IndexOf(wstr.New("hello world!"))))
}

func testOutput(t *check.T) {
	out := &strings.Builder{}

	out.WriteString("")
	assert.Equal(t, "", out.String())

	_, err := wstr.New("Hello").WriteTo(out)
	require.NoError(t, err)
	assert.Equal(t, "Hello", out.String())

	_, err = wstr.New(" ").WriteTo(out)
	require.NoError(t, err)
	out.WriteString("w")
	assert.Equal(t, "Hello w", out.String())

	out.WriteString("orld")
	out.WriteString("!")
	assert.Equal(t, "Hello world!", out.String())
}

func testInput(t *check.T) {
	in := &bytes.Buffer{}
	in.WriteString("Wow\n")
	s := wstr.NewEmpty()
	require.NoError(t, s.Scan(in))
	equal(t, wstr.New("Wow"), s)

	in.WriteString("OMG")
	s.Assign(wstr.New(""))
	// skip '\n'
	_, err := in.ReadByte()
	require.NoError(t, err)
	require.NoError(t, s.Scan(in))
	equal(t, wstr.New("OMG"), s)
}
