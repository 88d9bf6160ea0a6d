package wstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquality(t *testing.T) {
	assert.True(t, New("").Equals(New("")))
	assert.True(t, New("hello").Equals(New("hello")))
	assert.False(t, New("foo").Equals(New("bar")))
	assert.True(t, New("foo").NotEquals(New("bar")))
	assert.False(t, New("foo").Equals(New("foo ")))

	built := NewEmpty()
	for _, b := range []byte("foo") {
		assert.NoError(t, built.AppendByte(b))
	}
	assert.True(t, New("foo").Equals(built))
	assert.True(t, built.Equals(New("foo")))
}

func TestEquality_Laws(t *testing.T) {
	a, b, c := New("same"), New("same"), New("same")
	assert.True(t, a.Equals(a))
	assert.Equal(t, a.Equals(b), b.Equals(a))
	assert.True(t, a.Equals(b) && b.Equals(c) && a.Equals(c))
	for _, s := range []*Wstr{NewEmpty(), New("x"), New("longer text")} {
		assert.Equal(t, 0, s.Compare(s))
		assert.Equal(t, 0, s.Compare(s.Clone()))
	}
}

func TestComparison(t *testing.T) {
	assert.True(t, New("foo").Greater(New("fo")))
	assert.True(t, New("foo").GreaterOrEqual(New("fo")))
	assert.True(t, New("fo").Less(New("foo")))
	assert.True(t, New("fo").LessOrEqual(New("foo")))
	assert.True(t, New("foo").LessOrEqual(New("foo")))
	assert.True(t, New("foo").GreaterOrEqual(New("foo")))

	testCases := []struct {
		name string
		a, b string
		want int
	}{
		{name: "equal", a: "abc", b: "abc", want: 0},
		{name: "first char greater", a: "bbc", b: "abc", want: 1},
		{name: "last char smaller", a: "abb", b: "abc", want: -1},
		{name: "longer wins over smaller chars", a: "aaaa", b: "zzz", want: 1},
		{name: "shorter loses", a: "z", b: "aa", want: -1},
		{name: "empty vs non empty", a: "", b: "a", want: -1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, New(tc.a).Compare(New(tc.b)))
			assert.Equal(t, -tc.want, New(tc.b).Compare(New(tc.a)))
		})
	}
}
