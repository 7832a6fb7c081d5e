package xregistry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFootnotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"lorem ipsum", "lorem ipsum"},
		{"lorem [2] ipsum", "lorem ipsum"},
		{"True [1]", "True"},
		{"False [0]", "False"},
		{"[RFC1149] [3]", "[RFC1149]"},
		{"[RFC1149][RFC2324][42]", "[RFC1149][RFC2324]"},
		{"[RFC4291]", "[RFC4291]"},
		{"N/A [6]", "N/A"},
		{"[1][2]", ""},
		{"[1[2]]", ""},
		{"[]", "[]"},
		{"[1a]", "[1a]"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := StripFootnotes(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, StripFootnotes(got))
		})
	}
}

func TestIsNullLike(t *testing.T) {
	for _, v := range []any{nil, "null", "NULL", " null ", "N/A", "n/a", "N/A [6]"} {
		assert.True(t, IsNullLike(v), "%#v", v)
	}
	for _, v := range []any{"", "none", "nil", false, 0, "N/A [RFC1]"} {
		assert.False(t, IsNullLike(v), "%#v", v)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{true, true},
		{1, true},
		{int64(1), true},
		{uint64(1), true},
		{1.0, true},
		{"1", true},
		{"True", true},
		{"TRUE", true},
		{"yes", true},
		{"On", true},
		{" true ", true},

		{false, false},
		{0, false},
		{int64(0), false},
		{uint64(0), false},
		{0.0, false},
		{"0", false},
		{"False", false},
		{"FALSE", false},
		{"no", false},
		{"off", false},
	}
	for _, tt := range tests {
		got, err := ParseBool(tt.in)
		require.NoError(t, err, "%#v", tt.in)
		assert.Equal(t, tt.want, got, "%#v", tt.in)
	}

	for _, in := range []any{"", "maybe", "2", 2, int64(-1), uint64(7), 0.5, []string{"true"}, nil} {
		_, err := ParseBool(in)
		assert.ErrorIs(t, err, ErrInvalidBool, "%#v", in)
	}
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		in   any
		want Bool
	}{
		// true 及等价值
		{"True", BoolTrue},
		{"True [1]", BoolTrue},
		{"True [0]", BoolTrue},
		{true, BoolTrue},
		{1, BoolTrue},
		{"TRUE", BoolTrue},
		{"yes", BoolTrue},

		// false 及等价值
		{"False", BoolFalse},
		{"False [4]", BoolFalse},
		{"False [0]", BoolFalse},
		{false, BoolFalse},
		{0, BoolFalse},
		{"FALSE", BoolFalse},
		{"no", BoolFalse},

		// 未设置
		{"null", BoolUnset},
		{nil, BoolUnset},
		{"N/A", BoolUnset},
		{"N/A [6]", BoolUnset},
	}
	for _, tt := range tests {
		got, err := coerceBool(tt.in)
		require.NoError(t, err, "%#v", tt.in)
		assert.Equal(t, tt.want, got, "%#v", tt.in)
	}

	_, err := coerceBool("Sometimes [2]")
	assert.ErrorIs(t, err, ErrInvalidBool)
}

func TestCoerceString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"lorem ipsum", "lorem ipsum"},
		{"lorem [2] ipsum", "lorem ipsum"},
		{"[RFC1149] [3]", "[RFC1149]"},
		{"[RFC1149][RFC2324][42]", "[RFC1149][RFC2324]"},
		{"null", ""},
		{nil, ""},
		{"N/A", ""},
		{"N/A [6]", ""},
		{time.Date(2006, 2, 1, 0, 0, 0, 0, time.UTC), "2006-02-01"},
	}
	for _, tt := range tests {
		got, err := coerceString(tt.in)
		require.NoError(t, err, "%#v", tt.in)
		assert.Equal(t, tt.want, got, "%#v", tt.in)
	}

	_, err := coerceString(42)
	assert.ErrorIs(t, err, ErrInvalidString)
}

func TestBool(t *testing.T) {
	assert.False(t, BoolUnset.IsSet())
	assert.False(t, BoolUnset.IsTrue())
	assert.True(t, BoolFalse.IsSet())
	assert.False(t, BoolFalse.IsTrue())
	assert.True(t, BoolTrue.IsSet())
	assert.True(t, BoolTrue.IsTrue())

	v, ok := BoolUnset.Value()
	assert.False(t, v)
	assert.False(t, ok)
	v, ok = BoolTrue.Value()
	assert.True(t, v)
	assert.True(t, ok)

	assert.Equal(t, BoolTrue, BoolOf(true))
	assert.Equal(t, BoolFalse, BoolOf(false))

	assert.Equal(t, "true", BoolTrue.String())
	assert.Equal(t, "false", BoolFalse.String())
	assert.Equal(t, "n/a", BoolUnset.String())

	for b, want := range map[Bool]string{BoolTrue: "true", BoolFalse: "false", BoolUnset: "null"} {
		data, err := b.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}
}
