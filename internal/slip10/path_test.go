package slip10

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Path
	}{
		{"master", "m", Path{}},
		{"single hardened", "m/0'", Path{HardenedOffset}},
		{"single normal", "m/7", Path{7}},
		{"stellar account", "m/44'/148'/0'", Path{44 + HardenedOffset, 148 + HardenedOffset, HardenedOffset}},
		{"mixed", "m/44'/0'/0'/0/5", Path{44 + HardenedOffset, HardenedOffset, HardenedOffset, 0, 5}},
		{"max index", "m/2147483647'", Path{0xFFFFFFFF}},
		{"leading zeros", "m/007'", Path{7 + HardenedOffset}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePath(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePath_Invalid(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"M",
		"m/",
		"/0'",
		"44'/148'",
		"m//0'",
		"m/0'/",
		"m/x'",
		"m/'",
		"m/0''",
		"m/'0",
		"m/-1'",
		"m/+1'",
		"m/44'/148'0'",
		"m/2147483648'",
		"m/2147483648",
		"m/4294967296",
		"m/1 '",
		"m /0'",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := ParsePath(input)
			require.ErrorIs(t, err, ErrInvalidPath)
		})
	}
}

func TestParsePath_TooDeep(t *testing.T) {
	t.Parallel()

	s := "m"
	for range MaxDepth + 1 {
		s += "/0'"
	}
	_, err := ParsePath(s)
	require.ErrorIs(t, err, ErrInvalidPath)
}

func TestPath_String(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"m", "m/0'", "m/44'/148'/3'", "m/0/1'/2", "m/2147483647'"} {
		p, err := ParsePath(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}

	p, err := ParsePath("m/007'")
	require.NoError(t, err)
	assert.Equal(t, "m/7'", p.String())
}

func TestIsHardened(t *testing.T) {
	t.Parallel()
	assert.False(t, IsHardened(0))
	assert.False(t, IsHardened(HardenedOffset-1))
	assert.True(t, IsHardened(HardenedOffset))
	assert.True(t, IsHardened(0xFFFFFFFF))
}
