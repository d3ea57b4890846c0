package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKey(t *testing.T) {
	cases := []struct {
		name string
		key  string
		want error
	}{
		{"empty", "", ErrEmptyKey},
		{"short_hex", "deadbeef", ErrMalformedKey},
		{"min_length", "0123456789abcdef0123456789abcdef", nil},
		{"mixed_case", "0123456789ABCDEF0123456789abcdef", nil},
		{"long", strings.Repeat("ab", 32), nil},
		{"non_hex", "zz23456789abcdef0123456789abcdef", ErrMalformedKey},
		{"31_chars", "0123456789abcdef0123456789abcde", ErrMalformedKey},
		{"whitespace", " 0123456789abcdef0123456789abcdef", ErrMalformedKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateKey(tc.key), tc.want)
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := New()
	require.False(t, s.Ready())
	require.ErrorIs(t, s.Require(), ErrNoKey)

	require.ErrorIs(t, s.Set("deadbeef"), ErrMalformedKey)
	require.False(t, s.Ready())

	key := "0123456789abcdef0123456789abcdef"
	require.NoError(t, s.Set(key))
	require.True(t, s.Ready())
	require.NoError(t, s.Require())
	assert.Equal(t, []byte(key), s.Key())
}

func TestNilSessionRequire(t *testing.T) {
	var s *Session
	assert.ErrorIs(t, s.Require(), ErrNoKey)
}
