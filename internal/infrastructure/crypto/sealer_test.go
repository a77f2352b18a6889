package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = []byte(strings.Repeat("k", 32))

func TestSealer_RoundTrip(t *testing.T) {
	s, err := NewSealer(key)
	require.NoError(t, err)

	sealed, err := s.Seal("channel-access-token")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "channel-access-token")

	again, err := s.Seal("channel-access-token")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonce must differ per seal")

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "channel-access-token", plain)
}

func TestSealer_Rejects(t *testing.T) {
	_, err := NewSealer([]byte("short"))
	assert.Error(t, err)

	s, err := NewSealer(key)
	require.NoError(t, err)

	_, err = s.Open("%%%")
	assert.ErrorIs(t, err, ErrMalformedSealed)

	_, err = s.Open("YWI=")
	assert.ErrorIs(t, err, ErrMalformedSealed)

	other, err := NewSealer([]byte(strings.Repeat("x", 32)))
	require.NoError(t, err)
	sealed, err := other.Seal("secret")
	require.NoError(t, err)
	_, err = s.Open(sealed)
	assert.Error(t, err)
}
