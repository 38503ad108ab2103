package seedphrase

import (
	"encoding/hex"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seederr "github.com/mrz1836/seedphrase/pkg/errors"
)

func TestSeed_MatchesSeedPhraseDerivation(t *testing.T) {
	t.Parallel()

	sp := mustParse(t, illnessPhrase)
	seed := sp.ToSeed("")
	defer seed.Destroy()

	for _, n := range []uint32{0, 1, 2, 9} {
		fromSeed, err := seed.FromPathIndex(n)
		require.NoError(t, err)
		fromPhrase, err := sp.FromPathIndex(n, "")
		require.NoError(t, err)
		assert.Equal(t, fromPhrase.Public(), fromSeed.Public())
		assert.Equal(t, fromPhrase.Private(), fromSeed.Private())
	}

	empty, err := seed.EmptyKey()
	require.NoError(t, err)
	assert.Equal(t, PathPrefix, empty.Path())

	nested, err := seed.FromPathString("/0'/0'")
	require.NoError(t, err)
	assert.Equal(t, "m/44'/148'/0'/0'", nested.Path())
}

func TestSeed_InvalidPath(t *testing.T) {
	t.Parallel()

	seed := mustParse(t, abandonPhrase).ToSeed("")
	defer seed.Destroy()

	_, err := seed.FromPathString("/abc")
	require.ErrorIs(t, err, seederr.ErrInvalidIndex)
	assert.Equal(t, "m/44'/148'/abc", seederr.Detail(err, "path"))

	_, err = seed.FromPathIndex(1 << 31)
	require.ErrorIs(t, err, seederr.ErrInvalidIndex)
}

func TestSeed_Destroy(t *testing.T) {
	t.Parallel()

	seed := mustParse(t, abandonPhrase).ToSeed("")
	raw := seed.Bytes()
	require.Len(t, raw, 64)

	seed.Destroy()
	assert.Equal(t, abandonSeed, hex.EncodeToString(raw), "Bytes returns a copy")
	assert.Nil(t, seed.Bytes())
	assert.Zero(t, seed.Len())
	assert.NotPanics(t, seed.Destroy)

	kp, err := seed.EmptyKey()
	require.ErrorIs(t, err, seederr.ErrInvalidInput)
	assert.Nil(t, kp)
}

func TestNewSeed_ZeroesInput(t *testing.T) {
	t.Parallel()

	raw := []byte{1, 2, 3, 4}
	seed := newSeed(Ed25519, raw)
	defer seed.Destroy()

	assert.Equal(t, []byte{0, 0, 0, 0}, raw)
	assert.Equal(t, []byte{1, 2, 3, 4}, seed.Bytes())
}

func TestSeed_BytesSurviveCollection(t *testing.T) {
	t.Parallel()

	// The Seed itself is unreachable once Bytes returns.
	raw := mustParse(t, abandonPhrase).ToSeed("").Bytes()
	for range 5 {
		runtime.GC()
	}
	assert.Equal(t, abandonSeed, hex.EncodeToString(raw))

	kp, err := mustParse(t, abandonPhrase).ToSeed("").EmptyKey()
	require.NoError(t, err)
	runtime.GC()

	want, err := mustParse(t, abandonPhrase).EmptyKey("")
	require.NoError(t, err)
	assert.Equal(t, want.Private(), kp.Private())
}

func TestSeed_BytesIsACopy(t *testing.T) {
	t.Parallel()

	seed := mustParse(t, abandonPhrase).ToSeed("")
	defer seed.Destroy()

	raw := seed.Bytes()
	clear(raw)
	assert.Equal(t, abandonSeed, hex.EncodeToString(seed.Bytes()))
}
