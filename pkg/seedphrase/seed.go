package seedphrase

import (
	"bytes"
	"runtime"

	"github.com/mrz1836/seedphrase/internal/secure"
	"github.com/mrz1836/seedphrase/internal/slip10"
	seederr "github.com/mrz1836/seedphrase/pkg/errors"
)

// Seed is a 64-byte BIP39 seed held in locked memory.
type Seed struct {
	curve Curve
	data  *secure.Bytes
}

// newSeed takes ownership of raw and zeroes it.
func newSeed(curve Curve, raw []byte) *Seed {
	defer secure.Zero(raw)
	return &Seed{curve: curve, data: secure.FromSlice(raw)}
}

// Bytes returns a copy of the seed bytes, or nil once destroyed.
// The copy is outside locked memory; zero it when done.
func (s *Seed) Bytes() []byte {
	return bytes.Clone(s.data.Bytes())
}

// Len returns the seed length, or 0 once destroyed.
func (s *Seed) Len() int {
	return s.data.Len()
}

// Destroy zeroes the seed. Safe to call more than once.
func (s *Seed) Destroy() {
	s.data.Destroy()
}

// FromPathString derives the key at PathPrefix+suffix.
func (s *Seed) FromPathString(suffix string) (*KeyPair, error) {
	full := PathPrefix + suffix
	path, err := slip10.ParsePath(full)
	if err != nil {
		return nil, invalidIndex(full, err)
	}
	return s.derive(full, path)
}

// FromPathIndex derives the hardened account key PathPrefix/n'.
func (s *Seed) FromPathIndex(n uint32) (*KeyPair, error) {
	return s.FromPathString(indexSuffix(n))
}

// EmptyKey derives the key at PathPrefix itself.
func (s *Seed) EmptyKey() (*KeyPair, error) {
	return s.FromPathString("")
}

func (s *Seed) derive(full string, path slip10.Path) (*KeyPair, error) {
	seed := s.data.Bytes()
	if seed == nil {
		return nil, seederr.WithDetails(seederr.ErrInvalidInput, map[string]string{"seed": "destroyed"})
	}

	key, err := slip10.Derive(seed, s.curve, path)
	// seed aliases locked memory that a finalizer zeroes.
	runtime.KeepAlive(s.data)
	if err != nil {
		return nil, invalidIndex(full, err)
	}
	defer key.Zero()

	return newKeyPair(full, key), nil
}
