// Package slip10 derives hierarchical deterministic ed25519 keys from a BIP39
// seed following SLIP-0010. Only hardened derivation is defined for ed25519.
package slip10

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/mrz1836/seedphrase/internal/secure"
)

// Key sizes.
const (
	KeySize       = 32
	ChainCodeSize = 32
	PublicKeySize = 33
	MinSeedSize   = 16
	MaxSeedSize   = 64
)

var (
	// ErrNonHardened indicates a non-hardened index on a curve that forbids it.
	ErrNonHardened = errors.New("curve supports hardened derivation only")

	// ErrUnsupportedCurve indicates the curve value is unknown.
	ErrUnsupportedCurve = errors.New("unsupported curve")

	// ErrInvalidSeed indicates the seed length is outside 16..64 bytes.
	ErrInvalidSeed = errors.New("seed must be between 16 and 64 bytes")
)

// Curve selects the signature scheme a key is derived for.
type Curve int

// Ed25519 is the only curve keys are derived for.
const Ed25519 Curve = iota

// String returns the SLIP-0010 curve name.
func (c Curve) String() string {
	if c == Ed25519 {
		return "ed25519"
	}
	return fmt.Sprintf("Curve(%d)", int(c))
}

// Key is a derived private key with its chain code.
type Key struct {
	Curve     Curve
	Depth     uint8
	Key       [KeySize]byte
	ChainCode [ChainCodeSize]byte
}

// Derive walks path from the master key of seed on the given curve.
func Derive(seed []byte, curve Curve, path Path) (*Key, error) {
	if curve != Ed25519 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurve, curve)
	}
	if len(seed) < MinSeedSize || len(seed) > MaxSeedSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSeed, len(seed))
	}
	if len(path) > MaxDepth {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", ErrInvalidPath, len(path), MaxDepth)
	}
	return deriveEd25519(seed, path)
}

// PublicKey returns the 33-byte public key: 0x00 followed by the ed25519 key.
// It returns nil for a key on an unknown curve.
func (k *Key) PublicKey() []byte {
	if k.Curve != Ed25519 {
		return nil
	}

	priv := ed25519.NewKeyFromSeed(k.Key[:])
	defer secure.Zero(priv)

	pub := make([]byte, 0, PublicKeySize)
	pub = append(pub, 0x00)
	return append(pub, priv[ed25519.SeedSize:]...)
}

// Zero wipes the private key and chain code.
func (k *Key) Zero() {
	if k == nil {
		return
	}
	secure.Zero(k.Key[:])
	secure.Zero(k.ChainCode[:])
}
