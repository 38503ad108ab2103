package strkey

import (
	"crypto/ed25519"
	"fmt"

	stellar "github.com/stellar/go-stellar-sdk/strkey"
)

// PublicKey is a raw ed25519 public key that renders as a "G..." StrKey.
type PublicKey [PayloadSize]byte

// PrivateKey is a raw ed25519 private scalar that renders as a "S..." StrKey.
type PrivateKey [PayloadSize]byte

// ParsePublicKey decodes a "G..." StrKey. Failures return seederr.ErrInvalidKey.
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey
	payload, err := decodeKey(VersionByteAccountID, s)
	if err != nil {
		return pk, err
	}
	copy(pk[:], payload)
	return pk, nil
}

// ParsePrivateKey decodes a "S..." StrKey. Failures return seederr.ErrInvalidKey.
func ParsePrivateKey(s string) (PrivateKey, error) {
	var sk PrivateKey
	payload, err := decodeKey(VersionByteSeed, s)
	if err != nil {
		return sk, err
	}
	copy(sk[:], payload)
	clear(payload)
	return sk, nil
}

func decodeKey(version VersionByte, s string) ([]byte, error) {
	payload, err := Decode(version, s)
	if err != nil {
		return nil, err
	}
	if len(payload) != PayloadSize {
		clear(payload)
		return nil, invalidKey(version, fmt.Errorf("%w: got %d, want %d", ErrInvalidPayload, len(payload), PayloadSize))
	}
	return payload, nil
}

// String returns the "G..." StrKey.
func (k PublicKey) String() string {
	return stellar.MustEncode(VersionByteAccountID, k[:])
}

// Bytes returns a copy of the raw key.
func (k PublicKey) Bytes() []byte {
	return append([]byte(nil), k[:]...)
}

// Verify reports whether sig is a valid ed25519 signature of msg by k.
func (k PublicKey) Verify(msg, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(k[:]), msg, sig)
}

// String returns the "S..." StrKey. Treat the result as a secret.
func (k PrivateKey) String() string {
	return stellar.MustEncode(VersionByteSeed, k[:])
}

// Bytes returns a copy of the raw scalar.
func (k PrivateKey) Bytes() []byte {
	return append([]byte(nil), k[:]...)
}

// PublicKey computes the ed25519 public key for the scalar.
func (k PrivateKey) PublicKey() PublicKey {
	priv := ed25519.NewKeyFromSeed(k[:])
	defer clear(priv)

	var pk PublicKey
	copy(pk[:], priv[ed25519.SeedSize:])
	return pk
}
