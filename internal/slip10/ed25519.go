package slip10

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/mrz1836/seedphrase/internal/secure"
)

// ed25519Domain is the HMAC key for the SLIP-0010 ed25519 master key.
const ed25519Domain = "ed25519 seed"

func deriveEd25519(seed []byte, path Path) (*Key, error) {
	for _, index := range path {
		if !IsHardened(index) {
			return nil, fmt.Errorf("%w: index %d", ErrNonHardened, index)
		}
	}

	key := &Key{Curve: Ed25519}
	setFromDigest(key, hmacSHA512([]byte(ed25519Domain), seed))

	// I = HMAC-SHA512(chain, 0x00 || key || ser32(index))
	data := make([]byte, 1+KeySize+4)
	defer secure.Zero(data)

	for _, index := range path {
		copy(data[1:], key.Key[:])
		binary.BigEndian.PutUint32(data[1+KeySize:], index)
		setFromDigest(key, hmacSHA512(key.ChainCode[:], data))
		key.Depth++
	}

	return key, nil
}

func hmacSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	_, _ = mac.Write(data)
	return mac.Sum(nil)
}

// setFromDigest splits I into IL (key) and IR (chain code) and wipes I.
func setFromDigest(key *Key, digest []byte) {
	copy(key.Key[:], digest[:KeySize])
	copy(key.ChainCode[:], digest[KeySize:])
	secure.Zero(digest)
}
