package secure

import (
	"crypto/rand"
	"io"
)

// Reader is the cryptographically secure random source used for
// mnemonic generation. Tests may swap it.
//
//nolint:gochecknoglobals // Package-level RNG is required for testability
var Reader io.Reader = rand.Reader

// Random reads n bytes from Reader into locked memory.
func Random(n int) (*Bytes, error) {
	b := New(n)
	if _, err := io.ReadFull(Reader, b.Bytes()); err != nil {
		b.Destroy()
		return nil, err
	}
	return b, nil
}
