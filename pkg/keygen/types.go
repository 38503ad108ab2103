package keygen

import (
	"strconv"

	"github.com/mrz1836/seedphrase/pkg/seedphrase"
	"github.com/mrz1836/seedphrase/pkg/strkey"
)

// DeriveRequest specifies which accounts to derive from a phrase.
type DeriveRequest struct {
	Phrase     *seedphrase.SeedPhrase
	Passphrase string  // Empty means none
	StartIndex *uint32 // nil = config start index
	Count      int     // 0 = config account count
}

// Index returns a pointer to n for DeriveRequest.StartIndex.
func Index(n uint32) *uint32 {
	return &n
}

// Account is one derived Stellar account at m/44'/148'/Index'.
type Account struct {
	Index      uint32
	Path       string
	PublicKey  strkey.PublicKey
	PrivateKey strkey.PrivateKey
}

// String shows the index, path and account ID only. The value receiver
// keeps the secret out of fmt output for Account values and slices.
func (a Account) String() string {
	return "Account(" + strconv.FormatUint(uint64(a.Index), 10) + " " + a.Path + " " + a.PublicKey.String() + ")"
}

// GoString hides the private key from %#v.
func (a Account) GoString() string {
	return a.String()
}

// Destroy zeroes the private key.
func (a *Account) Destroy() {
	clear(a.PrivateKey[:])
}
