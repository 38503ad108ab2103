package seedphrase

import (
	"bytes"
	"fmt"

	"github.com/mrz1836/seedphrase/internal/secure"
	"github.com/mrz1836/seedphrase/internal/slip10"
	"github.com/mrz1836/seedphrase/pkg/strkey"
)

// KeyPair is a derived Stellar key pair.
type KeyPair struct {
	path    string
	public  []byte
	private strkey.PrivateKey
}

func newKeyPair(path string, key *slip10.Key) *KeyPair {
	return &KeyPair{
		path:    path,
		public:  key.PublicKey(),
		private: strkey.PrivateKey(key.Key),
	}
}

// Public returns the account ID. The deriver emits a one-byte prefix before
// the 32-byte key; any other length is a bug in the deriver and panics.
func (kp *KeyPair) Public() strkey.PublicKey {
	if len(kp.public) != slip10.PublicKeySize {
		panic(fmt.Sprintf("seedphrase: derived public key is %d bytes, want %d", len(kp.public), slip10.PublicKeySize))
	}

	var pk strkey.PublicKey
	copy(pk[:], kp.public[1:])
	return pk
}

// Private returns the raw 32-byte private scalar.
func (kp *KeyPair) Private() strkey.PrivateKey {
	return kp.private
}

// PublicKeyBytes returns the raw 32-byte public key.
func (kp *KeyPair) PublicKeyBytes() []byte {
	pk := kp.Public()
	return bytes.Clone(pk[:])
}

// Path returns the full derivation path, e.g. m/44'/148'/0'.
func (kp *KeyPair) Path() string {
	return kp.path
}

// Destroy zeroes the private scalar.
func (kp *KeyPair) Destroy() {
	secure.Zero(kp.private[:])
}

// String shows the path and account ID only. The value receiver covers
// KeyPair values as well as pointers.
func (kp KeyPair) String() string {
	return "KeyPair(" + kp.path + " " + kp.Public().String() + ")"
}

// GoString hides the private key from %#v.
func (kp KeyPair) GoString() string {
	return kp.String()
}
