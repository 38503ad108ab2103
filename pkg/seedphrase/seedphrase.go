// Package seedphrase turns BIP39 seed phrases into Stellar key pairs derived
// with SLIP-0010 under m/44'/148'.
//
// A SeedPhrase is immutable and safe to share between goroutines. Every
// derivation runs PBKDF2 on the phrase; derive several keys from one Seed
// to pay that cost once.
package seedphrase

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/mrz1836/seedphrase/internal/mnemonic"
	"github.com/mrz1836/seedphrase/internal/slip10"
	seederr "github.com/mrz1836/seedphrase/pkg/errors"
)

// PathPrefix is the SEP-0005 Stellar account prefix every key is derived under.
const PathPrefix = "m/44'/148'"

// Curve is the signature scheme keys are derived for.
type Curve = slip10.Curve

// Ed25519 is the only curve a SeedPhrase derives for.
const Ed25519 = slip10.Ed25519

// SeedPhrase is a validated BIP39 mnemonic.
type SeedPhrase struct {
	curve   Curve
	phrase  string
	entropy []byte
}

// FromEntropy encodes 16, 20, 24, 28 or 32 bytes of entropy as a phrase.
func FromEntropy(entropy []byte) (*SeedPhrase, error) {
	phrase, err := mnemonic.Encode(entropy)
	if err != nil {
		return nil, seederr.WithDetails(
			seederr.WithCause(seederr.ErrInvalidEntropy, err),
			map[string]string{"length": strconv.Itoa(len(entropy))},
		)
	}

	return &SeedPhrase{
		curve:   Ed25519,
		phrase:  phrase,
		entropy: bytes.Clone(entropy),
	}, nil
}

// FromSeedPhrase validates text as a BIP39 phrase. Leading, trailing and
// repeated whitespace is ignored; words must be lower-case English BIP39 words.
func FromSeedPhrase(text string) (*SeedPhrase, error) {
	phrase := mnemonic.Normalize(text)

	entropy, err := mnemonic.Decode(phrase)
	if err != nil {
		return nil, seederr.WithDetails(
			seederr.WithCause(seederr.ErrInvalidPhrase, err),
			map[string]string{"words": strconv.Itoa(len(strings.Fields(phrase)))},
		)
	}

	return &SeedPhrase{
		curve:   Ed25519,
		phrase:  phrase,
		entropy: entropy,
	}, nil
}

// Parse is an alias of FromSeedPhrase.
func Parse(text string) (*SeedPhrase, error) {
	return FromSeedPhrase(text)
}

// Random generates a new phrase with wc words from the system CSPRNG.
func Random(wc mnemonic.WordCount) (*SeedPhrase, error) {
	if !wc.Valid() {
		return nil, seederr.WithDetails(
			seederr.WithCause(seederr.ErrInvalidEntropy, mnemonic.ErrInvalidWordCount),
			map[string]string{"word_count": strconv.Itoa(int(wc))},
		)
	}

	phrase, err := mnemonic.Random(wc)
	if err != nil {
		return nil, seederr.Wrap(err, "generate seed phrase")
	}
	return FromSeedPhrase(phrase)
}

// Phrase returns the normalized mnemonic text. Treat it as a secret.
func (sp *SeedPhrase) Phrase() string {
	return sp.phrase
}

// Entropy returns a copy of the entropy the phrase encodes.
func (sp *SeedPhrase) Entropy() []byte {
	return bytes.Clone(sp.entropy)
}

// Curve returns the curve keys are derived for.
func (sp *SeedPhrase) Curve() Curve {
	return sp.curve
}

// WordCount returns the number of words in the phrase.
func (sp *SeedPhrase) WordCount() int {
	return len(strings.Fields(sp.phrase))
}

// String hides the phrase so it does not end up in logs.
func (sp *SeedPhrase) String() string {
	return "SeedPhrase(" + strconv.Itoa(sp.WordCount()) + " words)"
}

// GoString hides the phrase from %#v.
func (sp *SeedPhrase) GoString() string {
	return sp.String()
}

// ToSeed derives the 64-byte BIP39 seed. An empty passphrase means none.
// The caller owns the Seed and should Destroy it.
func (sp *SeedPhrase) ToSeed(passphrase string) *Seed {
	return newSeed(sp.curve, mnemonic.Seed(sp.phrase, passphrase))
}

// FromPathString derives the key at PathPrefix+suffix, e.g. suffix "/0'".
// Failures return ErrInvalidIndex with the assembled path in the "path" detail.
func (sp *SeedPhrase) FromPathString(suffix, passphrase string) (*KeyPair, error) {
	full := PathPrefix + suffix
	path, err := slip10.ParsePath(full)
	if err != nil {
		return nil, invalidIndex(full, err)
	}

	seed := sp.ToSeed(passphrase)
	defer seed.Destroy()

	return seed.derive(full, path)
}

// FromPathIndex derives the hardened account key PathPrefix/n'.
func (sp *SeedPhrase) FromPathIndex(n uint32, passphrase string) (*KeyPair, error) {
	return sp.FromPathString(indexSuffix(n), passphrase)
}

// EmptyKey derives the key at PathPrefix itself.
func (sp *SeedPhrase) EmptyKey(passphrase string) (*KeyPair, error) {
	return sp.FromPathString("", passphrase)
}

func indexSuffix(n uint32) string {
	return "/" + strconv.FormatUint(uint64(n), 10) + "'"
}

func invalidIndex(path string, cause error) error {
	return seederr.WithDetails(
		seederr.WithCause(seederr.ErrInvalidIndex, cause),
		map[string]string{"path": path},
	)
}
