// Package mnemonic is the BIP39 codec: entropy to phrase, phrase validation,
// random phrase generation and phrase-to-seed derivation over the English
// word list.
package mnemonic

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"

	"github.com/mrz1836/seedphrase/internal/secure"
)

// SeedSize is the length of a BIP39 seed in bytes.
const SeedSize = 64

var (
	// ErrInvalidEntropy indicates the entropy length is not supported by BIP39.
	ErrInvalidEntropy = errors.New("entropy must be 16, 20, 24, 28 or 32 bytes")

	// ErrInvalidWordCount indicates the phrase does not have 12, 15, 18, 21 or 24 words.
	ErrInvalidWordCount = errors.New("word count must be 12, 15, 18, 21 or 24")

	// ErrUnknownWord indicates a word is not in the BIP39 word list.
	ErrUnknownWord = errors.New("word is not in the BIP39 word list")

	// ErrChecksum indicates the phrase checksum does not match its entropy.
	ErrChecksum = errors.New("mnemonic checksum mismatch")

	// numberedListRegex matches numbered list prefixes like "1." "2)" "3:"
	numberedListRegex = regexp.MustCompile(`(?m)^\s*\d+[\.\)\:]\s*`)

	// bulletListRegex matches bullet prefixes like "- " "* " "• "
	bulletListRegex = regexp.MustCompile(`(?m)^\s*[-*•]\s*`)
)

// WordCount is a supported BIP39 phrase length.
type WordCount int

// Supported phrase lengths.
const (
	Words12 WordCount = 12
	Words15 WordCount = 15
	Words18 WordCount = 18
	Words21 WordCount = 21
	Words24 WordCount = 24
)

// WordCounts lists every supported phrase length, shortest first.
func WordCounts() []WordCount {
	return []WordCount{Words12, Words15, Words18, Words21, Words24}
}

// Valid reports whether w is a supported phrase length.
func (w WordCount) Valid() bool {
	return w.EntropyBytes() != 0
}

// EntropyBytes returns the entropy size for the phrase length, or 0 if unsupported.
// Every 3 words carry 32 bits of entropy plus 1 checksum bit.
func (w WordCount) EntropyBytes() int {
	switch w {
	case Words12, Words15, Words18, Words21, Words24:
		return int(w) / 3 * 4
	default:
		return 0
	}
}

// WordCountForEntropy returns the phrase length produced by n bytes of entropy.
func WordCountForEntropy(n int) (WordCount, bool) {
	for _, w := range WordCounts() {
		if w.EntropyBytes() == n {
			return w, true
		}
	}
	return 0, false
}

// Encode converts entropy into a mnemonic phrase.
func Encode(entropy []byte) (string, error) {
	if _, ok := WordCountForEntropy(len(entropy)); !ok {
		return "", fmt.Errorf("%w: got %d bytes", ErrInvalidEntropy, len(entropy))
	}

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEntropy, err)
	}
	return phrase, nil
}

// Decode validates a normalized phrase and returns the entropy it encodes.
// It checks word count, word membership and checksum, in that order.
// The returned entropy should be zeroed after use.
func Decode(phrase string) ([]byte, error) {
	words := strings.Split(phrase, " ")
	if phrase == "" || !WordCount(len(words)).Valid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWordCount, len(strings.Fields(phrase)))
	}

	for i, word := range words {
		if !IsValidWord(word) {
			return nil, fmt.Errorf("%w: word %d", ErrUnknownWord, i+1)
		}
	}

	entropy, err := bip39.EntropyFromMnemonic(phrase)
	if err != nil {
		if errors.Is(err, bip39.ErrChecksumIncorrect) {
			return nil, ErrChecksum
		}
		return nil, fmt.Errorf("decode mnemonic: %w", err)
	}
	return entropy, nil
}

// Random generates a fresh phrase of the given length from secure.Reader.
func Random(wc WordCount) (string, error) {
	if !wc.Valid() {
		return "", fmt.Errorf("%w: got %d", ErrInvalidWordCount, wc)
	}

	entropy, err := secure.Random(wc.EntropyBytes())
	if err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	defer entropy.Destroy()

	return Encode(entropy.Bytes())
}

// Seed derives the 64-byte BIP39 seed from a phrase and passphrase
// (PBKDF2-HMAC-SHA512, 2048 rounds, salt "mnemonic"+passphrase).
// Both inputs are NFKD-normalized first, so composed and decomposed forms of
// the same passphrase give the same seed. go-bip39 does not normalize.
// The phrase is not validated here. The returned seed should be zeroed after use.
func Seed(phrase, passphrase string) []byte {
	return bip39.NewSeed(norm.NFKD.String(phrase), norm.NFKD.String(passphrase))
}

// Normalize trims the phrase and collapses whitespace runs into single spaces.
func Normalize(phrase string) string {
	return strings.Join(strings.Fields(phrase), " ")
}

// CleanInput prepares pasted phrase text by:
// - Converting to lowercase
// - Removing numbered list prefixes (1. 2) 3: etc.)
// - Removing bullet prefixes (- * •)
// - Replacing commas with spaces
// - Collapsing whitespace and trimming
func CleanInput(input string) string {
	input = strings.ToLower(input)
	input = numberedListRegex.ReplaceAllString(input, " ")
	input = bulletListRegex.ReplaceAllString(input, " ")
	input = strings.ReplaceAll(input, ",", " ")
	return Normalize(input)
}

// WordList returns the BIP39 English word list.
func WordList() []string {
	return bip39.GetWordList()
}

// IsValidWord checks if a word is in the BIP39 word list.
func IsValidWord(word string) bool {
	_, ok := bip39.GetWordIndex(word)
	return ok
}
