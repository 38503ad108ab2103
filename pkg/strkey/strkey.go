// Package strkey renders raw Stellar keys as StrKey text (SEP-0023) and parses
// them back. The codec is the Stellar SDK's; this package adds fixed-size key
// types and folds decode failures into seederr.ErrInvalidKey.
package strkey

import (
	"errors"
	"strconv"

	stellar "github.com/stellar/go-stellar-sdk/strkey"

	seederr "github.com/mrz1836/seedphrase/pkg/errors"
)

// VersionByte identifies the kind of key in a StrKey.
type VersionByte = stellar.VersionByte

// Version bytes for the two key kinds this package handles.
const (
	VersionByteAccountID = stellar.VersionByteAccountID // G
	VersionByteSeed      = stellar.VersionByteSeed      // S
)

// PayloadSize is the length of an ed25519 key payload.
const PayloadSize = 32

// ErrInvalidPayload indicates the decoded payload has the wrong length.
var ErrInvalidPayload = errors.New("invalid strkey payload length")

// Encode renders payload under version.
func Encode(version VersionByte, payload []byte) (string, error) {
	s, err := stellar.Encode(version, payload)
	if err != nil {
		return "", invalidKey(version, err)
	}
	return s, nil
}

// Decode parses s and returns its payload. Bad base32, non-canonical text,
// a version mismatch and a checksum mismatch all return seederr.ErrInvalidKey
// with the SDK error as cause.
func Decode(version VersionByte, s string) ([]byte, error) {
	payload, err := stellar.Decode(version, s)
	if err != nil {
		return nil, invalidKey(version, err)
	}
	return payload, nil
}

func invalidKey(version VersionByte, cause error) error {
	return seederr.WithDetails(
		seederr.WithCause(seederr.ErrInvalidKey, cause),
		map[string]string{"kind": kind(version)},
	)
}

func kind(version VersionByte) string {
	switch version {
	case VersionByteAccountID:
		return "account_id"
	case VersionByteSeed:
		return "seed"
	default:
		return "version_" + strconv.Itoa(int(version))
	}
}
