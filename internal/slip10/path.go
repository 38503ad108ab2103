package slip10

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HardenedOffset is added to an index to mark hardened derivation.
const HardenedOffset uint32 = 0x80000000

// MaxDepth is the deepest path an extended key can describe.
const MaxDepth = 255

// ErrInvalidPath indicates a path string does not follow m/i'/i/...
var ErrInvalidPath = errors.New("invalid derivation path")

// Path is a parsed derivation path. Hardened indices include HardenedOffset.
type Path []uint32

// ParsePath parses "m" followed by zero or more "/<index>" segments, where an
// apostrophe suffix marks a hardened index and every index is below 2^31.
func ParsePath(s string) (Path, error) {
	if s == "m" {
		return Path{}, nil
	}

	rest, ok := strings.CutPrefix(s, "m/")
	if !ok {
		return nil, fmt.Errorf("%w: %q must start with \"m/\"", ErrInvalidPath, s)
	}

	segments := strings.Split(rest, "/")
	if len(segments) > MaxDepth {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", ErrInvalidPath, len(segments), MaxDepth)
	}

	path := make(Path, 0, len(segments))
	for i, segment := range segments {
		digits, hardened := strings.CutSuffix(segment, "'")

		n, err := strconv.ParseUint(digits, 10, 32)
		if err != nil || uint32(n) >= HardenedOffset {
			return nil, fmt.Errorf("%w: segment %d %q", ErrInvalidPath, i+1, segment)
		}

		index := uint32(n)
		if hardened {
			index += HardenedOffset
		}
		path = append(path, index)
	}

	return path, nil
}

// String renders the path with apostrophes for hardened indices.
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('m')
	for _, index := range p {
		b.WriteByte('/')
		if IsHardened(index) {
			b.WriteString(strconv.FormatUint(uint64(index-HardenedOffset), 10))
			b.WriteByte('\'')
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(index), 10))
	}
	return b.String()
}

// IsHardened reports whether an index is in the hardened range.
func IsHardened(index uint32) bool {
	return index >= HardenedOffset
}
