package crypto

import (
	"encoding/hex"
	"hash"

	"github.com/pkg/errors"
)

// HashLength is the size of a digest.
const HashLength = 32

// Hash is a 32 bytes digest.
type Hash [HashLength]byte

// Sum calculate the sum hash of hasher over buf.
func Sum(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// SumAll writes every part into hasher and returns the digest of their concatenation.
func SumAll(hasher hash.Hash, parts ...[]byte) []byte {
	for _, p := range parts {
		hasher.Write(p)
	}
	return hasher.Sum(nil)
}

// BytesToHash returns Hash with value b.
// If b is larger than 32, b will be cropped from the left.
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

// TrimHexPrefix strips one leading 0x or 0X.
func TrimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// HexToHash parses exactly 64 hex digits, with or without 0x.
func HexToHash(s string) (Hash, error) {
	s = TrimHexPrefix(s)
	if len(s) != HashLength*2 {
		return Hash{}, errors.Errorf("invalid hash length %d, want %d hex digits", len(s), HashLength*2)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, errors.Wrap(err, "decode hash failed")
	}
	return BytesToHash(b), nil
}

// RepeatByteHash returns a Hash filled with b.
func RepeatByteHash(b byte) Hash {
	var h Hash
	for i := range h {
		h[i] = b
	}
	return h
}

func (h Hash) Bytes() []byte { return h[:] }

func (h Hash) Hex() string { return hex.EncodeToString(h[:]) }

func (h Hash) String() string { return "0x" + h.Hex() }
