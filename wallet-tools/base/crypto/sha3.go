package crypto

import (
	"golang.org/x/crypto/sha3"
)

// KeccakEmpty is the Keccak-256 digest of empty input.
var KeccakEmpty = Hash{
	0xc5, 0xd2, 0x46, 0x01, 0x86, 0xf7, 0x23, 0x3c,
	0x92, 0x7e, 0x7d, 0xb2, 0xdc, 0xc7, 0x03, 0xc0,
	0xe5, 0x00, 0xb6, 0x53, 0xca, 0x82, 0x27, 0x3b,
	0x7b, 0xfa, 0xd8, 0x04, 0x5d, 0x85, 0xa4, 0x70,
}

// SumLegacyKeccak256 returns the Keccak-256 digest of the data.
func SumLegacyKeccak256(data []byte) []byte {
	return Sum(data, sha3.NewLegacyKeccak256())
}

// Keccak256 streams all parts through one legacy Keccak-256 hasher.
// The result equals hashing the concatenation of parts.
func Keccak256(parts ...[]byte) Hash {
	var h Hash
	copy(h[:], SumAll(sha3.NewLegacyKeccak256(), parts...))
	return h
}
