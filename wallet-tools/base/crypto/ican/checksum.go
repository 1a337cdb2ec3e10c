package ican

import (
	"strconv"

	"github.com/pkg/errors"
)

// placeholder stands in for the checksum while it is computed.
const placeholder = "00"

// NumberString maps every hex digit of raw, the network prefix and the
// checksum placeholder to its decimal value and joins them.
func NumberString(raw RawAddress, network Network) string {
	text := raw.Hex() + network.Prefix() + placeholder

	buf := make([]byte, 0, len(text)*2)
	for i := 0; i < len(text); i++ {
		buf = strconv.AppendUint(buf, uint64(hexValue(text[i])), 10)
	}
	return string(buf)
}

// Checksum returns 98 minus the numeral modulo 97, folding one digit at a time.
// The result is always in [2, 98].
func Checksum(numberString string) uint64 {
	var acc uint64
	for i := 0; i < len(numberString); i++ {
		c := numberString[i]
		if c < '0' || c > '9' {
			panic(errors.Errorf("invalid digit %q at %d", c, i))
		}
		acc = (acc*10 + uint64(c-'0')) % 97
	}
	return 98 - acc
}

// Encode checksums raw and tags it with network.
func Encode(raw RawAddress, network Network) Address {
	checksum := Checksum(NumberString(raw, network))

	var a Address
	a[0] = networks[network].tag
	// two decimal digits, so the text form reads as the zero padded number.
	a[1] = byte(checksum/10)<<4 | byte(checksum%10)
	copy(a[2:], raw[:])
	return a
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	panic(errors.Errorf("invalid hex digit %q", c))
}
