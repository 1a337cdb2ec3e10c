package ican

import (
	"encoding/hex"

	"ican-wallet/wallet-tools/base/crypto"

	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
)

const (
	// RawAddressLength is the size of an unchecksummed account identifier.
	RawAddressLength = 20
	// AddressLength is the size of an ICAN address: network tag, checksum and raw address.
	AddressLength = RawAddressLength + 2
	// AddressTextLength is the size of an ICAN address in text form.
	AddressTextLength = AddressLength * 2
)

// RawAddress is the 20 bytes account identifier before checksum encoding.
type RawAddress [RawAddressLength]byte

// BytesToRawAddress returns RawAddress with value b.
//
// If b is larger than 20, b will be cropped from the left.
// If b is smaller than 20, b will be padded with zeroes at the front.
func BytesToRawAddress(b []byte) RawAddress {
	var a RawAddress
	if len(b) > RawAddressLength {
		b = b[len(b)-RawAddressLength:]
	}
	copy(a[RawAddressLength-len(b):], b)
	return a
}

// HexToRawAddress parses exactly 40 hex digits, with or without 0x.
func HexToRawAddress(s string) (RawAddress, error) {
	b, err := decodeFixedHex(s, RawAddressLength)
	if err != nil {
		return RawAddress{}, err
	}
	return BytesToRawAddress(b), nil
}

func (a RawAddress) Bytes() []byte { return a[:] }

// Hex returns the lowercase hex digits of the address, without 0x.
func (a RawAddress) Hex() string { return hex.EncodeToString(a[:]) }

func (a RawAddress) String() string { return a.Hex() }

// Address is a checksummed, network tagged account address.
// Its text form is <prefix:2><checksum:2><hex:40>.
type Address [AddressLength]byte

// ParseAddress parses the 44 characters text form of an address.
// Mixed case and a 0x prefix are accepted. The checksum is not verified.
func ParseAddress(s string) (Address, error) {
	b, err := decodeFixedHex(s, AddressLength)
	if err != nil {
		return Address{}, err
	}

	var a Address
	copy(a[:], b)
	return a, nil
}

// MustParseAddress is like ParseAddress but panics on error.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) Bytes() []byte { return a[:] }

// Hex returns the lowercase text form of the address.
func (a Address) Hex() string { return hex.EncodeToString(a[:]) }

func (a Address) String() string { return a.Hex() }

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func decodeFixedHex(s string, size int) ([]byte, error) {
	s = crypto.TrimHexPrefix(s)
	if len(s) != size*2 {
		return nil, errors.Wrapf(ErrInvalidLength, "got %d hex digits, want %d", len(s), size*2)
	}

	if !govalidator.IsHexadecimal(s) {
		return nil, errors.Wrapf(ErrInvalidHex, "%q", s)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidHex, "%v", err)
	}
	return b, nil
}
