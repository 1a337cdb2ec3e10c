package addrprovider

import (
	"ican-wallet/wallet-tools/base/crypto"
	"ican-wallet/wallet-tools/base/crypto/ican"
)

const (
	ICANClass Class = "ican"

	uncompressedTag = 0x04
)

type ICAN struct {
	network ican.Network
}

func NewICAN(network ican.Network) AddrProvider {
	return &ICAN{
		network: network,
	}
}

func (*ICAN) Class() Class {
	return ICANClass
}

func (p *ICAN) Network() ican.Network {
	return p.network
}

// RawAddress returns the last 20 bytes of keccak256 over the public key coordinates.
func (p *ICAN) RawAddress(k Key) ican.RawAddress {
	pub := k.PublicKeyUncompressed()
	if len(pub) == 65 && pub[0] == uncompressedTag {
		pub = pub[1:]
	}
	hash := crypto.Keccak256(pub)
	return ican.BytesToRawAddress(hash[crypto.HashLength-ican.RawAddressLength:])
}

// Address returns the 22 bytes encoded address.
func (p *ICAN) Address(k Key) []byte {
	return ican.Encode(p.RawAddress(k), p.network).Bytes()
}

func (p *ICAN) AddressString(k Key) string {
	return ican.Encode(p.RawAddress(k), p.network).String()
}
