// Package create derives the address of an account created by another
// account, either from the creator's nonce or from a salt and code hash.
package create

import (
	"ican-wallet/wallet-tools/base/crypto"
	"ican-wallet/wallet-tools/base/crypto/ican"

	"github.com/holiman/uint256"
)

// create2Marker is written before the salted pre-image.
const create2Marker = 0xff

// CreateAddress returns the mainnet address of the account created by caller at nonce.
func CreateAddress(caller ican.Address, nonce uint64) ican.Address {
	return CreateAddressOn(ican.Mainnet, caller, nonce)
}

// CreateAddressOn is like CreateAddress but encodes the result for network.
func CreateAddressOn(network ican.Network, caller ican.Address, nonce uint64) ican.Address {
	return ican.Encode(CreateRawAddress(caller, nonce), network)
}

// CreateRawAddress hashes the list (caller, nonce) and keeps the last 20 bytes.
func CreateRawAddress(caller ican.Address, nonce uint64) ican.RawAddress {
	data := crypto.NewListEncoder(2).
		AppendBytes(caller.Bytes()).
		AppendUint(nonce).
		Bytes()
	return lastRawAddress(crypto.Keccak256(data))
}

// Create2Address returns the mainnet address of the account created by caller
// from code with codeHash and salt. A nil salt is zero.
func Create2Address(caller ican.Address, codeHash crypto.Hash, salt *uint256.Int) ican.Address {
	return Create2AddressOn(ican.Mainnet, caller, codeHash, salt)
}

// Create2AddressOn is like Create2Address but encodes the result for network.
func Create2AddressOn(network ican.Network, caller ican.Address, codeHash crypto.Hash, salt *uint256.Int) ican.Address {
	return ican.Encode(Create2RawAddress(caller, codeHash, salt), network)
}

// Create2RawAddress hashes 0xff ‖ caller ‖ salt ‖ codeHash and keeps the last 20 bytes.
func Create2RawAddress(caller ican.Address, codeHash crypto.Hash, salt *uint256.Int) ican.RawAddress {
	var saltBytes [32]byte
	if salt != nil {
		saltBytes = salt.Bytes32()
	}

	h := crypto.Keccak256(
		[]byte{create2Marker},
		caller.Bytes(),
		saltBytes[:],
		codeHash.Bytes(),
	)
	return lastRawAddress(h)
}

func lastRawAddress(h crypto.Hash) ican.RawAddress {
	return ican.BytesToRawAddress(h[crypto.HashLength-ican.RawAddressLength:])
}
