package addrprovider_test

import (
	"encoding/hex"
	"testing"

	"ican-wallet/wallet-tools/base/crypto/addrprovider"
	"ican-wallet/wallet-tools/base/crypto/ican"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// public key of the secp256k1 private key 1.
const generatorPubKey = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
	"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"

func TestICANAddressString(t *testing.T) {
	pub, err := hex.DecodeString(generatorPubKey)
	require.NoError(t, err)
	key := addrprovider.PubKey(pub)

	cases := map[ican.Network]string{
		ican.Mainnet: "cb857e5f4552091a69125d5dfcb7b8c2659029395bdf",
		ican.Testnet: "ab067e5f4552091a69125d5dfcb7b8c2659029395bdf",
		ican.Private: "ce767e5f4552091a69125d5dfcb7b8c2659029395bdf",
	}
	for n, want := range cases {
		p := addrprovider.NewICAN(n)
		assert.Equal(t, addrprovider.ICANClass, p.Class())
		assert.Equal(t, want, p.AddressString(key), n.String())

		raw, _ := hex.DecodeString(want)
		assert.Equal(t, raw, p.Address(key), n.String())
	}
}

func TestICANUntaggedKey(t *testing.T) {
	pub, err := hex.DecodeString(generatorPubKey)
	require.NoError(t, err)

	p := addrprovider.NewICAN(ican.Mainnet)
	assert.Equal(t, p.AddressString(addrprovider.PubKey(pub)), p.AddressString(addrprovider.PubKey(pub[1:])))

	icanP := p.(*addrprovider.ICAN)
	assert.Equal(t, "7e5f4552091a69125d5dfcb7b8c2659029395bdf", icanP.RawAddress(addrprovider.PubKey(pub)).Hex())
	assert.Equal(t, ican.Mainnet, icanP.Network())
}
