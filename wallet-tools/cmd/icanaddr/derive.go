package main

import (
	"fmt"

	"ican-wallet/wallet-base/cmd"
	"ican-wallet/wallet-base/util"
	"ican-wallet/wallet-tools/base/crypto"
	"ican-wallet/wallet-tools/base/crypto/addrprovider"
	"ican-wallet/wallet-tools/base/crypto/create"
	"ican-wallet/wallet-tools/base/crypto/ican"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func output(c *cmd.Command, a ...interface{}) {
	fmt.Fprintln(c.CobraCmd().OutOrStdout(), a...)
}

func newEncodeCommand(opts *options) *cmd.Command {
	var rawHex string

	c := cmd.New(
		"encode",
		"checksum a raw 20 bytes address for the network.",
		"./icanaddr encode -a e8cf4629acb360350399b6cff367a97cf36e62b9",
		func(c *cmd.Command, _ []string) error {
			raw, err := ican.HexToRawAddress(rawHex)
			if err != nil {
				return errors.Wrap(err, "invalid raw address")
			}

			output(c, ican.Encode(raw, opts.cfg.Network))
			return nil
		},
	)
	c.LocalFlags().StringVarP(&rawHex, "address", "a", "", "the raw address, 40 hex digits")
	c.MarkRequired("address")
	return c
}

func newCreateCommand(opts *options) *cmd.Command {
	var (
		from  string
		nonce uint64
	)

	c := cmd.New(
		"create",
		"derive the address created by an account at a nonce.",
		"./icanaddr create -f cb72e8cf4629acb360350399b6cff367a97cf36e62b9 --nonce 1",
		func(c *cmd.Command, _ []string) error {
			caller, err := ican.ParseAddress(from)
			if err != nil {
				return errors.Wrap(err, "invalid caller address")
			}

			addr := create.CreateAddressOn(opts.cfg.Network, caller, nonce)
			log.WithFields(log.Fields{
				"caller": caller,
				"nonce":  nonce,
			}).Debugf("derived create address %s", addr)

			output(c, addr)
			return nil
		},
	)
	c.LocalFlags().StringVarP(&from, "from", "f", "", "the caller ICAN address, 44 hex digits")
	c.LocalFlags().Uint64VarP(&nonce, "nonce", "", 0, "the caller nonce")
	c.MarkRequired("from")
	return c
}

func newCreate2Command(opts *options) *cmd.Command {
	var (
		from     string
		codeHash string
		code     string
		salt     string
	)

	c := cmd.New(
		"create2",
		"derive the address created by an account from a salt and code hash.",
		"./icanaddr create2 -f cb72e8cf4629acb360350399b6cff367a97cf36e62b9 --codehash 0a0a... --salt 239048",
		func(c *cmd.Command, _ []string) error {
			caller, err := ican.ParseAddress(from)
			if err != nil {
				return errors.Wrap(err, "invalid caller address")
			}

			hash, err := resolveCodeHash(codeHash, code)
			if err != nil {
				return err
			}

			s, err := util.ParseUint256(salt)
			if err != nil {
				return errors.Wrap(err, "invalid salt")
			}

			addr := create.Create2AddressOn(opts.cfg.Network, caller, hash, s)
			log.WithFields(log.Fields{
				"caller":   caller,
				"codeHash": hash.Hex(),
				"salt":     s.ToBig().String(),
			}).Debugf("derived create2 address %s", addr)

			output(c, addr)
			return nil
		},
	)
	c.LocalFlags().StringVarP(&from, "from", "f", "", "the caller ICAN address, 44 hex digits")
	c.LocalFlags().StringVarP(&codeHash, "codehash", "", "", "the keccak256 hash of the init code, 64 hex digits")
	c.LocalFlags().StringVarP(&code, "code", "", "", "the init code in hex, hashed when --codehash is empty")
	c.LocalFlags().StringVarP(&salt, "salt", "s", "0", "the salt, decimal or 0x hex")
	c.MarkRequired("from")
	return c
}

func resolveCodeHash(codeHash, code string) (crypto.Hash, error) {
	switch {
	case len(codeHash) > 0 && len(code) > 0:
		return crypto.Hash{}, errors.New("only one of codehash and code can be set")
	case len(codeHash) > 0:
		h, err := crypto.HexToHash(codeHash)
		if err != nil {
			return crypto.Hash{}, errors.Wrap(err, "invalid code hash")
		}
		return h, nil
	default:
		var data crypto.Bytes
		err := data.UnmarshalText([]byte(code))
		if err != nil {
			return crypto.Hash{}, errors.Wrap(err, "invalid code")
		}
		return crypto.Keccak256(data), nil
	}
}

func newPubKeyCommand(opts *options) *cmd.Command {
	var pubKey string

	c := cmd.New(
		"pubkey",
		"derive the address of an uncompressed secp256k1 public key.",
		"./icanaddr pubkey -k 0479be66...",
		func(c *cmd.Command, _ []string) error {
			var key crypto.Bytes
			err := key.UnmarshalText([]byte(pubKey))
			if err != nil {
				return errors.Wrap(err, "invalid public key")
			}

			if len(key) != 64 && len(key) != 65 {
				return errors.Errorf("invalid public key length %d, want 64 or 65 bytes", len(key))
			}
			if len(key) == 65 && key[0] != 0x04 {
				return errors.Errorf("invalid public key tag 0x%02x, want 0x04", key[0])
			}

			p := addrprovider.NewICAN(opts.cfg.Network)
			output(c, p.AddressString(addrprovider.PubKey(key)))
			return nil
		},
	)
	c.LocalFlags().StringVarP(&pubKey, "pubkey", "k", "", "the uncompressed public key in hex")
	c.MarkRequired("pubkey")
	return c
}

func newEmptyHashCommand() *cmd.Command {
	return cmd.New(
		"empty-hash",
		"print the keccak256 hash of empty input.",
		"./icanaddr empty-hash",
		func(c *cmd.Command, _ []string) error {
			output(c, crypto.KeccakEmpty.Hex())
			return nil
		},
	)
}
