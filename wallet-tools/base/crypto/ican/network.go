package ican

import (
	"strings"

	"github.com/pkg/errors"
)

// Network identifies the chain an address belongs to.
type Network uint8

const (
	Mainnet Network = iota
	Testnet
	Private
)

type networkInfo struct {
	name   string
	prefix string
	tag    byte // prefix read as one hex byte
}

var networks = [...]networkInfo{
	Mainnet: {"mainnet", "cb", 0xcb},
	Testnet: {"testnet", "ab", 0xab},
	Private: {"private", "ce", 0xce},
}

// Networks returns all known networks.
func Networks() []Network {
	return []Network{Mainnet, Testnet, Private}
}

func (n Network) valid() bool {
	return int(n) < len(networks)
}

// Prefix returns the 2 characters address prefix of the network.
func (n Network) Prefix() string {
	if !n.valid() {
		panic(errors.Errorf("unknown network %d", n))
	}
	return networks[n].prefix
}

func (n Network) String() string {
	if !n.valid() {
		return "unknown"
	}
	return networks[n].name
}

// ParseNetwork accepts a network name or its address prefix.
func ParseNetwork(s string) (Network, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, n := range Networks() {
		if s == networks[n].name || s == networks[n].prefix {
			return n, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownNetwork, "%q", s)
}
