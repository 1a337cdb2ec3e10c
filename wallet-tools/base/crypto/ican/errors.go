package ican

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidLength  = errors.New("invalid address length")
	ErrInvalidHex     = errors.New("invalid hex address")
	ErrUnknownNetwork = errors.New("unknown network")
)
