package crypto

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// Bytes marshals as a 0x prefixed hex string.
// Unmarshaling accepts the string with or without the prefix.
type Bytes []byte

func (b Bytes) MarshalText() ([]byte, error) {
	return hexutil.Bytes(b).MarshalText()
}

func (b *Bytes) UnmarshalText(input []byte) error {
	s := string(input)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		data, err := hex.DecodeString(s)
		if err != nil {
			return errors.Wrap(err, "decode hex bytes failed")
		}
		*b = data
		return nil
	}

	data, err := hexutil.Decode(s)
	if err != nil {
		return errors.Wrap(err, "decode hex bytes failed")
	}
	*b = data
	return nil
}

func (b Bytes) String() string {
	return hexutil.Encode(b)
}
