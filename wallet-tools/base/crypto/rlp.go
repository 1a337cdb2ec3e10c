package crypto

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

// ListEncoder collects byte strings and unsigned integers and
// encodes them as one RLP list.
type ListEncoder struct {
	items []interface{}
}

func NewListEncoder(capacity int) *ListEncoder {
	return &ListEncoder{
		items: make([]interface{}, 0, capacity),
	}
}

func (l *ListEncoder) AppendBytes(b []byte) *ListEncoder {
	l.items = append(l.items, b)
	return l
}

func (l *ListEncoder) AppendUint(n uint64) *ListEncoder {
	l.items = append(l.items, n)
	return l
}

// Bytes returns the canonical encoding of the list.
// It panics if an item can't be encoded, which can't happen for
// the values accepted by AppendBytes and AppendUint.
func (l *ListEncoder) Bytes() []byte {
	data, err := rlp.EncodeToBytes(l.items)
	if err != nil {
		panic(errors.Wrap(err, "rlp encode list failed"))
	}
	return data
}

// EncodeList encodes fields as one RLP list.
func EncodeList(fields ...interface{}) ([]byte, error) {
	if fields == nil {
		fields = []interface{}{}
	}

	data, err := rlp.EncodeToBytes(fields)
	if err != nil {
		return nil, errors.Wrap(err, "rlp encode list failed")
	}
	return data, nil
}
