package util

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// ParseUint256 parses a decimal or 0x prefixed hex string.
func ParseUint256(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, errors.New("empty uint256")
	}

	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		v, err := uint256.FromDecimal(s)
		if err != nil {
			return nil, errors.Wrapf(err, "parse uint256 %q failed", s)
		}
		return v, nil
	}

	digits := s[2:]
	if len(digits) == 0 {
		return nil, errors.Errorf("parse uint256 %q failed, no digits", s)
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, errors.Wrapf(err, "parse uint256 %q failed", s)
	}
	if len(b) > 32 {
		return nil, errors.Errorf("parse uint256 %q failed, more than 256 bits", s)
	}
	return new(uint256.Int).SetBytes(b), nil
}

// JSONParserGetUint256 reads a number or a decimal/hex string as uint256.
func JSONParserGetUint256(data []byte, keys ...string) (*uint256.Int, error) {
	v, t, _, err := jsonparser.Get(data, keys...)
	if err != nil {
		return nil, err
	}

	switch t {
	case jsonparser.Number, jsonparser.String:
		return ParseUint256(string(v))
	default:
		return nil, errors.Errorf("value is not a number: %s", string(v))
	}
}

// JSONParserGetUint64 reads a number or a decimal string as uint64.
func JSONParserGetUint64(data []byte, keys ...string) (uint64, error) {
	v, t, _, err := jsonparser.Get(data, keys...)
	if err != nil {
		return 0, err
	}

	if t != jsonparser.Number && t != jsonparser.String {
		return 0, errors.Errorf("value is not a number: %s", string(v))
	}

	n, err := strconv.ParseUint(string(v), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse uint64 %q failed", string(v))
	}
	return n, nil
}

// JSONParserArrayEach wrappers jsonparser.ArrayEach, f gets the element index.
func JSONParserArrayEach(data []byte, f func(int, []byte, jsonparser.ValueType) error, keys ...string) (err error) {
	var valueType jsonparser.ValueType
	data, valueType, _, err = jsonparser.Get(data, keys...)
	if err != nil {
		return
	}

	if valueType == jsonparser.Null {
		return
	}

	if valueType != jsonparser.Array {
		err = errors.Errorf("value type is %s, not array", valueType)
		return
	}

	var (
		idx     = -1
		itemErr error
	)
	_, err = jsonparser.ArrayEach(data, func(v []byte, dttype jsonparser.ValueType, _ int, e error) {
		idx++
		if itemErr != nil {
			return
		}

		if e == nil {
			e = f(idx, v, dttype)
		}
		if e != nil {
			itemErr = errors.Wrapf(e, "jsonparser at index %d failed", idx)
		}
	})
	if itemErr != nil {
		err = itemErr
	}
	return
}
