package crypto_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"ican-wallet/wallet-tools/base/crypto"

	"github.com/ebfe/keccak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestKeccakEmpty(t *testing.T) {
	assert.Equal(t, crypto.KeccakEmpty, crypto.Keccak256())
	assert.Equal(t, crypto.KeccakEmpty, crypto.Keccak256(nil))
	assert.Equal(t, crypto.KeccakEmpty.Bytes(), crypto.SumLegacyKeccak256(nil))
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", crypto.KeccakEmpty.Hex())
}

func TestKeccak256MatchesReference(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOf(rapid.Byte()).Draw(t, "data")

		ref := crypto.Sum(data, keccak.New256())
		got := crypto.Keccak256(data)
		if !bytes.Equal(ref, got.Bytes()) {
			t.Fatalf("keccak mismatch for %x: %x != %x", data, got, ref)
		}
	})
}

func TestKeccak256Streaming(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.SliceOf(rapid.Byte()).Draw(t, "a")
		b := rapid.SliceOf(rapid.Byte()).Draw(t, "b")
		c := rapid.SliceOf(rapid.Byte()).Draw(t, "c")

		whole := append(append(append([]byte{}, a...), b...), c...)
		if crypto.Keccak256(a, b, c) != crypto.Keccak256(whole) {
			t.Fatalf("streamed digest differs from digest of concatenation")
		}
	})
}

func TestHexToHash(t *testing.T) {
	h, err := crypto.HexToHash("0x" + crypto.KeccakEmpty.Hex())
	require.NoError(t, err)
	assert.Equal(t, crypto.KeccakEmpty, h)

	h, err = crypto.HexToHash(crypto.KeccakEmpty.Hex())
	require.NoError(t, err)
	assert.Equal(t, crypto.KeccakEmpty, h)

	_, err = crypto.HexToHash("0a0a")
	assert.Error(t, err)

	_, err = crypto.HexToHash("zz" + crypto.KeccakEmpty.Hex()[2:])
	assert.Error(t, err)

	_, err = crypto.HexToHash("0x0X" + crypto.KeccakEmpty.Hex())
	assert.Error(t, err)
}

func TestTrimHexPrefix(t *testing.T) {
	assert.Equal(t, "ab", crypto.TrimHexPrefix("0xab"))
	assert.Equal(t, "ab", crypto.TrimHexPrefix("0Xab"))
	assert.Equal(t, "0xab", crypto.TrimHexPrefix("0x0xab"))
	assert.Equal(t, "ab", crypto.TrimHexPrefix("ab"))
	assert.Equal(t, "0", crypto.TrimHexPrefix("0"))
	assert.Equal(t, "", crypto.TrimHexPrefix("0x"))
}

func TestBytesToHash(t *testing.T) {
	h := crypto.BytesToHash([]byte{1, 2})
	assert.Equal(t, byte(1), h[30])
	assert.Equal(t, byte(2), h[31])

	long := bytes.Repeat([]byte{0x0a}, 40)
	long[39] = 0xff
	h = crypto.BytesToHash(long)
	assert.Equal(t, byte(0xff), h[31])
	assert.Equal(t, crypto.RepeatByteHash(0x0a).Bytes()[:31], h.Bytes()[:31])
}

func TestListEncoder(t *testing.T) {
	caller, _ := hex.DecodeString("cb72e8cf4629acb360350399b6cff367a97cf36e62b9")

	data := crypto.NewListEncoder(2).AppendBytes(caller).AppendUint(1).Bytes()
	want := append([]byte{0xd8, 0x96}, caller...)
	want = append(want, 0x01)
	assert.Equal(t, want, data)

	cases := []struct {
		name string
		enc  *crypto.ListEncoder
		want string
	}{
		{"empty", crypto.NewListEncoder(0), "c0"},
		{"zero", crypto.NewListEncoder(1).AppendUint(0), "c180"},
		{"single byte", crypto.NewListEncoder(1).AppendBytes([]byte{0x7f}), "c17f"},
		{"high byte", crypto.NewListEncoder(1).AppendBytes([]byte{0x80}), "c28180"},
		{"uint 1024", crypto.NewListEncoder(1).AppendUint(1024), "c3820400"},
		{"empty bytes", crypto.NewListEncoder(1).AppendBytes(nil), "c180"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, hex.EncodeToString(c.enc.Bytes()), c.name)
	}
}

func TestEncodeList(t *testing.T) {
	caller, _ := hex.DecodeString("cb72e8cf4629acb360350399b6cff367a97cf36e62b9")

	data, err := crypto.EncodeList(caller, uint64(1))
	require.NoError(t, err)
	assert.Equal(t, crypto.NewListEncoder(2).AppendBytes(caller).AppendUint(1).Bytes(), data)

	data, err = crypto.EncodeList()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc0}, data)
}

func TestBytesJSON(t *testing.T) {
	b := crypto.Bytes{0xde, 0xad, 0xbe, 0xef}
	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, `"0xdeadbeef"`, string(data))
	assert.Equal(t, "0xdeadbeef", b.String())

	var got crypto.Bytes
	require.NoError(t, json.Unmarshal([]byte(`"0xdeadbeef"`), &got))
	assert.Equal(t, b, got)

	require.NoError(t, json.Unmarshal([]byte(`"deadbeef"`), &got))
	assert.Equal(t, b, got)

	assert.Error(t, json.Unmarshal([]byte(`"0xdeadbee"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`"xyz"`), &got))
}
