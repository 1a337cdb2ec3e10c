package addrprovider

type Class string

type Key interface {
	PublicKey() []byte
	PublicKeyUncompressed() []byte
}

type AddrProvider interface {
	Class() Class

	Address(k Key) []byte
	AddressString(k Key) string
}

// PubKey is a Key known only by its serialized public key.
// An uncompressed key is 65 bytes with a leading 0x04, or 64 bytes without it.
type PubKey []byte

func (k PubKey) PublicKey() []byte {
	return k
}

func (k PubKey) PublicKeyUncompressed() []byte {
	return k
}
