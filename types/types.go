package types

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"github.com/vena-network/vena-node/crypto"
)

const (
	HashLength    = 32
	AddressLength = 20
)

var (
	ZeroAddress = Address{}
	ZeroHash    = Hash{}
)

type Hash [HashLength]byte

type Address [AddressLength]byte

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

// String returns the EIP-55 checksummed representation of the address.
func (a Address) String() string {
	return a.checksumEncode()
}

func (a Address) checksumEncode() string {
	addrHex := hex.EncodeToString(a[:])
	hashHex := hex.EncodeToString(crypto.Keccak256([]byte(addrHex)))

	result := make([]rune, len(addrHex))

	for i, c := range addrHex {
		if hashHex[i] >= '8' {
			result[i] = unicode.ToUpper(c)
		} else {
			result[i] = c
		}
	}

	return "0x" + string(result)
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(input []byte) error {
	addr, err := ParseAddress(string(input))
	if err != nil {
		return err
	}

	*a = addr

	return nil
}

func BytesToHash(b []byte) Hash {
	var h Hash

	size := len(b)
	min := min(size, HashLength)

	copy(h[HashLength-min:], b[len(b)-min:])

	return h
}

func BytesToAddress(b []byte) Address {
	var a Address

	size := len(b)
	min := min(size, AddressLength)

	copy(a[AddressLength-min:], b[len(b)-min:])

	return a
}

// StringToHash converts a hex string to a hash. Malformed input
// yields the zero hash.
func StringToHash(str string) Hash {
	return BytesToHash(stringToBytes(str))
}

// StringToAddress converts a hex string to an address. Malformed input
// yields the zero address.
func StringToAddress(str string) Address {
	return BytesToAddress(stringToBytes(str))
}

// ParseAddress parses a hex string into an address, rejecting malformed
// or odd-length input.
func ParseAddress(str string) (Address, error) {
	raw := strings.TrimPrefix(str, "0x")
	if len(raw)%2 == 1 {
		raw = "0" + raw
	}

	b, err := hex.DecodeString(raw)
	if err != nil {
		return ZeroAddress, fmt.Errorf("invalid address %q: %w", str, err)
	}

	if len(b) > AddressLength {
		return ZeroAddress, fmt.Errorf("invalid address %q: exceeds %d bytes", str, AddressLength)
	}

	return BytesToAddress(b), nil
}

func stringToBytes(str string) []byte {
	str = strings.TrimPrefix(str, "0x")
	if len(str)%2 == 1 {
		str = "0" + str
	}

	b, _ := hex.DecodeString(str)

	return b
}
