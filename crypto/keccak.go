package crypto

import (
	"golang.org/x/crypto/sha3"
)

// Keccak256 calculates the Keccak256 hash of the input data
func Keccak256(v ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()

	for _, i := range v {
		h.Write(i)
	}

	return h.Sum(nil)
}

// Keccak256Hash calculates the Keccak256 hash of the input data and
// returns it as a fixed size array
func Keccak256Hash(v ...[]byte) (out [32]byte) {
	h := sha3.NewLegacyKeccak256()

	for _, i := range v {
		h.Write(i)
	}

	h.Sum(out[:0])

	return
}
