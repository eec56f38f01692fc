package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressChecksumEncode(t *testing.T) {
	t.Parallel()

	// EIP-55 reference vectors
	cases := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
		"0x52908400098527886E0F7030069857D2E4169EE7",
		"0x8617E340B3D01FA5F11F306F4090FD50E238070D",
	}

	for _, expected := range cases {
		addr := StringToAddress(expected)
		assert.Equal(t, expected, addr.String())
	}
}

func TestStringToAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Address
	}{
		{
			name:     "regular address",
			input:    "0xeac51e3fe1afc9894f0dfeab8ceb471899b932df",
			expected: Address{0xea, 0xc5, 0x1e, 0x3f, 0xe1, 0xaf, 0xc9, 0x89, 0x4f, 0x0d, 0xfe, 0xab, 0x8c, 0xeb, 0x47, 0x18, 0x99, 0xb9, 0x32, 0xdf},
		},
		{
			name:     "short input is left padded",
			input:    "0x1",
			expected: Address{19: 0x01},
		},
		{
			name:     "no prefix",
			input:    "01",
			expected: Address{19: 0x01},
		},
		{
			name:     "zero address",
			input:    "0x",
			expected: ZeroAddress,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, StringToAddress(test.input))
		})
	}
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	addr, err := ParseAddress("0xeac51e3fe1afc9894f0dfeab8ceb471899b932df")
	require.NoError(t, err)
	assert.Equal(t, StringToAddress("0xeac51e3fe1afc9894f0dfeab8ceb471899b932df"), addr)

	_, err = ParseAddress("0xzz")
	assert.Error(t, err)

	_, err = ParseAddress("0xeac51e3fe1afc9894f0dfeab8ceb471899b932df00")
	assert.Error(t, err)
}

func TestAddressMarshalText(t *testing.T) {
	t.Parallel()

	addr := StringToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")

	encoded, err := addr.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", string(encoded))

	decoded := Address{}
	require.NoError(t, decoded.UnmarshalText(encoded))
	assert.Equal(t, addr, decoded)
}

func TestBytesToHash(t *testing.T) {
	t.Parallel()

	h := BytesToHash([]byte{0x1})
	assert.Equal(t, Hash{31: 0x01}, h)
	assert.Equal(t,
		"0x0000000000000000000000000000000000000000000000000000000000000001",
		h.String(),
	)
}
