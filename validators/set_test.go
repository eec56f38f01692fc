package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vena-network/vena-node/types"
)

var (
	addr1 = types.StringToAddress("0x1")
	addr2 = types.StringToAddress("0x2")
	addr3 = types.StringToAddress("0x3")
)

func TestSetContains(t *testing.T) {
	t.Parallel()

	set := NewSet(addr1, addr2)

	assert.True(t, set.Contains(addr1))
	assert.True(t, set.Contains(addr2))
	assert.False(t, set.Contains(addr3))
	assert.False(t, NewSet().Contains(addr1))
}

func TestSetEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     Set
		expected bool
	}{
		{
			name:     "same order",
			a:        NewSet(addr1, addr2),
			b:        NewSet(addr1, addr2),
			expected: true,
		},
		{
			name:     "different order",
			a:        NewSet(addr1, addr2),
			b:        NewSet(addr2, addr1),
			expected: false,
		},
		{
			name:     "different length",
			a:        NewSet(addr1),
			b:        NewSet(addr1, addr2),
			expected: false,
		},
		{
			name:     "both empty",
			a:        NewSet(),
			b:        NewSet(),
			expected: true,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, test.a.Equal(test.b))
		})
	}
}

func TestSetCopy(t *testing.T) {
	t.Parallel()

	set := NewSet(addr1, addr2)
	clone := set.Copy()

	assert.True(t, set.Equal(clone))

	clone[0] = addr3
	assert.Equal(t, addr1, set[0])

	assert.Nil(t, Set(nil).Copy())
}

func TestSetString(t *testing.T) {
	t.Parallel()

	set := NewSet(types.StringToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"))
	assert.Equal(t, "[0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed]", set.String())
}
