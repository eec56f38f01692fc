package validators

import (
	"strings"

	"github.com/vena-network/vena-node/types"
)

// Set is an ordered collection of validator addresses. Order matches
// on-chain storage order and duplicates are permitted.
type Set []types.Address

func NewSet(addrs ...types.Address) Set {
	return Set(addrs)
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Contains(addr types.Address) bool {
	for _, a := range s {
		if a == addr {
			return true
		}
	}

	return false
}

func (s Set) Copy() Set {
	if s == nil {
		return nil
	}

	clone := make(Set, len(s))
	copy(clone, s)

	return clone
}

// Equal reports whether both sets hold the same addresses in the same order.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}

	for i, a := range s {
		if a != other[i] {
			return false
		}
	}

	return true
}

func (s Set) String() string {
	addrs := make([]string, len(s))
	for i, a := range s {
		addrs[i] = a.String()
	}

	return "[" + strings.Join(addrs, ", ") + "]"
}
