package chain

import (
	"github.com/vena-network/vena-node/types"
)

// DefaultValidatorContract is the pre-deployed validator set contract used
// when genesis does not configure one.
var DefaultValidatorContract = types.StringToAddress("0x0000000000000000000000000000000000001001")

// ValidatorContractAddress is sourced from genesis.json (params.validatorContractAddress).
// If left as zero, chain code falls back to DefaultValidatorContract.
var ValidatorContractAddress = types.Address{}

// DefaultEpochSize is the number of blocks between validator set rotations.
const DefaultEpochSize uint64 = 100

// ValidatorContractOrDefault resolves the validator set contract address,
// preferring the explicitly configured one.
func ValidatorContractOrDefault(configured types.Address) types.Address {
	if configured != (types.Address{}) {
		return configured
	}

	if ValidatorContractAddress != (types.Address{}) {
		return ValidatorContractAddress
	}

	return DefaultValidatorContract
}
