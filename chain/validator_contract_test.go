package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vena-network/vena-node/types"
)

func TestValidatorContractOrDefault(t *testing.T) {
	configured := types.StringToAddress("0x1")

	assert.Equal(t, configured, ValidatorContractOrDefault(configured))
	assert.Equal(t, DefaultValidatorContract, ValidatorContractOrDefault(types.ZeroAddress))

	genesisConfigured := types.StringToAddress("0x2")
	ValidatorContractAddress = genesisConfigured

	t.Cleanup(func() {
		ValidatorContractAddress = types.Address{}
	})

	assert.Equal(t, genesisConfigured, ValidatorContractOrDefault(types.ZeroAddress))
	assert.Equal(t, configured, ValidatorContractOrDefault(configured))
}
