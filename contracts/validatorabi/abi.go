package validatorabi

// ValidatorSetABI mirrors the read-only query surface of ValidatorSet.sol
// (central, single source of truth).
const ValidatorSetABI = `
[{"type":"function","name":"getValidators",
  "inputs":[],
  "outputs":[{"name":"validators","type":"address[]"}]},
 {"type":"function","name":"getEpochCounter",
  "inputs":[],
  "outputs":[{"name":"epoch","type":"uint256"}]}]`
