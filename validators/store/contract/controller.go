package contract

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/hashicorp/go-hclog"
	ethgo "github.com/umbracle/ethgo"
	ethabi "github.com/umbracle/ethgo/abi"

	"github.com/vena-network/vena-node/contracts/validatorabi"
	"github.com/vena-network/vena-node/state"
	"github.com/vena-network/vena-node/types"
)

const (
	// GetValidatorsName is the registered name of the validator set query.
	GetValidatorsName = "getValidators"

	// GetEpochCounterName is the registered name of the epoch counter query.
	GetEpochCounterName = "getEpochCounter"
)

// Failure kinds. Every failure is terminal for its call; callers that want
// retries must implement them outside this package.
var (
	// ErrUnknownFunction is returned when a function name outside the
	// registered set is requested.
	ErrUnknownFunction = errors.New("unknown validator contract function")

	// ErrNoResult is returned when the simulator produced no outcome at all.
	ErrNoResult = errors.New("smart contract call returned no result")

	// ErrCallFailed covers both an unsuccessful simulation and a successful
	// one whose decoded value does not have the declared return type. The
	// two are deliberately indistinguishable: a type mismatch means the
	// deployed contract diverged from the expected interface.
	ErrCallFailed = errors.New("smart contract call failed")

	// ErrEmptyOutput is returned when a successful simulation decoded to
	// zero output values. Distinct from a valid empty validator set.
	ErrEmptyOutput = errors.New("unexpected empty result from smart contract call")
)

// MustNewABI panics on malformed JSON, which is a programmer error caught
// at process start.
var validatorSetABI = ethabi.MustNewABI(validatorabi.ValidatorSetABI)

// Function couples a registered function with the context string
// used in failure messages. Dispatch happens by value, never by comparing
// name strings at decode time.
type Function struct {
	name    string
	method  *ethabi.Method
	context string
}

var (
	getValidatorsFn = &Function{
		name:    GetValidatorsName,
		method:  validatorSetABI.GetMethod(GetValidatorsName),
		context: "validator set",
	}

	getEpochCounterFn = &Function{
		name:    GetEpochCounterName,
		method:  validatorSetABI.GetMethod(GetEpochCounterName),
		context: "epoch counter",
	}
)

// FunctionByName resolves a registered contract function. Only the two
// query functions exist; anything else fails with ErrUnknownFunction.
func FunctionByName(name string) (*Function, error) {
	switch name {
	case GetValidatorsName:
		return getValidatorsFn, nil
	case GetEpochCounterName:
		return getEpochCounterFn, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
}

// Selector returns the 4-byte call selector of the function.
func (f *Function) Selector() []byte {
	return f.method.ID()
}

// Controller frames read-only queries against the validator set contract
// and decodes their results. It holds no per-call state, so a single
// instance is safe for concurrent use.
type Controller struct {
	simulator state.Simulator
	logger    hclog.Logger
}

func NewController(simulator state.Simulator, logger hclog.Logger) *Controller {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Controller{
		simulator: simulator,
		logger:    logger.Named("validator-contract"),
	}
}

// GetValidators queries the validator set held by the contract at the given
// block. An empty set is a valid result. Order and duplicates are preserved
// as stored on chain.
func (c *Controller) GetValidators(blockNumber uint64, contractAddr types.Address) ([]types.Address, error) {
	values, err := c.call(getValidatorsFn, contractAddr, blockNumber)
	if err != nil {
		return nil, err
	}

	raw, ok := values["validators"].([]ethgo.Address)
	if !ok {
		return nil, fmt.Errorf("%s: %w: unexpected return type", getValidatorsFn.context, ErrCallFailed)
	}

	addrs := make([]types.Address, len(raw))
	for i, addr := range raw {
		addrs[i] = types.Address(addr)
	}

	return addrs, nil
}

// GetEpochCounter queries the contract's epoch counter at the given block.
func (c *Controller) GetEpochCounter(blockNumber uint64, contractAddr types.Address) (*big.Int, error) {
	values, err := c.call(getEpochCounterFn, contractAddr, blockNumber)
	if err != nil {
		return nil, err
	}

	epoch, ok := values["epoch"].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: %w: unexpected return type", getEpochCounterFn.context, ErrCallFailed)
	}

	return epoch, nil
}

// call encodes the selector-only payload, submits it through the simulator
// and decodes the outcome. Both registered functions take no arguments, so
// the payload is exactly the selector.
func (c *Controller) call(fn *Function, contractAddr types.Address, blockNumber uint64) (map[string]interface{}, error) {
	params := &state.CallParameters{
		To:    contractAddr,
		Gas:   state.GasUnbounded,
		Input: fn.Selector(),
	}

	c.logger.Debug(
		"querying validator contract",
		"function", fn.name,
		"contract", contractAddr,
		"block", blockNumber,
	)

	res := c.simulator.Process(params, state.AllowExceedingBalance, state.NoTracing, blockNumber)

	return decodeResult(res, fn)
}

// decodeResult validates the simulation outcome in a fixed order, short
// circuiting on the first violated check.
func decodeResult(res *state.SimulationResult, fn *Function) (map[string]interface{}, error) {
	if res == nil {
		return nil, fmt.Errorf("%s: %w", fn.context, ErrNoResult)
	}

	if !res.IsSuccessful() {
		return nil, fmt.Errorf("%s: %w", fn.context, ErrCallFailed)
	}

	// Empty output decodes to zero top-level values for every registered
	// return layout.
	if len(res.Output) == 0 {
		return nil, fmt.Errorf("%s: %w", fn.context, ErrEmptyOutput)
	}

	decoded, err := ethabi.Decode(fn.method.Outputs, res.Output)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", fn.context, ErrCallFailed, err)
	}

	values, ok := decoded.(map[string]interface{})
	if !ok || len(values) == 0 {
		return nil, fmt.Errorf("%s: %w", fn.context, ErrEmptyOutput)
	}

	return values, nil
}
