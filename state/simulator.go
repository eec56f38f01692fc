package state

import (
	"math"
	"math/big"

	"github.com/vena-network/vena-node/types"
)

// GasUnbounded is the gas limit sentinel for simulated calls that must not
// be gas-gated.
const GasUnbounded uint64 = math.MaxUint64

// CallParameters frames a single read-only contract call. A zero From
// address means the call is unsigned and has no sender.
type CallParameters struct {
	From     types.Address
	To       types.Address
	Gas      uint64
	GasPrice *big.Int
	Value    *big.Int
	Input    []byte
}

// ValidationParams configures which transaction checks the simulator applies.
type ValidationParams struct {
	AllowExceedingBalance bool
}

// AllowExceedingBalance permits the simulated sender's balance to be
// exceeded. Read-only probes transfer no value, so no real balance should
// gate them.
var AllowExceedingBalance = ValidationParams{AllowExceedingBalance: true}

// Tracer receives execution callbacks from the simulator.
type Tracer interface {
	TxStart(gasLimit uint64)
	TxEnd(gasLeft uint64)
}

// NoTracing discards all execution callbacks.
var NoTracing Tracer = noopTracer{}

type noopTracer struct{}

func (noopTracer) TxStart(uint64) {}
func (noopTracer) TxEnd(uint64)   {}

// SimulationResult is the outcome of one simulated call. A nil
// *SimulationResult means the simulator could not produce any outcome.
type SimulationResult struct {
	Succeeded bool
	Output    []byte

	// Err carries the failure reason when Succeeded is false. Informational
	// only; callers branch on Succeeded.
	Err error
}

func NewSuccessfulResult(output []byte) *SimulationResult {
	return &SimulationResult{
		Succeeded: true,
		Output:    output,
	}
}

func NewFailedResult(err error) *SimulationResult {
	return &SimulationResult{
		Err: err,
	}
}

func (r *SimulationResult) IsSuccessful() bool {
	return r != nil && r.Succeeded
}

// Simulator evaluates a call against chain state at the given block without
// submitting a transaction. Implementations may block; cancellation and
// retries are their concern, surfaced here only as a nil or failed result.
type Simulator interface {
	Process(
		params *CallParameters,
		validation ValidationParams,
		tracer Tracer,
		blockNumber uint64,
	) *SimulationResult
}
