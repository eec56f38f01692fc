package ethrpc

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/vena-network/vena-node/state"
)

// CallSimulator adapts a remote JSON-RPC node to the state.Simulator
// boundary. eth_call never charges the sender and traces nothing, so the
// validation and tracing policies hold by construction.
type CallSimulator struct {
	endpoint string
	logger   hclog.Logger
}

func NewCallSimulator(endpoint string, logger hclog.Logger) *CallSimulator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &CallSimulator{
		endpoint: endpoint,
		logger:   logger.Named("call-simulator"),
	}
}

func (c *CallSimulator) Process(
	params *state.CallParameters,
	_ state.ValidationParams,
	_ state.Tracer,
	blockNumber uint64,
) *state.SimulationResult {
	out, err := EthCallAt(context.Background(), c.endpoint, params.To, params.Input, &blockNumber)
	if err != nil {
		if IsNodeError(err) {
			// reverted or otherwise rejected by the node
			return state.NewFailedResult(err)
		}

		c.logger.Error("eth_call transport failure", "endpoint", c.endpoint, "err", err)

		return nil
	}

	return state.NewSuccessfulResult(out)
}
