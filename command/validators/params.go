package validators

import (
	"context"
	"errors"

	"github.com/hashicorp/go-multierror"

	"github.com/vena-network/vena-node/chain"
	"github.com/vena-network/vena-node/command/helper"
	"github.com/vena-network/vena-node/internal/ethrpc"
	"github.com/vena-network/vena-node/types"
)

var errNoJSONRPC = errors.New("the JSON-RPC interface of the node is required")

type validatorsParams struct {
	jsonRPC     string
	jsonRPCSet  bool
	rawContract string
	configPath  string
	blockNumber uint64
	blockSet    bool

	contract types.Address
}

func (p *validatorsParams) validateFlags() error {
	var errs *multierror.Error

	if p.configPath != "" {
		config, err := helper.ReadQueryConfig(p.configPath)
		if err != nil {
			errs = multierror.Append(errs, err)
		} else {
			if !p.jsonRPCSet && config.JSONRPC != "" {
				p.jsonRPC = config.JSONRPC
			}

			if p.rawContract == "" {
				p.rawContract = config.ValidatorContract
			}
		}
	}

	if p.jsonRPC == "" {
		errs = multierror.Append(errs, errNoJSONRPC)
	}

	configured := types.ZeroAddress

	if p.rawContract != "" {
		parsed, err := types.ParseAddress(p.rawContract)
		if err != nil {
			errs = multierror.Append(errs, err)
		}

		configured = parsed
	}

	p.contract = chain.ValidatorContractOrDefault(configured)

	return errs.ErrorOrNil()
}

// resolveBlock turns an unset --block flag into the node's current height.
func (p *validatorsParams) resolveBlock(ctx context.Context) (uint64, error) {
	if p.blockSet {
		return p.blockNumber, nil
	}

	return ethrpc.LatestBlockNumber(ctx, p.jsonRPC)
}
