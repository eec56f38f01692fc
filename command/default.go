package command

import (
	"github.com/vena-network/vena-node/chain"
)

const (
	DefaultChainName      = "venachain"
	DefaultChainID        = 100
	DefaultJSONRPCAddress = "http://127.0.0.1:8545"
	DefaultEpochSize      = chain.DefaultEpochSize
)

const (
	JSONOutputFlag = "json"
	JSONRPCFlag    = "jsonrpc"
	ContractFlag   = "contract"
	BlockFlag      = "block"
	ConfigFlag     = "config"
)
