package epoch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vena-network/vena-node/command"
	"github.com/vena-network/vena-node/command/helper"
	"github.com/vena-network/vena-node/internal/ethrpc"
	"github.com/vena-network/vena-node/types"
	"github.com/vena-network/vena-node/validators/store/contract"
)

var params epochParams

func GetCommand() *cobra.Command {
	epochCmd := &cobra.Command{
		Use:     "epoch",
		Short:   "Queries the epoch counter held by the validator contract",
		PreRunE: runPreRun,
		RunE:    runCommand,
	}

	helper.RegisterJSONRPCFlag(epochCmd)
	setFlags(epochCmd)

	return epochCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&params.rawContract,
		command.ContractFlag,
		"",
		"the address of the validator contract",
	)

	cmd.Flags().Uint64Var(
		&params.blockNumber,
		command.BlockFlag,
		0,
		"the block number to query at (default: latest)",
	)

	cmd.Flags().StringVar(
		&params.configPath,
		command.ConfigFlag,
		"",
		"the path to a query config file",
	)
}

func runPreRun(cmd *cobra.Command, _ []string) error {
	params.jsonRPC = helper.GetJSONRPCAddress(cmd)
	params.jsonRPCSet = cmd.Flags().Changed(command.JSONRPCFlag)
	params.blockSet = cmd.Flags().Changed(command.BlockFlag)

	return params.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) error {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	simulator := ethrpc.NewCallSimulator(params.jsonRPC, nil)
	controller := contract.NewController(simulator, nil)

	blockNumber, err := params.resolveBlock(cmd.Context())
	if err != nil {
		outputter.SetError(err)

		return nil
	}

	epoch, err := controller.GetEpochCounter(blockNumber, params.contract)
	if err != nil {
		outputter.SetError(err)

		return nil
	}

	outputter.SetCommandResult(&EpochResult{
		Block:    blockNumber,
		Contract: params.contract,
		Epoch:    epoch.String(),
	})

	return nil
}

type EpochResult struct {
	Block    uint64        `json:"block"`
	Contract types.Address `json:"contract"`
	Epoch    string        `json:"epoch"`
}

func (r *EpochResult) GetOutput() string {
	return fmt.Sprintf("Epoch counter at block %d (contract %s): %s\n", r.Block, r.Contract, r.Epoch)
}
