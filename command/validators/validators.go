package validators

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vena-network/vena-node/command"
	"github.com/vena-network/vena-node/command/helper"
	"github.com/vena-network/vena-node/internal/ethrpc"
	"github.com/vena-network/vena-node/types"
	"github.com/vena-network/vena-node/validators"
	"github.com/vena-network/vena-node/validators/store/contract"
)

var params validatorsParams

func GetCommand() *cobra.Command {
	validatorsCmd := &cobra.Command{
		Use:     "validators",
		Short:   "Queries the validator set held by the validator contract",
		PreRunE: runPreRun,
		RunE:    runCommand,
	}

	helper.RegisterJSONRPCFlag(validatorsCmd)
	setFlags(validatorsCmd)

	return validatorsCmd
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

	addrs, err := controller.GetValidators(blockNumber, params.contract)
	if err != nil {
		outputter.SetError(err)

		return nil
	}

	outputter.SetCommandResult(&ValidatorsResult{
		Block:      blockNumber,
		Contract:   params.contract,
		Validators: validators.NewSet(addrs...),
	})

	return nil
}

type ValidatorsResult struct {
	Block      uint64         `json:"block"`
	Contract   types.Address  `json:"contract"`
	Validators validators.Set `json:"validators"`
}

func (r *ValidatorsResult) GetOutput() string {
	var buffer bytes.Buffer

	fmt.Fprintf(&buffer, "Validator set at block %d (contract %s):\n", r.Block, r.Contract)

	if r.Validators.Len() == 0 {
		buffer.WriteString("(no validators)\n")

		return buffer.String()
	}

	for i, addr := range r.Validators {
		fmt.Fprintf(&buffer, "[%d] %s\n", i, addr)
	}

	return buffer.String()
}
