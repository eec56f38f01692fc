package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vena-network/vena-node/command/epoch"
	"github.com/vena-network/vena-node/command/helper"
	"github.com/vena-network/vena-node/command/validators"
	"github.com/vena-network/vena-node/command/version"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Short: "Vena is a framework for building Ethereum-compatible blockchain networks",
		},
	}

	helper.RegisterJSONOutputFlag(rootCommand.baseCmd)

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		version.GetCommand(),
		validators.GetCommand(),
		epoch.GetCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
