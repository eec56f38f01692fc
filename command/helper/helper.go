package helper

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vena-network/vena-node/command"
)

// QueryConfig holds the file-based defaults for the query commands.
// Flags take precedence over the file.
type QueryConfig struct {
	JSONRPC           string `yaml:"jsonrpc"`
	ValidatorContract string `yaml:"validator_contract"`
}

func ReadQueryConfig(path string) (*QueryConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	config := &QueryConfig{}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("unable to parse config file %s: %w", path, err)
	}

	return config, nil
}

// RegisterJSONOutputFlag registers the --json output flag on the command
// and all of its subcommands.
func RegisterJSONOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(
		command.JSONOutputFlag,
		false,
		"get all outputs in json format (default false)",
	)
}

// RegisterJSONRPCFlag registers the --jsonrpc flag for commands that query
// a running node.
func RegisterJSONRPCFlag(cmd *cobra.Command) {
	cmd.Flags().String(
		command.JSONRPCFlag,
		command.DefaultJSONRPCAddress,
		"the JSON-RPC interface of the node to query",
	)
}

func GetJSONRPCAddress(cmd *cobra.Command) string {
	address, _ := cmd.Flags().GetString(command.JSONRPCFlag)

	return address
}
