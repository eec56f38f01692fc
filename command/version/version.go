package version

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vena-network/vena-node/command"
	"github.com/vena-network/vena-node/versioning"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Returns the current version",
		Args:  cobra.NoArgs,
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	outputter.SetCommandResult(&VersionResult{
		Version:   versioning.Version,
		Commit:    versioning.Commit,
		BuildTime: versioning.BuildTime,
	})
}

type VersionResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
}

func (r *VersionResult) GetOutput() string {
	var buffer bytes.Buffer

	fmt.Fprintf(&buffer, "Version: %s\n", r.Version)

	if r.Commit != "" {
		fmt.Fprintf(&buffer, "Commit: %s\n", r.Commit)
	}

	if r.BuildTime != "" {
		fmt.Fprintf(&buffer, "Build time: %s\n", r.BuildTime)
	}

	return buffer.String()
}
