package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// CommandResult is the human-readable output of a single command.
type CommandResult interface {
	GetOutput() string
}

// OutputFormatter collects a command's result or error and writes it once,
// as text or JSON depending on the --json flag.
type OutputFormatter interface {
	SetError(err error)
	SetCommandResult(result CommandResult)
	WriteOutput()
}

func InitializeOutputter(cmd *cobra.Command) OutputFormatter {
	if flag := cmd.Flag(JSONOutputFlag); flag != nil && flag.Value.String() == "true" {
		return &jsonOutput{}
	}

	return &cliOutput{}
}

type commonOutput struct {
	errorOutput   error
	commandOutput CommandResult
}

func (o *commonOutput) SetError(err error) {
	o.errorOutput = err
}

func (o *commonOutput) SetCommandResult(result CommandResult) {
	o.commandOutput = result
}

type cliOutput struct {
	commonOutput
}

func (o *cliOutput) WriteOutput() {
	if o.errorOutput != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", o.errorOutput)

		return
	}

	if o.commandOutput != nil {
		_, _ = fmt.Fprintln(os.Stdout, o.commandOutput.GetOutput())
	}
}

type jsonOutput struct {
	commonOutput
}

func (o *jsonOutput) WriteOutput() {
	if o.errorOutput != nil {
		marshalled, _ := json.Marshal(struct {
			Error string `json:"error"`
		}{Error: o.errorOutput.Error()})

		_, _ = fmt.Fprintln(os.Stderr, string(marshalled))

		return
	}

	if o.commandOutput != nil {
		marshalled, err := json.MarshalIndent(o.commandOutput, "", "    ")
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "Error:", err)

			return
		}

		_, _ = fmt.Fprintln(os.Stdout, string(marshalled))
	}
}
