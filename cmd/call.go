package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call [contract-address] [function] [parameters]",
		Short: "Call a smart contract function",
		Long: `Ask the node to run a contract function and print the node's response.
Parameters are passed as a JSON value and sent unchanged; they default to [].

Examples:
  alph call vobthYg1e9tPKhmF96rpkv3akCj7vhvgPpsP4qwZqDw3 getTotal
  alph call vobthYg1e9tPKhmF96rpkv3akCj7vhvgPpsP4qwZqDw3 balanceOf '[{"type":"Address","value":"1DrD..."}]'`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runCall,
	}
}

func runCall(cmd *cobra.Command, args []string) error {
	client := newClient()
	contractAddress := args[0]
	functionName := args[1]

	parameters := json.RawMessage("[]")
	if len(args) == 3 {
		if !json.Valid([]byte(args[2])) {
			return fmt.Errorf("parameters must be valid JSON: %s", args[2])
		}
		parameters = json.RawMessage(args[2])
	}

	var result json.RawMessage
	err := withSpinner("Calling contract", func() error {
		var callErr error
		result, callErr = client.CallContract(cmd.Context(), contractAddress, functionName, parameters)
		return callErr
	})
	if err != nil {
		return describeNodeError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📜 %s.%s (%s)\n", contractAddress, functionName, networkLabel())
	fmt.Fprintln(out)
	return printJSON(out, result)
}
