package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tx [transaction-id]",
		Short: "Show a transaction",
		Long: `Fetch a transaction from the node by id and print the node's response.

Examples:
  alph tx 503bfb16230888af4924aa8f8250d7d348b862e267d75d3147f1998050b6da69`,
		Args: cobra.ExactArgs(1),
		RunE: runTx,
	}
}

func runTx(cmd *cobra.Command, args []string) error {
	client := newClient()
	txID := strings.TrimSpace(args[0])

	var result json.RawMessage
	err := withSpinner("Fetching transaction", func() error {
		var fetchErr error
		result, fetchErr = client.GetTransaction(cmd.Context(), txID)
		return fetchErr
	})
	if err != nil {
		return describeNodeError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔎 Transaction %s (%s)\n", txID, networkLabel())
	fmt.Fprintln(out)
	return printJSON(out, result)
}
