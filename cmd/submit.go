package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSubmitCmd() *cobra.Command {
	submitCmd := &cobra.Command{
		Use:   "submit [signed-transaction]",
		Short: "Submit a signed transaction",
		Long: `Submit a pre-signed transaction to the node. The transaction is sent
as-is; it is not checked or signed locally.

Examples:
  alph submit 0a1b2c...
  alph submit 0a1b2c... --yes    # Skip confirmation`,
		Args: cobra.ExactArgs(1),
		RunE: runSubmit,
	}

	submitCmd.Flags().BoolP("yes", "y", false, "skip confirmation")

	return submitCmd
}

func runSubmit(cmd *cobra.Command, args []string) error {
	client := newClient()
	signedTx := strings.TrimSpace(args[0])
	out := cmd.OutOrStdout()

	yesFlag, _ := cmd.Flags().GetBool("yes")
	if !yesFlag {
		fmt.Fprintf(out, "🌐 Network: %s (%s)\n", networkLabel(), client.BaseURL())
		if !confirm(cmd.InOrStdin(), out, "Submit this transaction? This cannot be undone.") {
			fmt.Fprintln(out, "❌ Transaction cancelled by user")
			return nil
		}
	}

	var result json.RawMessage
	err := withSpinner("Submitting transaction", func() error {
		var submitErr error
		result, submitErr = client.SubmitTransaction(cmd.Context(), signedTx)
		return submitErr
	})
	if err != nil {
		return describeNodeError(err)
	}

	fmt.Fprintln(out, "✅ Transaction submitted")
	fmt.Fprintln(out)
	return printJSON(out, result)
}
