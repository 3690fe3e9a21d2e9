package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Show wallet address",
		Long: `Show your wallet address for the current network.
Mainnet and testnet use different addresses derived from the same recovery phrase.

Example:
  alph address`,
		Args: cobra.NoArgs,
		RunE: runAddress,
	}
}

func runAddress(cmd *cobra.Command, args []string) error {
	manager := newManager()

	if !manager.IsUnlocked() {
		return fmt.Errorf("wallet is locked. Run 'alph unlock' first")
	}

	account, err := manager.GetAccount()
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🌐 Network: %s\n\n", networkLabel())
	fmt.Fprintf(out, "Alephium (ALPH): %s\n", account.Address)
	fmt.Fprintf(out, "   Path: %s\n", account.Path)

	return nil
}
