package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinmay1088/alph/api"
	"github.com/chinmay1088/alph/chains/alephium"
)

func newBalanceCmd() *cobra.Command {
	balanceCmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Check ALPH balance",
		Long: `Check the balance of your wallet address, or of any address given.

Examples:
  alph balance                # Check your wallet balance
  alph balance --usd          # Include the USD value
  alph balance 1G6zLwzv...    # Check another address (no wallet needed)`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBalance,
	}

	balanceCmd.Flags().Bool("usd", false, "Show balance in USD")

	return balanceCmd
}

func runBalance(cmd *cobra.Command, args []string) error {
	client := newClient()
	usdFlag, _ := cmd.Flags().GetBool("usd")

	var address string
	if len(args) == 1 {
		address = args[0]
	} else {
		manager := newManager()
		if !manager.IsUnlocked() {
			return fmt.Errorf("wallet is locked. Run 'alph unlock' first or pass an address")
		}
		account, err := manager.GetAccount()
		if err != nil {
			return fmt.Errorf("failed to get address: %w", err)
		}
		address = account.Address
	}

	balance, err := client.GetBalance(cmd.Context(), address)
	if err != nil {
		return describeNodeError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "💰 Wallet Balance")
	fmt.Fprintf(out, "🌐 Network: %s\n", networkLabel())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "🟢 Alephium: %s\n", alephium.FormatAtto(balance))

	if usdFlag && cfg.Network == api.NetworkMainnet {
		if err := printUSDValue(cmd, client, balance); err != nil {
			fmt.Fprintf(out, "   💵 USD: Error fetching price - %v\n", err)
		}
	}

	fmt.Fprintf(out, "   📍 Address: %s\n", address)
	return nil
}

func printUSDValue(cmd *cobra.Command, client *api.Client, atto string) error {
	alph, err := alephium.FromAtto(atto)
	if err != nil {
		return err
	}

	price, err := client.GetPrice(cmd.Context(), api.PriceSymbol)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "   💵 USD: $%s\n", alph.Mul(price.USD).StringFixed(2))
	return nil
}
