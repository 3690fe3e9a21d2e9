package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/alph/api"
	"github.com/chinmay1088/alph/chains/alephium"
)

// defaultFee is the fee, in atto-ALPH, used when --fee is not given
const defaultFee = "10000000"

func newBuildCmd() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build [address] [amount]",
		Short: "Build an unsigned transfer",
		Long: `Ask the node to build an unsigned transaction sending amount ALPH to address.
The sender defaults to your wallet address. The node's response is printed
as-is; sign the unsigned transaction with your signer and submit it with
'alph submit'.

Examples:
  alph build 1GyPThufLLMrEjw3fAjLweMFUbSQKiUe5BKh8G2Sx1a9x 1.5
  alph build 1GyPThufLLMrEjw3fAjLweMFUbSQKiUe5BKh8G2Sx1a9x 1000000000000000000 --atto
  alph build 1GyPThufLLMrEjw3fAjLweMFUbSQKiUe5BKh8G2Sx1a9x 10 --usd
  alph build 1GyP... 1 --from 1G6z... --fee 20000000`,
		Args: cobra.ExactArgs(2),
		RunE: runBuild,
	}

	buildCmd.Flags().String("from", "", "sender address (default: your wallet address)")
	buildCmd.Flags().String("fee", defaultFee, "fee in atto-ALPH")
	buildCmd.Flags().Bool("atto", false, "amount is already in atto-ALPH")
	buildCmd.Flags().Bool("usd", false, "amount is in USD (mainnet only)")

	return buildCmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	client := newClient()
	recipientAddress := args[0]
	amountStr := args[1]

	fromAddress, _ := cmd.Flags().GetString("from")
	fee, _ := cmd.Flags().GetString("fee")
	attoFlag, _ := cmd.Flags().GetBool("atto")
	usdFlag, _ := cmd.Flags().GetBool("usd")

	if attoFlag && usdFlag {
		return fmt.Errorf("--atto and --usd cannot be used together")
	}

	if fromAddress == "" {
		manager := newManager()
		if !manager.IsUnlocked() {
			return fmt.Errorf("wallet is locked. Run 'alph unlock' first or pass --from")
		}
		account, err := manager.GetAccount()
		if err != nil {
			return fmt.Errorf("failed to get sender address: %w", err)
		}
		fromAddress = account.Address
	}

	amount, err := resolveAmount(cmd, client, amountStr, attoFlag, usdFlag)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("from", fromAddress).
		Str("to", recipientAddress).
		Str("amount", amount).
		Str("fee", fee).
		Msg("building transaction")

	var unsigned json.RawMessage
	err = withSpinner("Building transaction", func() error {
		var buildErr error
		unsigned, buildErr = client.BuildTransaction(cmd.Context(), fromAddress, recipientAddress, amount, fee)
		return buildErr
	})
	if err != nil {
		return describeNodeError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🟢 Unsigned transaction")
	fmt.Fprintf(out, "   From:   %s\n", fromAddress)
	fmt.Fprintf(out, "   To:     %s\n", recipientAddress)
	fmt.Fprintf(out, "   Amount: %s\n", alephium.FormatAtto(amount))
	fmt.Fprintf(out, "   Fee:    %s\n", alephium.FormatAtto(fee))
	fmt.Fprintln(out)
	if err := printJSON(out, unsigned); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "💡 Sign the transaction, then run 'alph submit <signed-transaction>'")

	return nil
}

// resolveAmount returns the amount in atto-ALPH. Atto amounts are passed
// through untouched for the node to judge.
func resolveAmount(cmd *cobra.Command, client *api.Client, amountStr string, attoFlag, usdFlag bool) (string, error) {
	if attoFlag {
		return amountStr, nil
	}

	if usdFlag {
		if cfg.Network != api.NetworkMainnet {
			return "", fmt.Errorf("--usd is only available on mainnet")
		}
		usdAmount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return "", fmt.Errorf("invalid amount: %w", err)
		}
		price, err := client.GetPrice(cmd.Context(), api.PriceSymbol)
		if err != nil {
			return "", fmt.Errorf("failed to get ALPH price: %w", err)
		}
		if price.USD.IsZero() {
			return "", fmt.Errorf("ALPH price is zero")
		}
		amountStr = usdAmount.DivRound(price.USD, alephium.Decimals).String()
	}

	atto, err := alephium.ToAtto(amountStr)
	if err != nil {
		return "", fmt.Errorf("invalid amount: %w", err)
	}
	return atto, nil
}
