package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/alph/wallet"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Generate a new key pair without storing it",
		Long: `Generate a fresh recovery phrase and print the derived address and keys.
Nothing is written to disk; use 'alph init' for a managed wallet.`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}
}

func runCreate(cmd *cobra.Command, args []string) error {
	account, err := wallet.CreateWallet()
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🔑 New wallet")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Address:         %s\n", account.Address)
	fmt.Fprintf(out, "Public key:      %s\n", account.PublicKey)
	fmt.Fprintf(out, "Private key:     %s\n", account.PrivateKey)
	fmt.Fprintf(out, "Derivation path: %s\n", account.Path)
	fmt.Fprintf(out, "Recovery phrase: %s\n", account.Mnemonic)
	fmt.Fprintln(out)
	fmt.Fprintln(out, color.YellowString("⚠️  These secrets are shown once and not stored. Keep them offline."))

	return nil
}
