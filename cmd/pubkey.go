package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinmay1088/alph/chains/alephium"
)

func newPubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey [private-key]",
		Short: "Derive the public key and address of a private key",
		Long: `Print the compressed public key and address for a hex private key.
If no key is given it is read from standard input, which keeps it out of
your shell history.

Examples:
  alph pubkey < key.txt
  alph pubkey a642942e67258589cd2b1822c631506632db5a12aabcf413604e785300d762a5`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPubkey,
	}
}

func runPubkey(cmd *cobra.Command, args []string) error {
	var privHex string
	if len(args) == 1 {
		privHex = args[0]
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read private key: %w", err)
		}
		privHex = line
	}

	pubKey, err := alephium.DerivePublicKey(privHex)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Public key: %s\n", hex.EncodeToString(pubKey.SerializeCompressed()))
	fmt.Fprintf(out, "Address:    %s\n", alephium.AddressFromPublicKey(pubKey))

	return nil
}
