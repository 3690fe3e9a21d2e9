package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/alph/api"
	"github.com/chinmay1088/alph/config"
)

func newNetworkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "network [mainnet|testnet]",
		Short: "Show or change network",
		Long: `Show the current network or switch between mainnet and testnet.
The choice is saved to the config file in your alph home directory.

Examples:
  alph network            # Show current network
  alph network mainnet    # Switch to mainnet
  alph network testnet    # Switch to testnet`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{api.NetworkMainnet, api.NetworkTestnet},
		RunE:      runNetwork,
	}
}

func runNetwork(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		label := color.YellowString(networkLabel())
		if cfg.Network == api.NetworkMainnet {
			label = color.GreenString(networkLabel())
		}
		fmt.Fprintf(out, "🌐 Current network: %s\n", label)
		fmt.Fprintf(out, "   Node: %s\n", cfg.NodeURL)
		fmt.Fprintln(out, "💡 Mainnet and testnet use separate addresses for your safety")
		return nil
	}

	network := strings.ToLower(args[0])
	if err := config.SaveNetwork(cfg.Home, network); err != nil {
		return err
	}

	fmt.Fprintf(out, "🌐 Switched to %s network\n", strings.ToUpper(network))
	if network == api.NetworkTestnet {
		fmt.Fprintln(out, "⚠️  You are now on TESTNET mode")
	} else {
		fmt.Fprintln(out, "✅ You are now on MAINNET mode")
	}
	fmt.Fprintln(out, "💡 Mainnet and testnet use separate addresses for your safety")

	return nil
}
