package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/alph/api"
	"github.com/chinmay1088/alph/config"
	"github.com/chinmay1088/alph/wallet"
)

var (
	version = "1.0.0"

	// set by loadConfig before any subcommand runs
	cfg    *config.Config
	logger = zerolog.Nop()
)

// NewRootCmd builds the alph command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "alph",
		Short: "A command-line wallet for the Alephium blockchain",
		Long: `alph is a small command-line wallet that talks to an Alephium full node
over its HTTP API. Keys are generated and stored locally in an encrypted
vault; transactions are built and submitted by the node.

Examples:
  alph init                          # Create new wallet
  alph unlock                        # Unlock wallet
  alph address                       # Show your address
  alph balance --usd                 # Check balance with USD value
  alph build 1GyP... 1.5             # Build an unsigned transfer of 1.5 ALPH
  alph submit <signed-tx>            # Submit a signed transaction
  alph tx <tx-id>                    # Show a transaction
  alph call <contract> <function>    # Call a contract function
  alph network mainnet               # Switch to mainnet`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("home", "", "directory for the vault, session and config file (default ~/.alph)")
	rootCmd.PersistentFlags().String("network", "", "network to use: mainnet or testnet")
	rootCmd.PersistentFlags().String("node-url", "", "full node HTTP API URL (default depends on network)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "timeout for each node request (default 30s)")

	rootCmd.AddCommand(
		newInitCmd(),
		newUnlockCmd(),
		newLockCmd(),
		newCreateCmd(),
		newAddressCmd(),
		newBalanceCmd(),
		newBuildCmd(),
		newSubmitCmd(),
		newTxCmd(),
		newCallCmd(),
		newPubkeyCmd(),
		newRecoveryPhraseCmd(),
		newNetworkCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return NewRootCmd().Execute()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger = newLogger(verbose)

	home, _ := cmd.Flags().GetString("home")
	if home == "" {
		defaultHome, err := config.DefaultHome()
		if err != nil {
			return err
		}
		home = defaultHome
	}

	v := config.New(home)
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	loaded, err := config.Load(v, home)
	if err != nil {
		return err
	}
	cfg = loaded

	logger.Debug().
		Str("network", cfg.Network).
		Str("node_url", cfg.NodeURL).
		Dur("timeout", cfg.Timeout).
		Msg("loaded config")

	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func newClient() *api.Client {
	return api.NewClient(cfg.NodeURL,
		api.WithTimeout(cfg.Timeout),
		api.WithPriceURL(cfg.PriceURL),
		api.WithLogger(logger),
	)
}

func newManager() *wallet.Manager {
	return wallet.NewManager(cfg.Home, cfg.Network)
}

func networkLabel() string {
	if cfg.Network == api.NetworkMainnet {
		return "Mainnet"
	}
	return "Testnet"
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "alph v%s\n", version)
		},
	}
}
