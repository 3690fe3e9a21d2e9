package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chinmay1088/alph/wallet"
)

func newRecoveryPhraseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recovery-phrase [show|import]",
		Short: "Manage recovery phrase",
		Long: `Manage your wallet's recovery phrase (mnemonic).

Commands:
  show    - Display the recovery phrase (wallet must be unlocked)
  import  - Import wallet from existing recovery phrase`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"show", "import"},
		RunE:      runRecoveryPhrase,
	}
}

func runRecoveryPhrase(cmd *cobra.Command, args []string) error {
	manager := newManager()
	action := strings.ToLower(args[0])

	switch action {
	case "show":
		return showRecoveryPhrase(manager)
	case "import":
		return importRecoveryPhrase(manager)
	default:
		return fmt.Errorf("invalid action: %s. Use 'show' or 'import'", action)
	}
}

func showRecoveryPhrase(manager *wallet.Manager) error {
	if !manager.VaultExists() {
		return fmt.Errorf("no wallet found. Run 'alph init' first")
	}

	mnemonic, err := manager.GetMnemonic()
	if errors.Is(err, wallet.ErrWalletLocked) {
		return fmt.Errorf("wallet is locked. Run 'alph unlock' first")
	}
	if err != nil {
		return fmt.Errorf("failed to get mnemonic: %w", err)
	}

	fmt.Println("🔐 Recovery Phrase:")
	fmt.Println()
	fmt.Printf("   %s\n", mnemonic)
	fmt.Println()
	fmt.Println("⚠️  Security Warning:")
	fmt.Println("   - Keep this phrase secure and private")
	fmt.Println("   - Anyone with this phrase can access your funds")
	fmt.Println("   - Never share it with anyone")

	return nil
}

func importRecoveryPhrase(manager *wallet.Manager) error {
	if manager.VaultExists() {
		return fmt.Errorf("wallet already exists. Remove existing wallet first")
	}

	fmt.Println("📝 Import Wallet from Recovery Phrase")
	fmt.Println()

	fmt.Print("Enter recovery phrase: ")
	reader := bufio.NewReader(os.Stdin)
	mnemonic, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read mnemonic: %w", err)
	}
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")

	password, err := readNewPassword()
	if err != nil {
		return err
	}

	if err := manager.ImportFromMnemonic(mnemonic, password); err != nil {
		return fmt.Errorf("failed to import wallet: %w", err)
	}

	fmt.Println("✅ Wallet imported successfully!")
	fmt.Println()
	fmt.Println("🔑 Next steps:")
	fmt.Println("   - Run 'alph address' to see your address")

	return nil
}
