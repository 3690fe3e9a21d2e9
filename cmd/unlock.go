package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newUnlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Unlock wallet for session",
		Long: `Unlock your wallet for the current session.
This command will decrypt your vault. The wallet stays unlocked for 30
minutes or until you run 'alph lock'.

Example:
  alph unlock`,
		RunE: runUnlock,
	}
}

func newLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Lock wallet and end the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			newManager().Lock()
			fmt.Println("🔒 Wallet locked")
			return nil
		},
	}
}

func runUnlock(cmd *cobra.Command, args []string) error {
	manager := newManager()

	if !manager.VaultExists() {
		return fmt.Errorf("no wallet found. Run 'alph init' to create a new wallet")
	}

	if manager.IsUnlocked() {
		fmt.Println("✅ Wallet is already unlocked")
		return nil
	}

	fmt.Print("Enter your wallet password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println()

	fmt.Println("Unlocking wallet...")
	if err := manager.Unlock(string(password)); err != nil {
		return fmt.Errorf("failed to unlock wallet: %w", err)
	}

	fmt.Println("✅ Wallet unlocked successfully!")
	fmt.Println("💡 Use 'alph address' to see your address")
	fmt.Println("💡 Use 'alph balance' to check your balance")

	return nil
}
