package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const minPasswordLength = 8

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new wallet",
		Long: `Initialize a new wallet with a secure recovery phrase.

This command will:
  - Generate a new 24-word recovery phrase
  - Create an encrypted vault
  - Derive your Alephium address`,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	manager := newManager()

	if manager.VaultExists() {
		return fmt.Errorf("wallet already exists. Remove %s/wallet.vault to create a new wallet", cfg.Home)
	}

	fmt.Println("🚀 Initializing wallet")
	fmt.Println()

	password, err := readNewPassword()
	if err != nil {
		return err
	}

	fmt.Println("Generating wallet...")
	if err := manager.Initialize(password); err != nil {
		return fmt.Errorf("failed to initialize wallet: %w", err)
	}

	mnemonic, err := manager.GetMnemonic()
	if err != nil {
		return fmt.Errorf("failed to get recovery phrase: %w", err)
	}

	fmt.Println("✅ Wallet initialized successfully!")
	fmt.Println()
	fmt.Println("🔐 Recovery Phrase (24 words):")
	fmt.Println()
	fmt.Printf("   %s\n", mnemonic)
	fmt.Println()
	fmt.Println("⚠️  IMPORTANT:")
	fmt.Println("   - Write down this recovery phrase and store it securely")
	fmt.Println("   - Anyone with this phrase can access your funds")
	fmt.Println("   - This is the only way to recover your wallet")
	fmt.Println()
	fmt.Println("🔑 Next steps:")
	fmt.Println("   - Run 'alph address' to see your address")
	fmt.Println("   - Run 'alph balance' to check your balance")

	return nil
}

// readNewPassword prompts twice and enforces the minimum length
func readNewPassword() (string, error) {
	fmt.Print("Enter a password for your wallet: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println()

	if len(password) < minPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}

	fmt.Print("Confirm password: ")
	confirmPassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}
	fmt.Println()

	if string(password) != string(confirmPassword) {
		return "", fmt.Errorf("passwords do not match")
	}

	return string(password), nil
}
