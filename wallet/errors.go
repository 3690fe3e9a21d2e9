package wallet

import "errors"

var (
	ErrWalletLocked    = errors.New("wallet is locked")
	ErrWalletExists    = errors.New("wallet already exists")
	ErrNoWallet        = errors.New("no wallet found")
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	ErrInvalidPassword = errors.New("invalid password")
)
