package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"

	"github.com/chinmay1088/alph/chains/alephium"
)

const (
	// CoinType is the registered SLIP-44 coin type
	CoinType = 1234

	// DerivationPathFormat takes the address index
	DerivationPathFormat = "m/44'/1234'/0'/0/%d"

	mnemonicEntropyBits = 256 // 24 words
)

// Account is a derived key pair and its address
type Account struct {
	Address    string `json:"address"`
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
	Mnemonic   string `json:"mnemonic"`
	Path       string `json:"path"`
}

// CreateWallet generates a fresh 24-word mnemonic and returns its first account
func CreateWallet() (*Account, error) {
	mnemonic, err := newMnemonic()
	if err != nil {
		return nil, err
	}
	return DeriveAccount(mnemonic, 0)
}

// DeriveAccount derives the account at index from a BIP-39 mnemonic
func DeriveAccount(mnemonic string, index uint32) (*Account, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	seed := bip39.NewSeed(mnemonic, "")

	privKey, err := deriveKey(seed, index)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	pubKey := privKey.PubKey()

	return &Account{
		Address:    alephium.AddressFromPublicKey(pubKey),
		PublicKey:  hex.EncodeToString(pubKey.SerializeCompressed()),
		PrivateKey: hex.EncodeToString(privKey.Serialize()),
		Mnemonic:   mnemonic,
		Path:       fmt.Sprintf(DerivationPathFormat, index),
	}, nil
}

func newMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// deriveKey walks m/44'/1234'/0'/0/index
func deriveKey(seed []byte, index uint32) (*btcec.PrivateKey, error) {
	// the network params only affect extended-key serialization, which we never use
	masterKey, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	path := []uint32{
		hdkeychain.HardenedKeyStart + 44,
		hdkeychain.HardenedKeyStart + CoinType,
		hdkeychain.HardenedKeyStart + 0,
		0,
		index,
	}

	childKey := masterKey
	for _, childNum := range path {
		childKey, err = childKey.Derive(childNum)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child: %w", err)
		}
	}

	return childKey.ECPrivKey()
}
