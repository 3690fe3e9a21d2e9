package wallet

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tyler-smith/go-bip39"

	"github.com/chinmay1088/alph/api"
	"github.com/chinmay1088/alph/crypto"
)

const (
	// SessionDuration is how long an unlock lasts
	SessionDuration = 30 * time.Minute

	vaultFileName   = "wallet.vault"
	sessionFileName = "session.json"

	// testnet uses a separate address index so funds never mix across networks
	mainnetAccountIndex = 0
	testnetAccountIndex = 1
)

// SessionData holds the wallet session information
type SessionData struct {
	Token      string    `json:"token"`
	Mnemonic   string    `json:"mnemonic"`
	Expiration time.Time `json:"expiration"`
	Network    string    `json:"network"`
}

// Manager handles the vault, unlock sessions and key derivation
type Manager struct {
	vaultPath   string
	sessionPath string
	network     string
	now         func() time.Time

	mu       sync.Mutex
	vault    *crypto.Vault
	mnemonic string
	unlocked bool
}

// NewManager creates a wallet manager storing its files under home
func NewManager(home, network string) *Manager {
	if network != api.NetworkMainnet && network != api.NetworkTestnet {
		network = api.NetworkTestnet
	}

	return &Manager{
		vaultPath:   filepath.Join(home, vaultFileName),
		sessionPath: filepath.Join(home, sessionFileName),
		network:     network,
		now:         time.Now,
	}
}

func generateSessionToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}

// createSession writes a session for the current mnemonic. Caller holds mu.
func (m *Manager) createSession() error {
	token, err := generateSessionToken()
	if err != nil {
		return fmt.Errorf("failed to generate session token: %w", err)
	}

	session := SessionData{
		Token:      token,
		Mnemonic:   m.mnemonic,
		Expiration: m.now().Add(SessionDuration),
		Network:    m.network,
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(m.sessionPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// loadSession restores the mnemonic from a live session. Caller holds mu.
func (m *Manager) loadSession() bool {
	data, err := os.ReadFile(m.sessionPath)
	if err != nil {
		return false
	}

	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		os.Remove(m.sessionPath)
		return false
	}

	if m.now().After(session.Expiration) {
		os.Remove(m.sessionPath)
		return false
	}

	// sessions are per network
	if session.Network != m.network {
		return false
	}

	m.mnemonic = session.Mnemonic
	m.unlocked = true

	return true
}

// ensureUnlocked loads a session if needed. Caller holds mu.
func (m *Manager) ensureUnlocked() error {
	if m.unlocked && m.mnemonic != "" {
		return nil
	}
	if !m.loadSession() {
		return ErrWalletLocked
	}
	return nil
}

// Initialize creates a new wallet with a fresh mnemonic
func (m *Manager) Initialize(password string) error {
	mnemonic, err := newMnemonic()
	if err != nil {
		return err
	}
	return m.store(mnemonic, password)
}

// ImportFromMnemonic imports a wallet from an existing mnemonic
func (m *Manager) ImportFromMnemonic(mnemonic, password string) error {
	if !bip39.IsMnemonicValid(mnemonic) {
		return ErrInvalidMnemonic
	}
	return m.store(mnemonic, password)
}

func (m *Manager) store(mnemonic, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.VaultExists() {
		return ErrWalletExists
	}

	vault, err := crypto.NewVault(mnemonic, password)
	if err != nil {
		return fmt.Errorf("failed to create vault: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.vaultPath), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := m.saveVault(vault); err != nil {
		return fmt.Errorf("failed to save vault: %w", err)
	}

	m.vault = vault
	m.mnemonic = mnemonic
	m.unlocked = true

	if err := m.createSession(); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// Unlock unlocks the wallet with the provided password
func (m *Manager) Unlock(password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadSession() {
		return nil
	}

	if m.vault == nil {
		vault, err := m.loadVault()
		if err != nil {
			return fmt.Errorf("failed to load vault: %w", err)
		}
		m.vault = vault
	}

	mnemonic, err := m.vault.Decrypt(password)
	if err != nil {
		if errors.Is(err, crypto.ErrWrongPassword) {
			return ErrInvalidPassword
		}
		return fmt.Errorf("failed to decrypt vault: %w", err)
	}

	m.mnemonic = mnemonic
	m.unlocked = true

	if err := m.createSession(); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// Lock locks the wallet and clears sensitive data from memory
func (m *Manager) Lock() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unlocked = false
	m.mnemonic = ""
	os.Remove(m.sessionPath)
}

// IsUnlocked returns whether the wallet is currently unlocked
func (m *Manager) IsUnlocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ensureUnlocked() == nil
}

// GetMnemonic returns the current mnemonic (only if unlocked)
func (m *Manager) GetMnemonic() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureUnlocked(); err != nil {
		return "", err
	}
	return m.mnemonic, nil
}

// GetAccount derives the account for the current network
func (m *Manager) GetAccount() (*Account, error) {
	mnemonic, err := m.GetMnemonic()
	if err != nil {
		return nil, err
	}

	index := uint32(mainnetAccountIndex)
	if m.IsTestnet() {
		index = testnetAccountIndex
	}

	return DeriveAccount(mnemonic, index)
}

func (m *Manager) saveVault(vault *crypto.Vault) error {
	data, err := json.Marshal(vault)
	if err != nil {
		return fmt.Errorf("failed to marshal vault: %w", err)
	}

	if err := os.WriteFile(m.vaultPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write vault file: %w", err)
	}

	return nil
}

func (m *Manager) loadVault() (*crypto.Vault, error) {
	data, err := os.ReadFile(m.vaultPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoWallet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read vault file: %w", err)
	}

	var vault crypto.Vault
	if err := json.Unmarshal(data, &vault); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vault: %w", err)
	}

	return &vault, nil
}

// VaultExists checks if a vault file exists
func (m *Manager) VaultExists() bool {
	_, err := os.Stat(m.vaultPath)
	return err == nil
}

// IsTestnet returns true if the wallet is in testnet mode
func (m *Manager) IsTestnet() bool {
	return m.network == api.NetworkTestnet
}

// GetCurrentNetwork returns the current network (mainnet or testnet)
func (m *Manager) GetCurrentNetwork() string {
	return m.network
}
