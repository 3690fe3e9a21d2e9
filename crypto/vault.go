package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	ScryptN = 32768 // 2^15
	ScryptR = 8
	ScryptP = 1
	KeyLen  = 32 // AES-256 key length

	saltLen      = 32
	vaultVersion = 1
)

// ErrWrongPassword is returned when the vault cannot be opened with the given password.
var ErrWrongPassword = errors.New("wrong password or corrupted vault")

// Vault holds the wallet mnemonic encrypted with AES-256-GCM under a
// scrypt-derived key.
type Vault struct {
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	Data  []byte `json:"data"`
}

type vaultData struct {
	Mnemonic string `json:"mnemonic"`
	Version  int    `json:"version"`
}

func NewVault(mnemonic, password string) (*Vault, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := deriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	data, err := json.Marshal(vaultData{Mnemonic: mnemonic, Version: vaultVersion})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize vault data: %w", err)
	}
	defer clearBytes(data)

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return &Vault{
		Salt:  salt,
		Nonce: nonce,
		Data:  aesGCM.Seal(nil, nonce, data, nil),
	}, nil
}

// Decrypt returns the stored mnemonic
func (v *Vault) Decrypt(password string) (string, error) {
	key, err := deriveKey(password, v.Salt)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return "", err
	}
	if len(v.Nonce) != aesGCM.NonceSize() {
		return "", ErrWrongPassword
	}

	plaintext, err := aesGCM.Open(nil, v.Nonce, v.Data, nil)
	if err != nil {
		return "", ErrWrongPassword
	}
	defer clearBytes(plaintext)

	var data vaultData
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return "", fmt.Errorf("failed to deserialize vault data: %w", err)
	}

	return data.Mnemonic, nil
}

func (v *Vault) ValidatePassword(password string) bool {
	_, err := v.Decrypt(password)
	return err == nil
}

func deriveKey(password string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), salt, ScryptN, ScryptR, ScryptP, KeyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt key derivation failed: %w", err)
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
