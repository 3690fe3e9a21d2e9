package alephium

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
)

var ErrInvalidPrivateKey = errors.New("invalid private key")

// parsePrivateKey decodes a 32-byte hex secp256k1 private key
func parsePrivateKey(privHex string) (*btcec.PrivateKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(privHex), "0x"))
	if err != nil || len(raw) != btcec.PrivKeyBytesLen {
		return nil, ErrInvalidPrivateKey
	}

	// reject zero and anything not below the curve order
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow || scalar.IsZero() {
		return nil, ErrInvalidPrivateKey
	}

	privKey, _ := btcec.PrivKeyFromBytes(raw)
	return privKey, nil
}

// DerivePublicKey returns the public key of a hex private key. Surrounding
// whitespace and a 0x prefix are ignored.
func DerivePublicKey(privHex string) (*btcec.PublicKey, error) {
	privKey, err := parsePrivateKey(privHex)
	if err != nil {
		return nil, err
	}
	return privKey.PubKey(), nil
}
