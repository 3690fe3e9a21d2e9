package alephium

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// AddressTypeP2PKH prefixes pay-to-public-key-hash addresses
const AddressTypeP2PKH byte = 0x00

var ErrInvalidAddress = errors.New("invalid address")

// PublicKeyHash returns blake2b-256 of the compressed public key
func PublicKeyHash(pubKey *btcec.PublicKey) [32]byte {
	return blake2b.Sum256(pubKey.SerializeCompressed())
}

// AddressFromPublicKey derives the P2PKH address for pubKey
func AddressFromPublicKey(pubKey *btcec.PublicKey) string {
	hash := PublicKeyHash(pubKey)
	raw := make([]byte, 0, 1+len(hash))
	raw = append(raw, AddressTypeP2PKH)
	raw = append(raw, hash[:]...)
	return base58.Encode(raw)
}

// DecodeAddress splits a base58 address into its type byte and payload.
// Only the encoding is checked; whether the node accepts it is up to the node.
func DecodeAddress(address string) (byte, []byte, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(raw) < 2 {
		return 0, nil, fmt.Errorf("%w: too short", ErrInvalidAddress)
	}
	return raw[0], raw[1:], nil
}
