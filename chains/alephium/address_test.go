package alephium

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestAddressFromPublicKey(t *testing.T) {
	privKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	pubKey := privKey.PubKey()

	address := AddressFromPublicKey(pubKey)

	addrType, payload, err := DecodeAddress(address)
	require.NoError(t, err)
	require.Equal(t, AddressTypeP2PKH, addrType)

	expectedHash := blake2b.Sum256(pubKey.SerializeCompressed())
	require.Equal(t, expectedHash[:], payload)

	// same key, same address
	require.Equal(t, address, AddressFromPublicKey(pubKey))
}

func TestDecodeAddress_Invalid(t *testing.T) {
	_, _, err := DecodeAddress("0OIl")
	require.ErrorIs(t, err, ErrInvalidAddress)

	_, _, err = DecodeAddress("")
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestDecodeAddress_ReferenceAddress(t *testing.T) {
	addrType, payload, err := DecodeAddress("1G6zLwzvQWYgsjnCA2xRpJ6JmptbgyAasEvRjRYK763YB")
	require.NoError(t, err)
	require.Equal(t, AddressTypeP2PKH, addrType)
	require.Len(t, payload, 32)
}
