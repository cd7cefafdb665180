// ecies_test.go: round-trip and decline-path coverage for ECIES on
// secp256k1.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package curvecrypto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func genRecipientKeyPair(t *testing.T) component.ECC_KeyPair {
	t.Helper()
	res, err := secp256k1GenerateKeyPair(&operation.ECC_GenerateKeyPairOp{})
	require.NoError(t, err)
	kp, ok := res.(component.ECC_KeyPair)
	require.True(t, ok)
	return kp
}

func TestECIESEncryptDecryptRoundTrip(t *testing.T) {
	recipient := genRecipientKeyPair(t)

	enc := &operation.ECIES_EncryptOp{
		Curve:     operation.Secp256k1,
		Cleartext: []byte("attack at dawn"),
		HasPubKey: true,
		PubX:      recipient.Pub.X.Decimal(),
		PubY:      recipient.Pub.Y.Decimal(),
	}
	// supply the sender's ephemeral key explicitly (itself freshly
	// generated) so the ciphertext below can be decrypted with it.
	ephemeral := genRecipientKeyPair(t)
	enc.HasPrivKey = true
	enc.PrivKey = ephemeral.Priv.Decimal()

	res, err := dispatchECIESEncrypt(enc)
	require.NoError(t, err)
	ct, ok := res.(component.Ciphertext)
	require.True(t, ok)
	require.True(t, ct.HasTag)
	require.NotEmpty(t, ct.CiphertextBytes)

	dec := &operation.ECIES_DecryptOp{
		Curve:      operation.Secp256k1,
		Ciphertext: append(append([]byte{}, ct.CiphertextBytes...), ct.Tag...),
		PrivKey:    recipient.Priv.Decimal(),
		HasPubKey:  true,
		PubX:       ephemeral.Pub.X.Decimal(),
		PubY:       ephemeral.Pub.Y.Decimal(),
	}
	decRes, err := dispatchECIESDecrypt(dec)
	require.NoError(t, err)
	cleartext, ok := decRes.(component.Cleartext)
	require.True(t, ok)
	require.Equal(t, "attack at dawn", string(cleartext.Data))
}

func TestECIESEncrypt_NoPubKeyDeclines(t *testing.T) {
	enc := &operation.ECIES_EncryptOp{
		Curve:     operation.Secp256k1,
		Cleartext: []byte("x"),
		HasPubKey: false,
	}
	res, err := dispatchECIESEncrypt(enc)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestECIESEncrypt_UnsupportedCurveDeclines(t *testing.T) {
	enc := &operation.ECIES_EncryptOp{
		Curve:     operation.Ed25519,
		Cleartext: []byte("x"),
		HasPubKey: true,
		PubX:      "1",
		PubY:      "1",
	}
	res, err := dispatchECIESEncrypt(enc)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestECIESDecrypt_WrongKeyFailsClosed(t *testing.T) {
	recipient := genRecipientKeyPair(t)
	ephemeral := genRecipientKeyPair(t)
	wrongRecipient := genRecipientKeyPair(t)

	enc := &operation.ECIES_EncryptOp{
		Curve:      operation.Secp256k1,
		Cleartext:  []byte("secret"),
		HasPubKey:  true,
		PubX:       recipient.Pub.X.Decimal(),
		PubY:       recipient.Pub.Y.Decimal(),
		HasPrivKey: true,
		PrivKey:    ephemeral.Priv.Decimal(),
	}
	res, err := dispatchECIESEncrypt(enc)
	require.NoError(t, err)
	ct := res.(component.Ciphertext)

	dec := &operation.ECIES_DecryptOp{
		Curve:      operation.Secp256k1,
		Ciphertext: append(append([]byte{}, ct.CiphertextBytes...), ct.Tag...),
		PrivKey:    wrongRecipient.Priv.Decimal(),
		HasPubKey:  true,
		PubX:       ephemeral.Pub.X.Decimal(),
		PubY:       ephemeral.Pub.Y.Decimal(),
	}
	decRes, err := dispatchECIESDecrypt(dec)
	require.NoError(t, err)
	require.Nil(t, decRes)
}
