// kdf_extra_test.go: coverage for the hand-built KDF constructions in
// kdf_extra.go.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package refcrypto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func keyBytes(t *testing.T, res component.Result) []byte {
	t.Helper()
	k, ok := res.(component.Key)
	require.True(t, ok, "expected component.Key, got %T", res)
	return k.Data
}

func TestDispatchPBKDF(t *testing.T) {
	op := &operation.KDF_PBKDF_Op{}
	op.Password = []byte("password")
	op.Salt = []byte("salt")
	op.Iterations = 4
	op.DigestType = operation.SHA256
	op.KeySize = 32

	res, err := dispatchPBKDF(op)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, keyBytes(t, res), 32)
}

func TestDispatchPBKDF_UnknownDigestDeclines(t *testing.T) {
	op := &operation.KDF_PBKDF_Op{}
	op.Password = []byte("password")
	op.Salt = []byte("salt")
	op.DigestType = operation.DigestID(0xffff)
	op.KeySize = 16

	res, err := dispatchPBKDF(op)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestDispatchPBKDF1_DeterministicAndBounded(t *testing.T) {
	op := &operation.KDF_PBKDF1_Op{}
	op.Password = []byte("password")
	op.Salt = []byte("saltsalt")
	op.Iterations = 2
	op.DigestType = operation.SHA256
	op.KeySize = 16

	res1, err := dispatchPBKDF1(op)
	require.NoError(t, err)
	res2, err := dispatchPBKDF1(op)
	require.NoError(t, err)
	require.Equal(t, keyBytes(t, res1), keyBytes(t, res2))
	require.Len(t, keyBytes(t, res1), 16)
}

func TestDispatchPBKDF1_OversizedKeyDeclines(t *testing.T) {
	op := &operation.KDF_PBKDF1_Op{}
	op.Password = []byte("password")
	op.Salt = []byte("salt")
	op.DigestType = operation.SHA256
	op.KeySize = 1024 // larger than any digest output

	res, err := dispatchPBKDF1(op)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestDispatchSSHKDF(t *testing.T) {
	op := &operation.KDF_SSH_Op{
		Key:        []byte("shared-secret"),
		XCGHash:    []byte("exchange-hash"),
		SessionID:  []byte("session-id"),
		KeyType:    'A',
		DigestType: operation.SHA256,
		KeySize:    48,
	}
	res, err := dispatchSSHKDF(op)
	require.NoError(t, err)
	require.Len(t, keyBytes(t, res), 48)

	other := *op
	other.KeyType = 'B'
	res2, err := dispatchSSHKDF(&other)
	require.NoError(t, err)
	require.NotEqual(t, keyBytes(t, res), keyBytes(t, res2), "different keyType must derive different key material")
}

func TestDispatchTLS1PRF(t *testing.T) {
	op := &operation.KDF_TLS1_PRF_Op{
		Secret:     []byte("master-secret"),
		Seed:       []byte("client-server-random"),
		DigestType: operation.SHA256,
		KeySize:    64,
	}
	res, err := dispatchTLS1PRF(op)
	require.NoError(t, err)
	require.Len(t, keyBytes(t, res), 64)
}

func TestDispatchX963(t *testing.T) {
	op := &operation.KDF_X963_Op{
		Secret:     []byte("shared-secret"),
		Info:       []byte("shared-info"),
		DigestType: operation.SHA256,
		KeySize:    32,
	}
	res, err := dispatchX963(op)
	require.NoError(t, err)
	require.Len(t, keyBytes(t, res), 32)
}

func TestDispatchSP800108_CounterMode(t *testing.T) {
	op := &operation.KDF_SP_800_108_Op{
		Key:     []byte("key-derivation-key"),
		Label:   []byte("label"),
		Context: []byte("context"),
		Mech:    operation.SP800108Mech{Mode: true, Type: operation.SHA256},
		KeySize: 32,
	}
	res, err := dispatchSP800108(op)
	require.NoError(t, err)
	require.Len(t, keyBytes(t, res), 32)
}

func TestDispatchSP800108_FeedbackModeDeclines(t *testing.T) {
	op := &operation.KDF_SP_800_108_Op{
		Key:     []byte("key-derivation-key"),
		Mech:    operation.SP800108Mech{Mode: false, Type: operation.SHA256},
		KeySize: 32,
	}
	res, err := dispatchSP800108(op)
	require.NoError(t, err)
	require.Nil(t, res)
}
