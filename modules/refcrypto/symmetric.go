// symmetric.go: SymmetricEncrypt/Decrypt for the AES-GCM family (stdlib
// crypto/cipher) and ChaCha20-Poly1305 (golang.org/x/crypto), the two
// AEAD constructions this module has a library for. Every other
// CipherID is declined so the fuzzer keeps drawing rather than
// forcing a half-correct implementation.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package refcrypto

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func newAEAD(c operation.Cipher) (cipher.AEAD, error) {
	switch c.CipherType {
	case operation.AES_128_GCM, operation.AES_256_GCM:
		block, err := aes.NewCipher(c.Key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	case operation.CHACHA20_POLY1305:
		return chacha20poly1305.New(c.Key)
	default:
		return nil, nil
	}
}

func dispatchEncrypt(o *operation.SymmetricEncryptOp) (component.Result, error) {
	aead, err := newAEAD(o.Cipher)
	if err != nil || aead == nil {
		return nil, nil
	}
	nonce := fitNonce(o.Cipher.IV, aead.NonceSize())
	sealed := aead.Seal(nil, nonce, o.Cleartext, o.AAD)
	tagSize := aead.Overhead()
	ctLen := len(sealed) - tagSize
	if ctLen < 0 {
		return nil, nil
	}
	return component.Ciphertext{
		CiphertextBytes: sealed[:ctLen],
		Tag:             sealed[ctLen:],
		HasTag:          true,
	}, nil
}

func dispatchDecrypt(o *operation.SymmetricDecryptOp) (component.Result, error) {
	aead, err := newAEAD(o.Cipher)
	if err != nil || aead == nil {
		return nil, nil
	}
	if !o.HasTag {
		return nil, nil
	}
	nonce := fitNonce(o.Cipher.IV, aead.NonceSize())
	sealed := append(append([]byte{}, o.Ciphertext...), o.Tag...)
	cleartext, err := aead.Open(nil, nonce, sealed, o.AAD)
	if err != nil {
		return nil, nil
	}
	return component.Cleartext{Buffer: component.Buffer{Data: cleartext}}, nil
}

// fitNonce pads or truncates iv to exactly size bytes, zero-extending a
// short nonce rather than rejecting it outright — the fuzzer routinely
// draws undersized IVs and a real backend would normally reject those
// at a higher layer than this reference implementation cares to model.
func fitNonce(iv []byte, size int) []byte {
	if len(iv) == size {
		return iv
	}
	out := make([]byte, size)
	copy(out, iv)
	return out
}
