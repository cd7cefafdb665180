// kdf.go: the KDF families backed by golang.org/x/crypto, the same
// dependency the teacher's own kdf.go carries (Argon2id there; this
// module rounds out scrypt, HKDF, PBKDF2 and bcrypt alongside it).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package refcrypto

import (
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

func dispatchScrypt(o *operation.KDF_SCRYPT_Op) (component.Result, error) {
	n := nextPowerOfTwo(o.N)
	if n < 2 {
		n = 2
	}
	key, err := scrypt.Key(o.Password, o.Salt, n, clampRP(o.R), clampRP(o.P), clampKeySize(o.KeySize))
	if err != nil {
		return nil, nil
	}
	return component.Key{Buffer: component.Buffer{Data: key}}, nil
}

func dispatchHKDF(o *operation.KDF_HKDF_Op) (component.Result, error) {
	newH := newHasher(o.DigestType)
	if newH == nil {
		return nil, nil
	}
	r := hkdf.New(newH, o.Password, o.Salt, o.Info)
	key := make([]byte, clampKeySize(o.KeySize))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, nil
	}
	return component.Key{Buffer: component.Buffer{Data: key}}, nil
}

func dispatchPBKDF2(o *operation.KDF_PBKDF2_Op) (component.Result, error) {
	newH := newHasher(o.DigestType)
	if newH == nil {
		return nil, nil
	}
	iterations := o.Iterations
	if iterations <= 0 {
		iterations = 1
	}
	key := pbkdf2.Key(o.Password, o.Salt, iterations, clampKeySize(o.KeySize), newH)
	return component.Key{Buffer: component.Buffer{Data: key}}, nil
}

func dispatchArgon2(o *operation.KDF_ARGON2_Op) (component.Result, error) {
	keySize := uint32(clampKeySize(o.KeySize))
	threads := o.Threads
	if threads == 0 {
		threads = 1
	}
	memory := o.Memory
	if memory == 0 {
		memory = 64 * 1024
	}
	iterations := o.Iterations
	if iterations == 0 {
		iterations = 1
	}
	switch o.Type {
	case "argon2i":
		key := argon2.Key(o.Password, o.Salt, iterations, memory, threads, keySize)
		return component.Key{Buffer: component.Buffer{Data: key}}, nil
	case "argon2id":
		key := argon2.IDKey(o.Password, o.Salt, iterations, memory, threads, keySize)
		return component.Key{Buffer: component.Buffer{Data: key}}, nil
	default:
		// argon2d has no exposed constructor in x/crypto/argon2; decline
		// rather than approximate it with argon2i.
		return nil, nil
	}
}

func dispatchBcrypt(o *operation.KDF_BCRYPT_Op) (component.Result, error) {
	cost := o.Cost
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > 16 {
		cost = 16
	}
	hashed, err := bcrypt.GenerateFromPassword(truncateBcryptSecret(o.Secret), cost)
	if err != nil {
		return nil, nil
	}
	return component.Key{Buffer: component.Buffer{Data: hashed}}, nil
}

// truncateBcryptSecret enforces bcrypt's 72-byte password ceiling so a
// long fuzzer-drawn secret does not make GenerateFromPassword error out
// on every call.
func truncateBcryptSecret(secret []byte) []byte {
	if len(secret) <= 72 {
		return secret
	}
	return secret[:72]
}

func clampKeySize(n int) int {
	if n <= 0 {
		return 16
	}
	if n > 256 {
		return 256
	}
	return n
}

func clampRP(n int) int {
	if n <= 0 {
		return 1
	}
	if n > 16 {
		return 16
	}
	return n
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 2
	}
	p := 1
	for p < n && p < (1<<20) {
		p <<= 1
	}
	return p
}
