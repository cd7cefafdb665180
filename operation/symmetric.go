// symmetric.go: SymmetricEncrypt and SymmetricDecrypt operations.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package operation

import (
	"encoding/hex"
	"fmt"
)

// Cipher carries the cipher identity plus the symmetric key and IV —
// every symmetric operation embeds one.
type Cipher struct {
	CipherType CipherID
	Key        []byte
	IV         []byte
}

// SymmetricEncryptOp encrypts Cleartext under Cipher, with optional
// AAD and an optional explicit tag size (nil means "let the backend
// choose", which matters for the self-decrypt check in §4.4).
type SymmetricEncryptOp struct {
	Base
	Cipher    Cipher
	Cleartext []byte
	AAD       []byte
	HasAAD    bool
	TagSize   *int
}

func NewSymmetricEncryptOp(cipher Cipher, cleartext, aad []byte, hasAAD bool, tagSize *int, modifier []byte) *SymmetricEncryptOp {
	return &SymmetricEncryptOp{Base: NewBase(SymmetricEncrypt, modifier), Cipher: cipher, Cleartext: cleartext, AAD: aad, HasAAD: hasAAD, TagSize: tagSize}
}

func (o *SymmetricEncryptOp) AlgorithmString() string { return string(o.Cipher.CipherType) }
func (o *SymmetricEncryptOp) ToString() string {
	tag := "nullopt"
	if o.TagSize != nil {
		tag = fmt.Sprintf("%d", *o.TagSize)
	}
	return fmt.Sprintf("SymmetricEncrypt(cipher=%s, key=%s, iv=%s, cleartext=%s, aad=%s, tagSize=%s, modifier=%s)",
		o.Cipher.CipherType, hex.EncodeToString(o.Cipher.Key), hex.EncodeToString(o.Cipher.IV),
		hex.EncodeToString(o.Cleartext), hex.EncodeToString(o.AAD), tag, o.modifierHex())
}
func (o *SymmetricEncryptOp) ToJSON() map[string]any {
	m := map[string]any{
		"cipherType": string(o.Cipher.CipherType),
		"key":        hex.EncodeToString(o.Cipher.Key),
		"iv":         hex.EncodeToString(o.Cipher.IV),
		"cleartext":  hex.EncodeToString(o.Cleartext),
	}
	if o.HasAAD {
		m["aad"] = hex.EncodeToString(o.AAD)
	}
	if o.TagSize != nil {
		m["tagSize"] = *o.TagSize
	}
	return m
}
func (o *SymmetricEncryptOp) Equal(other Operation) bool {
	oo, ok := other.(*SymmetricEncryptOp)
	if !ok {
		return false
	}
	return o.Cipher.CipherType == oo.Cipher.CipherType &&
		string(o.Cipher.Key) == string(oo.Cipher.Key) &&
		string(o.Cipher.IV) == string(oo.Cipher.IV) &&
		string(o.Cleartext) == string(oo.Cleartext) &&
		string(o.AAD) == string(oo.AAD) &&
		o.EqualModifier(oo.Base)
}

// SymmetricDecryptOp decrypts Ciphertext (+Tag) under Cipher. It is
// constructed either directly by the fuzzer or by the self-decrypt
// check in §4.4, which builds one from a prior SymmetricEncryptOp.
type SymmetricDecryptOp struct {
	Base
	Cipher         Cipher
	Ciphertext     []byte
	Tag            []byte
	HasTag         bool
	AAD            []byte
	HasAAD         bool
	OutputBufSize  int
}

func NewSymmetricDecryptOp(cipher Cipher, ciphertext, tag []byte, hasTag bool, aad []byte, hasAAD bool, outputBufSize int, modifier []byte) *SymmetricDecryptOp {
	return &SymmetricDecryptOp{
		Base: NewBase(SymmetricDecrypt, modifier), Cipher: cipher, Ciphertext: ciphertext,
		Tag: tag, HasTag: hasTag, AAD: aad, HasAAD: hasAAD, OutputBufSize: outputBufSize,
	}
}

// FromEncrypt constructs the SymmetricDecrypt operation the §4.4
// self-decrypt check dispatches: same module, same cipher/key/IV/AAD,
// the ciphertext and tag just produced, an output buffer sized
// cleartext+32, and an empty modifier.
func FromEncrypt(enc *SymmetricEncryptOp, ciphertext, tag []byte, hasTag bool) *SymmetricDecryptOp {
	return NewSymmetricDecryptOp(enc.Cipher, ciphertext, tag, hasTag, enc.AAD, enc.HasAAD, len(enc.Cleartext)+32, nil)
}

func (o *SymmetricDecryptOp) AlgorithmString() string { return string(o.Cipher.CipherType) }
func (o *SymmetricDecryptOp) ToString() string {
	tag := "nullopt"
	if o.HasTag {
		tag = hex.EncodeToString(o.Tag)
	}
	return fmt.Sprintf("SymmetricDecrypt(cipher=%s, key=%s, iv=%s, ciphertext=%s, tag=%s, aad=%s, modifier=%s)",
		o.Cipher.CipherType, hex.EncodeToString(o.Cipher.Key), hex.EncodeToString(o.Cipher.IV),
		hex.EncodeToString(o.Ciphertext), tag, hex.EncodeToString(o.AAD), o.modifierHex())
}
func (o *SymmetricDecryptOp) ToJSON() map[string]any {
	m := map[string]any{
		"cipherType": string(o.Cipher.CipherType),
		"key":        hex.EncodeToString(o.Cipher.Key),
		"iv":         hex.EncodeToString(o.Cipher.IV),
		"ciphertext": hex.EncodeToString(o.Ciphertext),
	}
	if o.HasTag {
		m["tag"] = hex.EncodeToString(o.Tag)
	}
	return m
}
func (o *SymmetricDecryptOp) Equal(other Operation) bool {
	oo, ok := other.(*SymmetricDecryptOp)
	if !ok {
		return false
	}
	return o.Cipher.CipherType == oo.Cipher.CipherType &&
		string(o.Cipher.Key) == string(oo.Cipher.Key) &&
		string(o.Ciphertext) == string(oo.Ciphertext) &&
		o.EqualModifier(oo.Base)
}
