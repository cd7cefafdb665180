// digest.go: Digest, HMAC and CMAC operations.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package operation

import (
	"encoding/hex"
	"fmt"
)

// DigestOp hashes Cleartext with DigestType.
type DigestOp struct {
	Base
	Cleartext  []byte
	DigestType DigestID
}

func NewDigestOp(cleartext []byte, digestType DigestID, modifier []byte) *DigestOp {
	return &DigestOp{Base: NewBase(Digest, modifier), Cleartext: cleartext, DigestType: digestType}
}

func (o *DigestOp) AlgorithmString() string { return string(o.DigestType) }
func (o *DigestOp) ToString() string {
	return fmt.Sprintf("Digest(cleartext=%s, digestType=%s, modifier=%s)",
		hex.EncodeToString(o.Cleartext), o.DigestType, o.modifierHex())
}
func (o *DigestOp) ToJSON() map[string]any {
	return map[string]any{"cleartext": hex.EncodeToString(o.Cleartext), "digestType": string(o.DigestType)}
}
func (o *DigestOp) Equal(other Operation) bool {
	oo, ok := other.(*DigestOp)
	if !ok {
		return false
	}
	return string(o.Cleartext) == string(oo.Cleartext) && o.DigestType == oo.DigestType && o.EqualModifier(oo.Base)
}

// HMACOp computes HMAC(Key, Cleartext) using DigestType as the
// underlying hash, unless CipherType names a DES_EDE3_WRAP-style
// randomized construction (see dontCompare in executor).
type HMACOp struct {
	Base
	Cleartext  []byte
	Key        []byte
	DigestType DigestID
	CipherType CipherID
}

func NewHMACOp(cleartext, key []byte, digestType DigestID, cipherType CipherID, modifier []byte) *HMACOp {
	return &HMACOp{Base: NewBase(HMAC, modifier), Cleartext: cleartext, Key: key, DigestType: digestType, CipherType: cipherType}
}

func (o *HMACOp) AlgorithmString() string { return string(o.DigestType) }
func (o *HMACOp) ToString() string {
	return fmt.Sprintf("HMAC(cleartext=%s, key=%s, digestType=%s, modifier=%s)",
		hex.EncodeToString(o.Cleartext), hex.EncodeToString(o.Key), o.DigestType, o.modifierHex())
}
func (o *HMACOp) ToJSON() map[string]any {
	return map[string]any{
		"cleartext":  hex.EncodeToString(o.Cleartext),
		"key":        hex.EncodeToString(o.Key),
		"digestType": string(o.DigestType),
	}
}
func (o *HMACOp) Equal(other Operation) bool {
	oo, ok := other.(*HMACOp)
	if !ok {
		return false
	}
	return string(o.Cleartext) == string(oo.Cleartext) && string(o.Key) == string(oo.Key) &&
		o.DigestType == oo.DigestType && o.EqualModifier(oo.Base)
}

// CMACOp computes CMAC(Key, Cleartext) under CipherType (the block
// cipher the CMAC construction wraps).
type CMACOp struct {
	Base
	Cleartext  []byte
	Key        []byte
	CipherType CipherID
}

func NewCMACOp(cleartext, key []byte, cipherType CipherID, modifier []byte) *CMACOp {
	return &CMACOp{Base: NewBase(CMAC, modifier), Cleartext: cleartext, Key: key, CipherType: cipherType}
}

func (o *CMACOp) AlgorithmString() string { return string(o.CipherType) }
func (o *CMACOp) ToString() string {
	return fmt.Sprintf("CMAC(cleartext=%s, key=%s, cipherType=%s, modifier=%s)",
		hex.EncodeToString(o.Cleartext), hex.EncodeToString(o.Key), o.CipherType, o.modifierHex())
}
func (o *CMACOp) ToJSON() map[string]any {
	return map[string]any{
		"cleartext":  hex.EncodeToString(o.Cleartext),
		"key":        hex.EncodeToString(o.Key),
		"cipherType": string(o.CipherType),
	}
}
func (o *CMACOp) Equal(other Operation) bool {
	oo, ok := other.(*CMACOp)
	if !ok {
		return false
	}
	return string(o.Cleartext) == string(oo.Cleartext) && string(o.Key) == string(oo.Key) &&
		o.CipherType == oo.CipherType && o.EqualModifier(oo.Base)
}
