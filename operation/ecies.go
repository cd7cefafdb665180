// ecies.go: ECIES_Encrypt and ECIES_Decrypt.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package operation

import (
	"encoding/hex"
	"fmt"
)

type ECIES_EncryptOp struct {
	Base
	Curve      CurveID
	Cleartext  []byte
	PrivKey    string
	HasPrivKey bool
	PubX, PubY string
	HasPubKey  bool
}

func NewECIESEncryptOp(curve CurveID, cleartext []byte, privKey string, hasPrivKey bool, pubX, pubY string, hasPubKey bool, modifier []byte) *ECIES_EncryptOp {
	return &ECIES_EncryptOp{Base: NewBase(ECIES_Encrypt, modifier), Curve: curve, Cleartext: cleartext, PrivKey: privKey, HasPrivKey: hasPrivKey, PubX: pubX, PubY: pubY, HasPubKey: hasPubKey}
}
func (o *ECIES_EncryptOp) AlgorithmString() string { return string(o.Curve) }
func (o *ECIES_EncryptOp) ToString() string {
	return fmt.Sprintf("ECIES_Encrypt(curve=%s, cleartext=%s, priv=%s, pub=(%s,%s), modifier=%s)",
		o.Curve, hex.EncodeToString(o.Cleartext), o.PrivKey, o.PubX, o.PubY, o.modifierHex())
}
func (o *ECIES_EncryptOp) ToJSON() map[string]any {
	m := map[string]any{"curve": string(o.Curve), "cleartext": hex.EncodeToString(o.Cleartext)}
	if o.HasPrivKey {
		m["priv"] = o.PrivKey
	}
	if o.HasPubKey {
		m["x"], m["y"] = o.PubX, o.PubY
	}
	return m
}
func (o *ECIES_EncryptOp) Equal(other Operation) bool {
	oo, ok := other.(*ECIES_EncryptOp)
	return ok && o.Curve == oo.Curve && string(o.Cleartext) == string(oo.Cleartext) && o.EqualModifier(oo.Base)
}

type ECIES_DecryptOp struct {
	Base
	Curve      CurveID
	Ciphertext []byte
	PrivKey    string
	PubX, PubY string
	HasPubKey  bool
}

func NewECIESDecryptOp(curve CurveID, ciphertext []byte, privKey string, pubX, pubY string, hasPubKey bool, modifier []byte) *ECIES_DecryptOp {
	return &ECIES_DecryptOp{Base: NewBase(ECIES_Decrypt, modifier), Curve: curve, Ciphertext: ciphertext, PrivKey: privKey, PubX: pubX, PubY: pubY, HasPubKey: hasPubKey}
}
func (o *ECIES_DecryptOp) AlgorithmString() string { return string(o.Curve) }
func (o *ECIES_DecryptOp) ToString() string {
	return fmt.Sprintf("ECIES_Decrypt(curve=%s, ciphertext=%s, priv=%s, modifier=%s)",
		o.Curve, hex.EncodeToString(o.Ciphertext), o.PrivKey, o.modifierHex())
}
func (o *ECIES_DecryptOp) ToJSON() map[string]any {
	m := map[string]any{"curve": string(o.Curve), "ciphertext": hex.EncodeToString(o.Ciphertext), "priv": o.PrivKey}
	if o.HasPubKey {
		m["x"], m["y"] = o.PubX, o.PubY
	}
	return m
}
func (o *ECIES_DecryptOp) Equal(other Operation) bool {
	oo, ok := other.(*ECIES_DecryptOp)
	return ok && o.Curve == oo.Curve && string(o.Ciphertext) == string(oo.Ciphertext) && o.PrivKey == oo.PrivKey && o.EqualModifier(oo.Base)
}
