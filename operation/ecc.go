// ecc.go: the ECC_* and ECDSA_* operation families plus ECDH_Derive.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package operation

import (
	"encoding/hex"
	"fmt"
)

type ECC_PrivateToPublicOp struct {
	Base
	Curve   CurveID
	PrivKey string // decimal
}

func NewECCPrivateToPublicOp(curve CurveID, privKey string, modifier []byte) *ECC_PrivateToPublicOp {
	return &ECC_PrivateToPublicOp{Base: NewBase(ECC_PrivateToPublic, modifier), Curve: curve, PrivKey: privKey}
}
func (o *ECC_PrivateToPublicOp) AlgorithmString() string { return string(o.Curve) }
func (o *ECC_PrivateToPublicOp) ToString() string {
	return fmt.Sprintf("ECC_PrivateToPublic(curve=%s, priv=%s, modifier=%s)", o.Curve, o.PrivKey, o.modifierHex())
}
func (o *ECC_PrivateToPublicOp) ToJSON() map[string]any {
	return map[string]any{"curve": string(o.Curve), "priv": o.PrivKey}
}
func (o *ECC_PrivateToPublicOp) Equal(other Operation) bool {
	oo, ok := other.(*ECC_PrivateToPublicOp)
	return ok && o.Curve == oo.Curve && o.PrivKey == oo.PrivKey && o.EqualModifier(oo.Base)
}

// ECC_ValidatePubkeyOp has no upstream size cap (§9 supplemented note):
// a verifier-shaped operation must stay robust against arbitrarily
// large attacker-supplied coordinates.
type ECC_ValidatePubkeyOp struct {
	Base
	Curve CurveID
	PubX  string
	PubY  string
}

func NewECCValidatePubkeyOp(curve CurveID, pubX, pubY string, modifier []byte) *ECC_ValidatePubkeyOp {
	return &ECC_ValidatePubkeyOp{Base: NewBase(ECC_ValidatePubkey, modifier), Curve: curve, PubX: pubX, PubY: pubY}
}
func (o *ECC_ValidatePubkeyOp) AlgorithmString() string { return string(o.Curve) }
func (o *ECC_ValidatePubkeyOp) ToString() string {
	return fmt.Sprintf("ECC_ValidatePubkey(curve=%s, x=%s, y=%s, modifier=%s)", o.Curve, o.PubX, o.PubY, o.modifierHex())
}
func (o *ECC_ValidatePubkeyOp) ToJSON() map[string]any {
	return map[string]any{"curve": string(o.Curve), "x": o.PubX, "y": o.PubY}
}
func (o *ECC_ValidatePubkeyOp) Equal(other Operation) bool {
	oo, ok := other.(*ECC_ValidatePubkeyOp)
	return ok && o.Curve == oo.Curve && o.PubX == oo.PubX && o.PubY == oo.PubY && o.EqualModifier(oo.Base)
}

type ECC_GenerateKeyPairOp struct {
	Base
	Curve CurveID
}

func NewECCGenerateKeyPairOp(curve CurveID, modifier []byte) *ECC_GenerateKeyPairOp {
	return &ECC_GenerateKeyPairOp{Base: NewBase(ECC_GenerateKeyPair, modifier), Curve: curve}
}
func (o *ECC_GenerateKeyPairOp) AlgorithmString() string { return string(o.Curve) }
func (o *ECC_GenerateKeyPairOp) ToString() string {
	return fmt.Sprintf("ECC_GenerateKeyPair(curve=%s, modifier=%s)", o.Curve, o.modifierHex())
}
func (o *ECC_GenerateKeyPairOp) ToJSON() map[string]any { return map[string]any{"curve": string(o.Curve)} }
func (o *ECC_GenerateKeyPairOp) Equal(other Operation) bool {
	oo, ok := other.(*ECC_GenerateKeyPairOp)
	return ok && o.Curve == oo.Curve && o.EqualModifier(oo.Base)
}

// ECDSA_SignOp signs Cleartext under Curve/PrivKey. UseRandomNonce
// reports whether the module is free to pick its own nonce (true) or
// must use a fixed/deterministic one (Nonce set) — signatures made
// with a random nonce are excluded from cross-module comparison
// (dontCompare, §8 P4) because two correct modules will disagree.
type ECDSA_SignOp struct {
	Base
	Curve     CurveID
	PrivKey   string
	Cleartext []byte
	Nonce     string
	HasNonce  bool
}

func NewECDSASignOp(curve CurveID, privKey string, cleartext []byte, nonce string, hasNonce bool, modifier []byte) *ECDSA_SignOp {
	return &ECDSA_SignOp{Base: NewBase(ECDSA_Sign, modifier), Curve: curve, PrivKey: privKey, Cleartext: cleartext, Nonce: nonce, HasNonce: hasNonce}
}
func (o *ECDSA_SignOp) AlgorithmString() string     { return string(o.Curve) }
func (o *ECDSA_SignOp) UseRandomNonce() bool        { return !o.HasNonce }
func (o *ECDSA_SignOp) ToString() string {
	nonce := "nullopt"
	if o.HasNonce {
		nonce = o.Nonce
	}
	return fmt.Sprintf("ECDSA_Sign(curve=%s, priv=%s, cleartext=%s, nonce=%s, modifier=%s)",
		o.Curve, o.PrivKey, hex.EncodeToString(o.Cleartext), nonce, o.modifierHex())
}
func (o *ECDSA_SignOp) ToJSON() map[string]any {
	m := map[string]any{"curve": string(o.Curve), "priv": o.PrivKey, "cleartext": hex.EncodeToString(o.Cleartext)}
	if o.HasNonce {
		m["nonce"] = o.Nonce
	}
	return m
}
func (o *ECDSA_SignOp) Equal(other Operation) bool {
	oo, ok := other.(*ECDSA_SignOp)
	return ok && o.Curve == oo.Curve && o.PrivKey == oo.PrivKey && string(o.Cleartext) == string(oo.Cleartext) &&
		o.EqualModifier(oo.Base)
}

// ECDSA_VerifyOp deliberately carries no size cap on its public key
// coordinates or signature (§4 design note): a verifier must reject
// oversized attacker input cleanly rather than being shielded from it
// by the fuzzer, unlike every key-generating family.
type ECDSA_VerifyOp struct {
	Base
	Curve     CurveID
	PubX, PubY string
	Cleartext []byte
	SigR, SigS string
}

func NewECDSAVerifyOp(curve CurveID, pubX, pubY string, cleartext []byte, sigR, sigS string, modifier []byte) *ECDSA_VerifyOp {
	return &ECDSA_VerifyOp{Base: NewBase(ECDSA_Verify, modifier), Curve: curve, PubX: pubX, PubY: pubY, Cleartext: cleartext, SigR: sigR, SigS: sigS}
}
func (o *ECDSA_VerifyOp) AlgorithmString() string { return string(o.Curve) }
func (o *ECDSA_VerifyOp) ToString() string {
	return fmt.Sprintf("ECDSA_Verify(curve=%s, x=%s, y=%s, cleartext=%s, r=%s, s=%s, modifier=%s)",
		o.Curve, o.PubX, o.PubY, hex.EncodeToString(o.Cleartext), o.SigR, o.SigS, o.modifierHex())
}
func (o *ECDSA_VerifyOp) ToJSON() map[string]any {
	return map[string]any{"curve": string(o.Curve), "x": o.PubX, "y": o.PubY, "cleartext": hex.EncodeToString(o.Cleartext), "r": o.SigR, "s": o.SigS}
}
func (o *ECDSA_VerifyOp) Equal(other Operation) bool {
	oo, ok := other.(*ECDSA_VerifyOp)
	return ok && o.Curve == oo.Curve && o.PubX == oo.PubX && o.PubY == oo.PubY &&
		string(o.Cleartext) == string(oo.Cleartext) && o.SigR == oo.SigR && o.SigS == oo.SigS && o.EqualModifier(oo.Base)
}

// ECDH_DeriveOp is handled specially by the executor's getOpPostprocess
// (§4.6): when the Datasource says so, it is replaced by an ECDH_DeriveOp
// built from two fresh ECC_PrivateToPublic calls whose curve and private
// keys are drawn off the Datasource, not taken from Priv1/Priv2.
type ECDH_DeriveOp struct {
	Base
	Curve      CurveID
	Priv1      string
	Pub1X, Pub1Y string
	Priv2      string
	Pub2X, Pub2Y string
}

func NewECDHDeriveOp(curve CurveID, priv1, pub1X, pub1Y, priv2, pub2X, pub2Y string, modifier []byte) *ECDH_DeriveOp {
	return &ECDH_DeriveOp{Base: NewBase(ECDH_Derive, modifier), Curve: curve, Priv1: priv1, Pub1X: pub1X, Pub1Y: pub1Y, Priv2: priv2, Pub2X: pub2X, Pub2Y: pub2Y}
}
func (o *ECDH_DeriveOp) AlgorithmString() string { return string(o.Curve) }
func (o *ECDH_DeriveOp) ToString() string {
	return fmt.Sprintf("ECDH_Derive(curve=%s, priv1=%s, pub1=(%s,%s), priv2=%s, pub2=(%s,%s), modifier=%s)",
		o.Curve, o.Priv1, o.Pub1X, o.Pub1Y, o.Priv2, o.Pub2X, o.Pub2Y, o.modifierHex())
}
func (o *ECDH_DeriveOp) ToJSON() map[string]any {
	return map[string]any{
		"curve": string(o.Curve), "priv1": o.Priv1, "pub1x": o.Pub1X, "pub1y": o.Pub1Y,
		"priv2": o.Priv2, "pub2x": o.Pub2X, "pub2y": o.Pub2Y,
	}
}
func (o *ECDH_DeriveOp) Equal(other Operation) bool {
	oo, ok := other.(*ECDH_DeriveOp)
	return ok && o.Curve == oo.Curve && o.Priv1 == oo.Priv1 && o.Pub1X == oo.Pub1X && o.Pub1Y == oo.Pub1Y &&
		o.Priv2 == oo.Priv2 && o.Pub2X == oo.Pub2X && o.Pub2Y == oo.Pub2Y && o.EqualModifier(oo.Base)
}
