// bls.go: the thirteen BLS_* operation families over the BLS12-381
// pairing-friendly curve.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package operation

import (
	"encoding/hex"
	"fmt"

	"github.com/cryptofuzz-go/cryptodiff/component"
)

type BLS_PrivateToPublicOp struct {
	Base
	PrivKey string
}

func NewBLSPrivateToPublicOp(privKey string, modifier []byte) *BLS_PrivateToPublicOp {
	return &BLS_PrivateToPublicOp{Base: NewBase(BLS_PrivateToPublic, modifier), PrivKey: privKey}
}
func (o *BLS_PrivateToPublicOp) AlgorithmString() string { return "BLS12_381" }
func (o *BLS_PrivateToPublicOp) ToString() string {
	return fmt.Sprintf("BLS_PrivateToPublic(priv=%s, modifier=%s)", o.PrivKey, o.modifierHex())
}
func (o *BLS_PrivateToPublicOp) ToJSON() map[string]any { return map[string]any{"priv": o.PrivKey} }
func (o *BLS_PrivateToPublicOp) Equal(other Operation) bool {
	oo, ok := other.(*BLS_PrivateToPublicOp)
	return ok && o.PrivKey == oo.PrivKey && o.EqualModifier(oo.Base)
}

// BLS_SignOp signs either a raw cleartext or a pre-hashed G2 point
// (HashOrPoint selects which), optionally with a domain separation tag
// (Dest) and an augmentation string (Aug) per the IETF BLS signature
// draft's three signing variants.
type BLS_SignOp struct {
	Base
	PrivKey     string
	Cleartext   []byte
	HashOrPoint bool
	Point       component.G2
	Dest        []byte
	HasDest     bool
	Aug         []byte
	HasAug      bool
}

func NewBLSSignOp(privKey string, cleartext []byte, hashOrPoint bool, point component.G2, dest []byte, hasDest bool, aug []byte, hasAug bool, modifier []byte) *BLS_SignOp {
	return &BLS_SignOp{
		Base: NewBase(BLS_Sign, modifier), PrivKey: privKey, Cleartext: cleartext, HashOrPoint: hashOrPoint,
		Point: point, Dest: dest, HasDest: hasDest, Aug: aug, HasAug: hasAug,
	}
}
func (o *BLS_SignOp) AlgorithmString() string { return "BLS12_381" }
func (o *BLS_SignOp) ToString() string {
	return fmt.Sprintf("BLS_Sign(priv=%s, cleartext=%s, hashOrPoint=%v, dest=%s, aug=%s, modifier=%s)",
		o.PrivKey, hex.EncodeToString(o.Cleartext), o.HashOrPoint, hex.EncodeToString(o.Dest), hex.EncodeToString(o.Aug), o.modifierHex())
}
func (o *BLS_SignOp) ToJSON() map[string]any {
	m := map[string]any{"priv": o.PrivKey, "cleartext": hex.EncodeToString(o.Cleartext), "hashOrPoint": o.HashOrPoint}
	if o.HasDest {
		m["dest"] = hex.EncodeToString(o.Dest)
	}
	if o.HasAug {
		m["aug"] = hex.EncodeToString(o.Aug)
	}
	return m
}
func (o *BLS_SignOp) Equal(other Operation) bool {
	oo, ok := other.(*BLS_SignOp)
	return ok && o.PrivKey == oo.PrivKey && string(o.Cleartext) == string(oo.Cleartext) &&
		o.HashOrPoint == oo.HashOrPoint && o.EqualModifier(oo.Base)
}

type BLS_VerifyOp struct {
	Base
	PubX, PubY string
	Cleartext  []byte
	SigV, SigW, SigX, SigY string
}

func NewBLSVerifyOp(pubX, pubY string, cleartext []byte, sigV, sigW, sigX, sigY string, modifier []byte) *BLS_VerifyOp {
	return &BLS_VerifyOp{Base: NewBase(BLS_Verify, modifier), PubX: pubX, PubY: pubY, Cleartext: cleartext, SigV: sigV, SigW: sigW, SigX: sigX, SigY: sigY}
}
func (o *BLS_VerifyOp) AlgorithmString() string { return "BLS12_381" }
func (o *BLS_VerifyOp) ToString() string {
	return fmt.Sprintf("BLS_Verify(pub=(%s,%s), cleartext=%s, sig=(%s,%s,%s,%s), modifier=%s)",
		o.PubX, o.PubY, hex.EncodeToString(o.Cleartext), o.SigV, o.SigW, o.SigX, o.SigY, o.modifierHex())
}
func (o *BLS_VerifyOp) ToJSON() map[string]any {
	return map[string]any{"x": o.PubX, "y": o.PubY, "cleartext": hex.EncodeToString(o.Cleartext),
		"sigV": o.SigV, "sigW": o.SigW, "sigX": o.SigX, "sigY": o.SigY}
}
func (o *BLS_VerifyOp) Equal(other Operation) bool {
	oo, ok := other.(*BLS_VerifyOp)
	return ok && o.PubX == oo.PubX && o.PubY == oo.PubY && string(o.Cleartext) == string(oo.Cleartext) && o.EqualModifier(oo.Base)
}

type BLS_PairingOp struct {
	Base
	G1 component.G1
	G2 component.G2
}

func NewBLSPairingOp(g1 component.G1, g2 component.G2, modifier []byte) *BLS_PairingOp {
	return &BLS_PairingOp{Base: NewBase(BLS_Pairing, modifier), G1: g1, G2: g2}
}
func (o *BLS_PairingOp) AlgorithmString() string { return "BLS12_381" }
func (o *BLS_PairingOp) ToString() string {
	return fmt.Sprintf("BLS_Pairing(g1=(%s,%s), g2=(%s,%s,%s,%s), modifier=%s)",
		o.G1.X.Decimal(), o.G1.Y.Decimal(), o.G2.V.Decimal(), o.G2.W.Decimal(), o.G2.X.Decimal(), o.G2.Y.Decimal(), o.modifierHex())
}
func (o *BLS_PairingOp) ToJSON() map[string]any { return map[string]any{"g1": o.G1.ToJSON(), "g2": o.G2.ToJSON()} }
func (o *BLS_PairingOp) Equal(other Operation) bool {
	oo, ok := other.(*BLS_PairingOp)
	return ok && o.G1.Equal(oo.G1) && o.G2.Equal(oo.G2) && o.EqualModifier(oo.Base)
}

type BLS_HashToG1Op struct {
	Base
	Cleartext []byte
	Dest      []byte
	HasDest   bool
	Aug       []byte
	HasAug    bool
}

func NewBLSHashToG1Op(cleartext, dest []byte, hasDest bool, aug []byte, hasAug bool, modifier []byte) *BLS_HashToG1Op {
	return &BLS_HashToG1Op{Base: NewBase(BLS_HashToG1, modifier), Cleartext: cleartext, Dest: dest, HasDest: hasDest, Aug: aug, HasAug: hasAug}
}
func (o *BLS_HashToG1Op) AlgorithmString() string { return "BLS12_381" }
func (o *BLS_HashToG1Op) ToString() string {
	return fmt.Sprintf("BLS_HashToG1(cleartext=%s, dest=%s, aug=%s, modifier=%s)",
		hex.EncodeToString(o.Cleartext), hex.EncodeToString(o.Dest), hex.EncodeToString(o.Aug), o.modifierHex())
}
func (o *BLS_HashToG1Op) ToJSON() map[string]any {
	return map[string]any{"cleartext": hex.EncodeToString(o.Cleartext)}
}
func (o *BLS_HashToG1Op) Equal(other Operation) bool {
	oo, ok := other.(*BLS_HashToG1Op)
	return ok && string(o.Cleartext) == string(oo.Cleartext) && o.EqualModifier(oo.Base)
}

type BLS_HashToG2Op struct {
	Base
	Cleartext []byte
	Dest      []byte
	HasDest   bool
	Aug       []byte
	HasAug    bool
}

func NewBLSHashToG2Op(cleartext, dest []byte, hasDest bool, aug []byte, hasAug bool, modifier []byte) *BLS_HashToG2Op {
	return &BLS_HashToG2Op{Base: NewBase(BLS_HashToG2, modifier), Cleartext: cleartext, Dest: dest, HasDest: hasDest, Aug: aug, HasAug: hasAug}
}
func (o *BLS_HashToG2Op) AlgorithmString() string { return "BLS12_381" }
func (o *BLS_HashToG2Op) ToString() string {
	return fmt.Sprintf("BLS_HashToG2(cleartext=%s, dest=%s, aug=%s, modifier=%s)",
		hex.EncodeToString(o.Cleartext), hex.EncodeToString(o.Dest), hex.EncodeToString(o.Aug), o.modifierHex())
}
func (o *BLS_HashToG2Op) ToJSON() map[string]any {
	return map[string]any{"cleartext": hex.EncodeToString(o.Cleartext)}
}
func (o *BLS_HashToG2Op) Equal(other Operation) bool {
	oo, ok := other.(*BLS_HashToG2Op)
	return ok && string(o.Cleartext) == string(oo.Cleartext) && o.EqualModifier(oo.Base)
}

// BLS_IsG1OnCurveOp has no postprocess check of its own (§9 supplemented
// note) — it reports a boolean and there is nothing further to derive
// from the answer, unlike key-producing families.
type BLS_IsG1OnCurveOp struct {
	Base
	G1 component.G1
}

func NewBLSIsG1OnCurveOp(g1 component.G1, modifier []byte) *BLS_IsG1OnCurveOp {
	return &BLS_IsG1OnCurveOp{Base: NewBase(BLS_IsG1OnCurve, modifier), G1: g1}
}
func (o *BLS_IsG1OnCurveOp) AlgorithmString() string { return "BLS12_381" }
func (o *BLS_IsG1OnCurveOp) ToString() string {
	return fmt.Sprintf("BLS_IsG1OnCurve(x=%s, y=%s, modifier=%s)", o.G1.X.Decimal(), o.G1.Y.Decimal(), o.modifierHex())
}
func (o *BLS_IsG1OnCurveOp) ToJSON() map[string]any {
	return map[string]any{"x": o.G1.X.Decimal(), "y": o.G1.Y.Decimal()}
}
func (o *BLS_IsG1OnCurveOp) Equal(other Operation) bool {
	oo, ok := other.(*BLS_IsG1OnCurveOp)
	return ok && o.G1.Equal(oo.G1) && o.EqualModifier(oo.Base)
}

type BLS_IsG2OnCurveOp struct {
	Base
	G2 component.G2
}

func NewBLSIsG2OnCurveOp(g2 component.G2, modifier []byte) *BLS_IsG2OnCurveOp {
	return &BLS_IsG2OnCurveOp{Base: NewBase(BLS_IsG2OnCurve, modifier), G2: g2}
}
func (o *BLS_IsG2OnCurveOp) AlgorithmString() string { return "BLS12_381" }
func (o *BLS_IsG2OnCurveOp) ToString() string {
	return fmt.Sprintf("BLS_IsG2OnCurve(v=%s, w=%s, x=%s, y=%s, modifier=%s)",
		o.G2.V.Decimal(), o.G2.W.Decimal(), o.G2.X.Decimal(), o.G2.Y.Decimal(), o.modifierHex())
}
func (o *BLS_IsG2OnCurveOp) ToJSON() map[string]any {
	return map[string]any{"v": o.G2.V.Decimal(), "w": o.G2.W.Decimal(), "x": o.G2.X.Decimal(), "y": o.G2.Y.Decimal()}
}
func (o *BLS_IsG2OnCurveOp) Equal(other Operation) bool {
	oo, ok := other.(*BLS_IsG2OnCurveOp)
	return ok && o.G2.Equal(oo.G2) && o.EqualModifier(oo.Base)
}

type BLS_GenerateKeyPairOp struct {
	Base
}

func NewBLSGenerateKeyPairOp(modifier []byte) *BLS_GenerateKeyPairOp {
	return &BLS_GenerateKeyPairOp{Base: NewBase(BLS_GenerateKeyPair, modifier)}
}
func (o *BLS_GenerateKeyPairOp) AlgorithmString() string { return "BLS12_381" }
func (o *BLS_GenerateKeyPairOp) ToString() string {
	return fmt.Sprintf("BLS_GenerateKeyPair(modifier=%s)", o.modifierHex())
}
func (o *BLS_GenerateKeyPairOp) ToJSON() map[string]any { return map[string]any{} }
func (o *BLS_GenerateKeyPairOp) Equal(other Operation) bool {
	oo, ok := other.(*BLS_GenerateKeyPairOp)
	return ok && o.EqualModifier(oo.Base)
}

type BLS_Decompress_G1Op struct {
	Base
	Compressed string
}

func NewBLSDecompressG1Op(compressed string, modifier []byte) *BLS_Decompress_G1Op {
	return &BLS_Decompress_G1Op{Base: NewBase(BLS_Decompress_G1, modifier), Compressed: compressed}
}
func (o *BLS_Decompress_G1Op) AlgorithmString() string { return "BLS12_381" }
func (o *BLS_Decompress_G1Op) ToString() string {
	return fmt.Sprintf("BLS_Decompress_G1(compressed=%s, modifier=%s)", o.Compressed, o.modifierHex())
}
func (o *BLS_Decompress_G1Op) ToJSON() map[string]any { return map[string]any{"compressed": o.Compressed} }
func (o *BLS_Decompress_G1Op) Equal(other Operation) bool {
	oo, ok := other.(*BLS_Decompress_G1Op)
	return ok && o.Compressed == oo.Compressed && o.EqualModifier(oo.Base)
}

type BLS_Compress_G1Op struct {
	Base
	G1 component.G1
}

func NewBLSCompressG1Op(g1 component.G1, modifier []byte) *BLS_Compress_G1Op {
	return &BLS_Compress_G1Op{Base: NewBase(BLS_Compress_G1, modifier), G1: g1}
}
func (o *BLS_Compress_G1Op) AlgorithmString() string { return "BLS12_381" }
func (o *BLS_Compress_G1Op) ToString() string {
	return fmt.Sprintf("BLS_Compress_G1(x=%s, y=%s, modifier=%s)", o.G1.X.Decimal(), o.G1.Y.Decimal(), o.modifierHex())
}
func (o *BLS_Compress_G1Op) ToJSON() map[string]any {
	return map[string]any{"x": o.G1.X.Decimal(), "y": o.G1.Y.Decimal()}
}
func (o *BLS_Compress_G1Op) Equal(other Operation) bool {
	oo, ok := other.(*BLS_Compress_G1Op)
	return ok && o.G1.Equal(oo.G1) && o.EqualModifier(oo.Base)
}

type BLS_Decompress_G2Op struct {
	Base
	CompressedX string
	CompressedY string
}

func NewBLSDecompressG2Op(compressedX, compressedY string, modifier []byte) *BLS_Decompress_G2Op {
	return &BLS_Decompress_G2Op{Base: NewBase(BLS_Decompress_G2, modifier), CompressedX: compressedX, CompressedY: compressedY}
}
func (o *BLS_Decompress_G2Op) AlgorithmString() string { return "BLS12_381" }
func (o *BLS_Decompress_G2Op) ToString() string {
	return fmt.Sprintf("BLS_Decompress_G2(x=%s, y=%s, modifier=%s)", o.CompressedX, o.CompressedY, o.modifierHex())
}
func (o *BLS_Decompress_G2Op) ToJSON() map[string]any {
	return map[string]any{"x": o.CompressedX, "y": o.CompressedY}
}
func (o *BLS_Decompress_G2Op) Equal(other Operation) bool {
	oo, ok := other.(*BLS_Decompress_G2Op)
	return ok && o.CompressedX == oo.CompressedX && o.CompressedY == oo.CompressedY && o.EqualModifier(oo.Base)
}

type BLS_Compress_G2Op struct {
	Base
	G2 component.G2
}

func NewBLSCompressG2Op(g2 component.G2, modifier []byte) *BLS_Compress_G2Op {
	return &BLS_Compress_G2Op{Base: NewBase(BLS_Compress_G2, modifier), G2: g2}
}
func (o *BLS_Compress_G2Op) AlgorithmString() string { return "BLS12_381" }
func (o *BLS_Compress_G2Op) ToString() string {
	return fmt.Sprintf("BLS_Compress_G2(v=%s, w=%s, x=%s, y=%s, modifier=%s)",
		o.G2.V.Decimal(), o.G2.W.Decimal(), o.G2.X.Decimal(), o.G2.Y.Decimal(), o.modifierHex())
}
func (o *BLS_Compress_G2Op) ToJSON() map[string]any {
	return map[string]any{"v": o.G2.V.Decimal(), "w": o.G2.W.Decimal(), "x": o.G2.X.Decimal(), "y": o.G2.Y.Decimal()}
}
func (o *BLS_Compress_G2Op) Equal(other Operation) bool {
	oo, ok := other.(*BLS_Compress_G2Op)
	return ok && o.G2.Equal(oo.G2) && o.EqualModifier(oo.Base)
}
