// result.go: per-family Result value types.
//
// These are the "algebraic data types for each operation family" that
// §1 explicitly places out of core scope — the Executor consumes them,
// it does not define their cryptographic meaning. What it does require
// of every Result is captured by the Result interface below: semantic
// equality, a stable string/JSON form, and (for types with a flat byte
// region) access to that region for the sanitizer probe.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package component

import (
	"encoding/hex"
	"fmt"
)

// Result is the contract every per-family result value satisfies.
type Result interface {
	// Equal performs semantic comparison against another Result of the
	// same concrete type. Comparing across concrete types is a bug in
	// the caller and Equal may panic via a failed type assertion — the
	// Executor never does this because callModule/postprocess are
	// generic over one OperationType/ResultType pair at a time.
	Equal(other Result) bool
	ToString() string
	ToJSON() any
}

// FlatRegion is implemented by Result types that expose a single
// contiguous byte region a backend wrote into — the thing the
// sanitizer probe (§1, §4.3b, §5) needs to walk.
type FlatRegion interface {
	FlatBytes() []byte
}

// Buffer is a bare byte-string result, used by the catch-all Misc
// family and by BLS_Compress_G1 (c.f. BLS_Compress_G1 returning a
// compressed point encoding rather than a structured Bignum pair).
type Buffer struct{ Data []byte }

func (b Buffer) Equal(o Result) bool   { ob := o.(Buffer); return string(b.Data) == string(ob.Data) }
func (b Buffer) ToString() string      { return hex.EncodeToString(b.Data) }
func (b Buffer) ToJSON() any           { return hex.EncodeToString(b.Data) }
func (b Buffer) FlatBytes() []byte     { return b.Data }

// Digest is the result of a hash operation.
type Digest struct{ Buffer }

// Equal overrides the promoted Buffer.Equal: that method's own type
// assertion targets Buffer, which panics given a same-named embedder
// like Digest instead, since the Result it receives is never actually
// a bare Buffer.
func (d Digest) Equal(o Result) bool { return d.Buffer.Equal(o.(Digest).Buffer) }

// MAC is the result of HMAC and CMAC. SymmetricDecrypt returns
// Cleartext, not MAC.
type MAC struct{ Buffer }

func (m MAC) Equal(o Result) bool { return m.Buffer.Equal(o.(MAC).Buffer) }

// Cleartext is a plain byte buffer recovered by decryption.
type Cleartext struct{ Buffer }

func (c Cleartext) Equal(o Result) bool { return c.Buffer.Equal(o.(Cleartext).Buffer) }

// Key is KDF output key material.
type Key struct{ Buffer }

func (k Key) Equal(o Result) bool { return k.Buffer.Equal(o.(Key).Buffer) }

// Bool wraps a boolean result (ECC_ValidatePubkey, ECDSA_Verify,
// BLS_Verify, BLS_Pairing, BLS_IsG{1,2}OnCurve, SR25519_Verify).
type Bool struct{ Value bool }

func (b Bool) Equal(o Result) bool { return b.Value == o.(Bool).Value }
func (b Bool) ToString() string    { return fmt.Sprintf("%v", b.Value) }
func (b Bool) ToJSON() any         { return b.Value }

// Ciphertext is the result of SymmetricEncrypt: ciphertext bytes plus
// an optional authentication tag.
type Ciphertext struct {
	CiphertextBytes []byte
	Tag             []byte
	HasTag          bool
}

func (c Ciphertext) Equal(o Result) bool {
	oc := o.(Ciphertext)
	if string(c.CiphertextBytes) != string(oc.CiphertextBytes) {
		return false
	}
	if c.HasTag != oc.HasTag {
		return false
	}
	if c.HasTag && string(c.Tag) != string(oc.Tag) {
		return false
	}
	return true
}

func (c Ciphertext) ToString() string {
	if c.HasTag {
		return fmt.Sprintf("ciphertext=%s tag=%s", hex.EncodeToString(c.CiphertextBytes), hex.EncodeToString(c.Tag))
	}
	return fmt.Sprintf("ciphertext=%s tag=nullopt", hex.EncodeToString(c.CiphertextBytes))
}

func (c Ciphertext) ToJSON() any {
	m := map[string]any{"ciphertext": hex.EncodeToString(c.CiphertextBytes)}
	if c.HasTag {
		m["tag"] = hex.EncodeToString(c.Tag)
	}
	return m
}

// FlatBytes exposes the ciphertext region; the tag region is probed
// separately by the postprocess hook since it is optional.
func (c Ciphertext) FlatBytes() []byte { return c.CiphertextBytes }

// ECC_PublicKey is an elliptic curve point (x, y) in affine coordinates.
type ECC_PublicKey struct {
	X, Y Bignum
}

func (p ECC_PublicKey) Equal(o Result) bool {
	op := o.(ECC_PublicKey)
	return p.X.Equal(op.X) && p.Y.Equal(op.Y)
}
func (p ECC_PublicKey) ToString() string { return fmt.Sprintf("(%s, %s)", p.X.Decimal(), p.Y.Decimal()) }
func (p ECC_PublicKey) ToJSON() any      { return map[string]any{"x": p.X.Decimal(), "y": p.Y.Decimal()} }

// ECC_KeyPair is a private scalar plus its derived public point.
type ECC_KeyPair struct {
	Priv Bignum
	Pub  ECC_PublicKey
}

func (k ECC_KeyPair) Equal(o Result) bool {
	ok := o.(ECC_KeyPair)
	return k.Priv.Equal(ok.Priv) && k.Pub.Equal(ok.Pub)
}
func (k ECC_KeyPair) ToString() string {
	return fmt.Sprintf("priv=%s pub=%s", k.Priv.Decimal(), k.Pub.ToString())
}
func (k ECC_KeyPair) ToJSON() any {
	return map[string]any{"priv": k.Priv.Decimal(), "pub": k.Pub.ToJSON()}
}

// ECDSA_Signature is a signature (r, s) plus the public key it was
// produced (or claimed to be produced) with.
type ECDSA_Signature struct {
	Pub       ECC_PublicKey
	R, S      Bignum
}

func (s ECDSA_Signature) Equal(o Result) bool {
	os := o.(ECDSA_Signature)
	return s.R.Equal(os.R) && s.S.Equal(os.S)
}
func (s ECDSA_Signature) ToString() string {
	return fmt.Sprintf("r=%s s=%s pub=%s", s.R.Decimal(), s.S.Decimal(), s.Pub.ToString())
}
func (s ECDSA_Signature) ToJSON() any {
	return map[string]any{"r": s.R.Decimal(), "s": s.S.Decimal(), "pub": s.Pub.ToJSON()}
}

// Secret is the shared secret produced by ECDH_Derive.
type Secret struct{ Buffer }

func (s Secret) Equal(o Result) bool { return s.Buffer.Equal(o.(Secret).Buffer) }

// DH_KeyPair is a classic (non-elliptic) Diffie-Hellman keypair.
type DH_KeyPair struct{ Priv, Pub Bignum }

func (k DH_KeyPair) Equal(o Result) bool {
	ok := o.(DH_KeyPair)
	return k.Priv.Equal(ok.Priv) && k.Pub.Equal(ok.Pub)
}
func (k DH_KeyPair) ToString() string { return fmt.Sprintf("priv=%s pub=%s", k.Priv.Decimal(), k.Pub.Decimal()) }
func (k DH_KeyPair) ToJSON() any      { return map[string]any{"priv": k.Priv.Decimal(), "pub": k.Pub.Decimal()} }

// BLS_PublicKey is a G1 point.
type BLS_PublicKey struct{ X, Y Bignum }

func (p BLS_PublicKey) Equal(o Result) bool {
	op := o.(BLS_PublicKey)
	return p.X.Equal(op.X) && p.Y.Equal(op.Y)
}
func (p BLS_PublicKey) ToString() string { return fmt.Sprintf("(%s, %s)", p.X.Decimal(), p.Y.Decimal()) }
func (p BLS_PublicKey) ToJSON() any      { return map[string]any{"x": p.X.Decimal(), "y": p.Y.Decimal()} }

// G1 is a point on the BLS G1 curve.
type G1 struct{ X, Y Bignum }

func (g G1) Equal(o Result) bool { og := o.(G1); return g.X.Equal(og.X) && g.Y.Equal(og.Y) }
func (g G1) ToString() string    { return fmt.Sprintf("(%s, %s)", g.X.Decimal(), g.Y.Decimal()) }
func (g G1) ToJSON() any         { return map[string]any{"x": g.X.Decimal(), "y": g.Y.Decimal()} }

// G2 is a point on the BLS G2 curve; each affine coordinate lives in
// the quadratic extension field Fp2 and is carried as two Bignums.
type G2 struct{ V, W, X, Y Bignum }

func (g G2) Equal(o Result) bool {
	og := o.(G2)
	return g.V.Equal(og.V) && g.W.Equal(og.W) && g.X.Equal(og.X) && g.Y.Equal(og.Y)
}
func (g G2) ToString() string {
	return fmt.Sprintf("((%s,%s), (%s,%s))", g.V.Decimal(), g.W.Decimal(), g.X.Decimal(), g.Y.Decimal())
}
func (g G2) ToJSON() any {
	return map[string]any{"v": g.V.Decimal(), "w": g.W.Decimal(), "x": g.X.Decimal(), "y": g.Y.Decimal()}
}

// BLS_Signature is a G2 point plus the G1 public key it pairs with.
type BLS_Signature struct {
	Pub BLS_PublicKey
	Sig G2
}

func (s BLS_Signature) Equal(o Result) bool {
	os := o.(BLS_Signature)
	return s.Sig.Equal(os.Sig)
}
func (s BLS_Signature) ToString() string { return fmt.Sprintf("sig=%s pub=%s", s.Sig.ToString(), s.Pub.ToString()) }
func (s BLS_Signature) ToJSON() any {
	return map[string]any{"sig": s.Sig.ToJSON(), "pub": s.Pub.ToJSON()}
}

// BLS_KeyPair is a BLS private scalar plus its G1 public key.
type BLS_KeyPair struct {
	Priv Bignum
	Pub  BLS_PublicKey
}

func (k BLS_KeyPair) Equal(o Result) bool {
	ok := o.(BLS_KeyPair)
	return k.Priv.Equal(ok.Priv) && k.Pub.Equal(ok.Pub)
}
func (k BLS_KeyPair) ToString() string { return fmt.Sprintf("priv=%s pub=%s", k.Priv.Decimal(), k.Pub.ToString()) }
func (k BLS_KeyPair) ToJSON() any {
	return map[string]any{"priv": k.Priv.Decimal(), "pub": k.Pub.ToJSON()}
}

// BignumResult wraps a component.Bignum as a Result — used as the
// result of BignumCalc and DH_Derive.
type BignumResult struct{ Bignum }

func (b BignumResult) Equal(o Result) bool { return b.Bignum.Equal(o.(BignumResult).Bignum) }
func (b BignumResult) ToString() string    { return b.Bignum.Decimal() }
func (b BignumResult) ToJSON() any         { return b.Bignum.Decimal() }
