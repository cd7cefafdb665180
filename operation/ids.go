// ids.go: stable algorithm identifiers. These are the "algorithm ids"
// §3/§4.3/§6 talk about — digest/cipher/curve/calc-op tags that the
// Option filter gates on and that select which concrete algorithm a
// backend module should run.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package operation

// DigestID identifies a hash algorithm.
type DigestID string

const (
	SHA1       DigestID = "SHA1"
	SHA256     DigestID = "SHA256"
	SHA384     DigestID = "SHA384"
	SHA512     DigestID = "SHA512"
	SHA3_256   DigestID = "SHA3_256"
	SHA3_512   DigestID = "SHA3_512"
	BLAKE3     DigestID = "BLAKE3"
	MURMUR3    DigestID = "MURMUR3"
	METROHASH  DigestID = "METROHASH"
	CITYHASH   DigestID = "CITYHASH"
	GOMETRO    DigestID = "GOMETRO"
)

// CipherID identifies a symmetric cipher/mode pair.
type CipherID string

const (
	AES_128_GCM     CipherID = "AES_128_GCM"
	AES_256_GCM     CipherID = "AES_256_GCM"
	AES_128_CCM     CipherID = "AES_128_CCM"
	AES_256_CCM     CipherID = "AES_256_CCM"
	AES_128_CBC     CipherID = "AES_128_CBC"
	AES_256_CBC     CipherID = "AES_256_CBC"
	AES_128_OCB     CipherID = "AES_128_OCB"
	AES_256_OCB     CipherID = "AES_256_OCB"
	ARIA_128_GCM    CipherID = "ARIA_128_GCM"
	ARIA_256_GCM    CipherID = "ARIA_256_GCM"
	ARIA_128_CCM    CipherID = "ARIA_128_CCM"
	ARIA_256_CCM    CipherID = "ARIA_256_CCM"
	CHACHA20_POLY1305 CipherID = "CHACHA20_POLY1305"
	DES_EDE3_WRAP   CipherID = "DES_EDE3_WRAP"
	HIGHWAYHASH_128 CipherID = "HIGHWAYHASH_128"
)

// CurveID identifies an elliptic curve.
type CurveID string

const (
	P256         CurveID = "secp256r1"
	P384         CurveID = "secp384r1"
	P521         CurveID = "secp521r1"
	Secp256k1    CurveID = "secp256k1"
	Ed25519      CurveID = "ed25519"
	Ed448        CurveID = "ed448"
	Ristretto255 CurveID = "ristretto255"
	X25519       CurveID = "x25519"
	BLS12_381    CurveID = "BLS12_381"
)

// CalcOp identifies a BignumCalc operator.
type CalcOp string

const (
	CalcAdd       CalcOp = "Add(A,B)"
	CalcSub       CalcOp = "Sub(A,B)"
	CalcMul       CalcOp = "Mul(A,B)"
	CalcMod       CalcOp = "Mod(A,B)"
	CalcExp       CalcOp = "Exp(A,B)"
	CalcExp2      CalcOp = "Exp2(A)"
	CalcGCD       CalcOp = "GCD(A,B)"
	CalcSetBit    CalcOp = "SetBit(A,B)"
	CalcModLShift CalcOp = "ModLShift(A,B,C)"
	CalcRand      CalcOp = "Rand()"
	CalcIsPrime   CalcOp = "IsPrime(A)"
	CalcSqrt      CalcOp = "Sqrt(A)"
	CalcJacobi    CalcOp = "Jacobi(A,B)"
)

// ModuleID identifies a registered backend module; the Datasource
// draws a raw uint64 and the Run loop maps it through the module
// registry (§4.1 step 1, §6 "ID").
type ModuleID uint64
