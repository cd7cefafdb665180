// builder.go: Build constructs a concrete Operation for a given
// Family by drawing its fields off a datasource.Source (§4.1 step 2,
// §4.2). This is the Go-native replacement for the upstream's
// Datasource-driven C++ deserialization constructors — one function
// per family, reading exactly the fields that family's struct needs,
// in a fixed order, so the same fuzzer input always builds the same
// operation tree.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package operation

import (
	goerrors "github.com/agilira/go-errors"

	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/datasource"
)

var ErrUnknownFamily = goerrors.New("OP_001", "unknown operation family")

var digestIDs = []DigestID{SHA1, SHA256, SHA384, SHA512, SHA3_256, SHA3_512, BLAKE3, MURMUR3, METROHASH, CITYHASH, GOMETRO}
var cipherIDs = []CipherID{
	AES_128_GCM, AES_256_GCM, AES_128_CCM, AES_256_CCM, AES_128_CBC, AES_256_CBC, AES_128_OCB, AES_256_OCB,
	ARIA_128_GCM, ARIA_256_GCM, ARIA_128_CCM, ARIA_256_CCM, CHACHA20_POLY1305, DES_EDE3_WRAP, HIGHWAYHASH_128,
}
var curveIDs = []CurveID{P256, P384, P521, Secp256k1, Ed25519, Ed448, Ristretto255, X25519, BLS12_381}
var calcOps = []CalcOp{CalcAdd, CalcSub, CalcMul, CalcMod, CalcExp, CalcExp2, CalcGCD, CalcSetBit, CalcModLShift, CalcRand, CalcIsPrime, CalcSqrt, CalcJacobi}

func pickDigest(ds *datasource.Source) (DigestID, error) {
	b, err := ds.GetByte()
	if err != nil {
		return "", err
	}
	return digestIDs[int(b)%len(digestIDs)], nil
}
func pickCipher(ds *datasource.Source) (CipherID, error) {
	b, err := ds.GetByte()
	if err != nil {
		return "", err
	}
	return cipherIDs[int(b)%len(cipherIDs)], nil
}
func pickCurve(ds *datasource.Source) (CurveID, error) {
	b, err := ds.GetByte()
	if err != nil {
		return "", err
	}
	return curveIDs[int(b)%len(curveIDs)], nil
}

// eccPrivSource is the narrow datasource interface
// BuildECCPrivateToPublic needs; declared locally rather than taking
// *datasource.Source so callers with only a restricted view of the
// stream (the ECDH_Derive substitution in package executor) can use it
// without widening their own interface to the full Source.
type eccPrivSource interface {
	GetByte() (byte, error)
	GetDecimal() (string, error)
}

// BuildECCPrivateToPublic draws a curve and private key off ds and
// builds an ECC_PrivateToPublicOp, exactly as the ECC_PrivateToPublic
// case of Build does. It exists so the ECDH_Derive substitution
// (§4.6) can construct the same kind of fresh operation Build would,
// off its own slice of the datasource, rather than reusing the parent
// ECDH_Derive's already-drawn curve and private keys.
func BuildECCPrivateToPublic(ds eccPrivSource, modifier []byte) (*ECC_PrivateToPublicOp, error) {
	b, err := ds.GetByte()
	if err != nil {
		return nil, err
	}
	curve := curveIDs[int(b)%len(curveIDs)]
	priv, err := ds.GetDecimal()
	if err != nil {
		return nil, err
	}
	return NewECCPrivateToPublicOp(curve, priv, modifier), nil
}
func pickCalcOp(ds *datasource.Source) (CalcOp, error) {
	b, err := ds.GetByte()
	if err != nil {
		return "", err
	}
	return calcOps[int(b)%len(calcOps)], nil
}

func readBignum(ds *datasource.Source) (component.Bignum, error) {
	dec, err := ds.GetDecimal()
	if err != nil {
		return component.Bignum{}, err
	}
	return component.NewBignum(dec), nil
}

// Build draws a modifier and then every family-specific field off ds,
// in each family's declared field order, and returns the resulting
// Operation. A short/exhausted read at any point propagates the
// datasource error unchanged; the Run loop treats that as "stop
// drawing tasks" (§4.1 step 6).
func Build(f Family, ds *datasource.Source) (Operation, error) {
	modifier, err := ds.GetBytes()
	if err != nil {
		return nil, err
	}

	switch f {
	case Digest:
		cleartext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		digestType, err := pickDigest(ds)
		if err != nil {
			return nil, err
		}
		return NewDigestOp(cleartext, digestType, modifier), nil

	case HMAC:
		cleartext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		key, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		digestType, err := pickDigest(ds)
		if err != nil {
			return nil, err
		}
		cipherType, err := pickCipher(ds)
		if err != nil {
			return nil, err
		}
		return NewHMACOp(cleartext, key, digestType, cipherType, modifier), nil

	case CMAC:
		cleartext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		key, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		cipherType, err := pickCipher(ds)
		if err != nil {
			return nil, err
		}
		return NewCMACOp(cleartext, key, cipherType, modifier), nil

	case SymmetricEncrypt:
		cipherType, err := pickCipher(ds)
		if err != nil {
			return nil, err
		}
		key, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		iv, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		cleartext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		hasAAD, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		var aad []byte
		if hasAAD {
			if aad, err = ds.GetBytes(); err != nil {
				return nil, err
			}
		}
		hasTagSize, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		var tagSize *int
		if hasTagSize {
			tb, err := ds.GetByte()
			if err != nil {
				return nil, err
			}
			n := int(tb)
			tagSize = &n
		}
		return NewSymmetricEncryptOp(Cipher{CipherType: cipherType, Key: key, IV: iv}, cleartext, aad, hasAAD, tagSize, modifier), nil

	case SymmetricDecrypt:
		cipherType, err := pickCipher(ds)
		if err != nil {
			return nil, err
		}
		key, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		iv, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		ciphertext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		hasTag, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		var tag []byte
		if hasTag {
			if tag, err = ds.GetBytes(); err != nil {
				return nil, err
			}
		}
		hasAAD, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		var aad []byte
		if hasAAD {
			if aad, err = ds.GetBytes(); err != nil {
				return nil, err
			}
		}
		outSizeB, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		return NewSymmetricDecryptOp(Cipher{CipherType: cipherType, Key: key, IV: iv}, ciphertext, tag, hasTag, aad, hasAAD, int(outSizeB)+32, modifier), nil

	case KDF_SCRYPT:
		password, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		salt, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		n, err := ds.GetUint16()
		if err != nil {
			return nil, err
		}
		r, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		p, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		keySize, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		return NewKDFScryptOp(password, salt, int(n), int(r), int(p), int(keySize), modifier), nil

	case KDF_HKDF:
		password, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		salt, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		info, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		digestType, err := pickDigest(ds)
		if err != nil {
			return nil, err
		}
		keySize, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		return NewKDFHKDFOp(password, salt, info, digestType, int(keySize), modifier), nil

	case KDF_PBKDF, KDF_PBKDF1, KDF_PBKDF2:
		password, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		salt, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		iterations, err := ds.GetUint16()
		if err != nil {
			return nil, err
		}
		digestType, err := pickDigest(ds)
		if err != nil {
			return nil, err
		}
		keySize, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		switch f {
		case KDF_PBKDF:
			return NewKDFPBKDFOp(password, salt, int(iterations), digestType, int(keySize), modifier), nil
		case KDF_PBKDF1:
			return NewKDFPBKDF1Op(password, salt, int(iterations), digestType, int(keySize), modifier), nil
		default:
			return NewKDFPBKDF2Op(password, salt, int(iterations), digestType, int(keySize), modifier), nil
		}

	case KDF_ARGON2:
		password, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		salt, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		typeByte, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		types := []string{"argon2i", "argon2d", "argon2id"}
		threads, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		memory, err := ds.GetUint32()
		if err != nil {
			return nil, err
		}
		iterations, err := ds.GetUint32()
		if err != nil {
			return nil, err
		}
		keySize, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		return NewKDFArgon2Op(password, salt, types[int(typeByte)%len(types)], threads, memory%65536+1, iterations%16+1, int(keySize)+1, modifier), nil

	case KDF_SSH:
		key, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		xcgHash, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		sessionID, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		digestType, err := pickDigest(ds)
		if err != nil {
			return nil, err
		}
		keyType, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		keySize, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		return NewKDFSSHOp(key, xcgHash, sessionID, digestType, keyType, int(keySize), modifier), nil

	case KDF_TLS1_PRF:
		secret, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		seed, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		digestType, err := pickDigest(ds)
		if err != nil {
			return nil, err
		}
		keySize, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		return NewKDFTLS1PRFOp(secret, seed, digestType, int(keySize), modifier), nil

	case KDF_X963:
		secret, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		info, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		digestType, err := pickDigest(ds)
		if err != nil {
			return nil, err
		}
		keySize, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		return NewKDFX963Op(secret, info, digestType, int(keySize), modifier), nil

	case KDF_BCRYPT:
		secret, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		salt, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		digestType, err := pickDigest(ds)
		if err != nil {
			return nil, err
		}
		cost, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		keySize, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		return NewKDFBcryptOp(secret, salt, digestType, int(cost)%31+4, int(keySize), modifier), nil

	case KDF_SP_800_108:
		key, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		label, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		context, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		mode, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		digestType, err := pickDigest(ds)
		if err != nil {
			return nil, err
		}
		keySize, err := ds.GetByte()
		if err != nil {
			return nil, err
		}
		return NewKDFSP800108Op(key, label, context, SP800108Mech{Mode: mode, Type: digestType}, int(keySize), modifier), nil

	case ECC_PrivateToPublic:
		curve, err := pickCurve(ds)
		if err != nil {
			return nil, err
		}
		priv, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		return NewECCPrivateToPublicOp(curve, priv, modifier), nil

	case ECC_ValidatePubkey:
		curve, err := pickCurve(ds)
		if err != nil {
			return nil, err
		}
		x, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		y, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		return NewECCValidatePubkeyOp(curve, x, y, modifier), nil

	case ECC_GenerateKeyPair:
		curve, err := pickCurve(ds)
		if err != nil {
			return nil, err
		}
		return NewECCGenerateKeyPairOp(curve, modifier), nil

	case ECDSA_Sign:
		curve, err := pickCurve(ds)
		if err != nil {
			return nil, err
		}
		priv, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		cleartext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		hasNonce, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		var nonce string
		if hasNonce {
			if nonce, err = ds.GetDecimal(); err != nil {
				return nil, err
			}
		}
		return NewECDSASignOp(curve, priv, cleartext, nonce, hasNonce, modifier), nil

	case ECDSA_Verify:
		curve, err := pickCurve(ds)
		if err != nil {
			return nil, err
		}
		x, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		y, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		cleartext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		r, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		s, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		return NewECDSAVerifyOp(curve, x, y, cleartext, r, s, modifier), nil

	case ECDH_Derive:
		curve, err := pickCurve(ds)
		if err != nil {
			return nil, err
		}
		priv1, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		pub1x, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		pub1y, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		priv2, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		pub2x, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		pub2y, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		return NewECDHDeriveOp(curve, priv1, pub1x, pub1y, priv2, pub2x, pub2y, modifier), nil

	case ECIES_Encrypt:
		curve, err := pickCurve(ds)
		if err != nil {
			return nil, err
		}
		cleartext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		hasPriv, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		var priv string
		if hasPriv {
			if priv, err = ds.GetDecimal(); err != nil {
				return nil, err
			}
		}
		hasPub, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		var pubX, pubY string
		if hasPub {
			if pubX, err = ds.GetDecimal(); err != nil {
				return nil, err
			}
			if pubY, err = ds.GetDecimal(); err != nil {
				return nil, err
			}
		}
		return NewECIESEncryptOp(curve, cleartext, priv, hasPriv, pubX, pubY, hasPub, modifier), nil

	case ECIES_Decrypt:
		curve, err := pickCurve(ds)
		if err != nil {
			return nil, err
		}
		ciphertext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		priv, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		hasPub, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		var pubX, pubY string
		if hasPub {
			if pubX, err = ds.GetDecimal(); err != nil {
				return nil, err
			}
			if pubY, err = ds.GetDecimal(); err != nil {
				return nil, err
			}
		}
		return NewECIESDecryptOp(curve, ciphertext, priv, pubX, pubY, hasPub, modifier), nil

	case DH_GenerateKeyPair:
		prime, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		base, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		return NewDHGenerateKeyPairOp(prime, base, modifier), nil

	case DH_Derive:
		prime, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		base, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		pub, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		priv, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		return NewDHDeriveOp(prime, base, pub, priv, modifier), nil

	case BignumCalc:
		op, err := pickCalcOp(ds)
		if err != nil {
			return nil, err
		}
		bn0, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		bn1, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		bn2, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		bn3, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		return NewBignumCalcOp(op, bn0, bn1, bn2, bn3, nil, modifier), nil

	case BLS_PrivateToPublic:
		priv, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		return NewBLSPrivateToPublicOp(priv, modifier), nil

	case BLS_Sign:
		priv, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		cleartext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		hashOrPoint, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		var point component.G2
		if hashOrPoint {
			v, err := readBignum(ds)
			if err != nil {
				return nil, err
			}
			w, err := readBignum(ds)
			if err != nil {
				return nil, err
			}
			x, err := readBignum(ds)
			if err != nil {
				return nil, err
			}
			y, err := readBignum(ds)
			if err != nil {
				return nil, err
			}
			point = component.G2{V: v, W: w, X: x, Y: y}
		}
		hasDest, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		var dest []byte
		if hasDest {
			if dest, err = ds.GetBytes(); err != nil {
				return nil, err
			}
		}
		hasAug, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		var aug []byte
		if hasAug {
			if aug, err = ds.GetBytes(); err != nil {
				return nil, err
			}
		}
		return NewBLSSignOp(priv, cleartext, hashOrPoint, point, dest, hasDest, aug, hasAug, modifier), nil

	case BLS_Verify:
		pubX, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		pubY, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		cleartext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		sigV, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		sigW, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		sigX, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		sigY, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		return NewBLSVerifyOp(pubX, pubY, cleartext, sigV, sigW, sigX, sigY, modifier), nil

	case BLS_Pairing:
		g1x, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		g1y, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		g2v, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		g2w, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		g2x, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		g2y, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		return NewBLSPairingOp(component.G1{X: g1x, Y: g1y}, component.G2{V: g2v, W: g2w, X: g2x, Y: g2y}, modifier), nil

	case BLS_HashToG1, BLS_HashToG2:
		cleartext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		hasDest, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		var dest []byte
		if hasDest {
			if dest, err = ds.GetBytes(); err != nil {
				return nil, err
			}
		}
		hasAug, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		var aug []byte
		if hasAug {
			if aug, err = ds.GetBytes(); err != nil {
				return nil, err
			}
		}
		if f == BLS_HashToG1 {
			return NewBLSHashToG1Op(cleartext, dest, hasDest, aug, hasAug, modifier), nil
		}
		return NewBLSHashToG2Op(cleartext, dest, hasDest, aug, hasAug, modifier), nil

	case BLS_IsG1OnCurve:
		x, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		y, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		return NewBLSIsG1OnCurveOp(component.G1{X: x, Y: y}, modifier), nil

	case BLS_IsG2OnCurve:
		v, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		w, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		x, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		y, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		return NewBLSIsG2OnCurveOp(component.G2{V: v, W: w, X: x, Y: y}, modifier), nil

	case BLS_GenerateKeyPair:
		return NewBLSGenerateKeyPairOp(modifier), nil

	case BLS_Decompress_G1:
		compressed, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		return NewBLSDecompressG1Op(compressed, modifier), nil

	case BLS_Compress_G1:
		x, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		y, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		return NewBLSCompressG1Op(component.G1{X: x, Y: y}, modifier), nil

	case BLS_Decompress_G2:
		x, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		y, err := ds.GetDecimal()
		if err != nil {
			return nil, err
		}
		return NewBLSDecompressG2Op(x, y, modifier), nil

	case BLS_Compress_G2:
		v, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		w, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		x, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		y, err := readBignum(ds)
		if err != nil {
			return nil, err
		}
		return NewBLSCompressG2Op(component.G2{V: v, W: w, X: x, Y: y}, modifier), nil

	case Misc:
		opName, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		cleartext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		return NewMiscOp(string(opName), cleartext, modifier), nil

	case SR25519_Verify:
		pub, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		cleartext, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		sig, err := ds.GetBytes()
		if err != nil {
			return nil, err
		}
		return NewSR25519VerifyOp(pub, cleartext, sig, modifier), nil

	default:
		return nil, ErrUnknownFamily
	}
}

// WithModulo rebuilds a BignumCalc operation with a fixed modulus
// stamped in, for the three modular executor variants (§4.8). Non-
// BignumCalc operations are returned unchanged.
func WithModulo(op Operation, modulo component.Bignum) Operation {
	bc, ok := op.(*BignumCalcOp)
	if !ok {
		return op
	}
	m := modulo
	return NewBignumCalcOp(bc.Op, bc.BN0, bc.BN1, bc.BN2, bc.BN3, &m, bc.GetModifier())
}
