// family.go: the closed set of operation families (§3) and the
// per-family dispatch metadata (MaxOperations, result family name)
// that the Run loop and the builder consult.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package operation

// Family identifies the shape of a cryptographic operation. The set is
// closed: the Run loop, the builder and the executor's PolicyTable work over
// a known, exhaustive list of these values.
type Family int

const (
	Digest Family = iota
	HMAC
	CMAC
	SymmetricEncrypt
	SymmetricDecrypt
	KDF_SCRYPT
	KDF_HKDF
	KDF_PBKDF
	KDF_PBKDF1
	KDF_PBKDF2
	KDF_ARGON2
	KDF_SSH
	KDF_TLS1_PRF
	KDF_X963
	KDF_BCRYPT
	KDF_SP_800_108
	ECC_PrivateToPublic
	ECC_ValidatePubkey
	ECC_GenerateKeyPair
	ECDSA_Sign
	ECDSA_Verify
	ECDH_Derive
	ECIES_Encrypt
	ECIES_Decrypt
	DH_GenerateKeyPair
	DH_Derive
	BignumCalc
	BLS_PrivateToPublic
	BLS_Sign
	BLS_Verify
	BLS_Pairing
	BLS_HashToG1
	BLS_HashToG2
	BLS_IsG1OnCurve
	BLS_IsG2OnCurve
	BLS_GenerateKeyPair
	BLS_Decompress_G1
	BLS_Compress_G1
	BLS_Decompress_G2
	BLS_Compress_G2
	Misc
	SR25519_Verify

	numFamilies
)

var familyNames = map[Family]string{
	Digest:               "Digest",
	HMAC:                 "HMAC",
	CMAC:                 "CMAC",
	SymmetricEncrypt:     "SymmetricEncrypt",
	SymmetricDecrypt:     "SymmetricDecrypt",
	KDF_SCRYPT:           "KDF_SCRYPT",
	KDF_HKDF:             "KDF_HKDF",
	KDF_PBKDF:            "KDF_PBKDF",
	KDF_PBKDF1:           "KDF_PBKDF1",
	KDF_PBKDF2:           "KDF_PBKDF2",
	KDF_ARGON2:           "KDF_ARGON2",
	KDF_SSH:              "KDF_SSH",
	KDF_TLS1_PRF:         "KDF_TLS1_PRF",
	KDF_X963:             "KDF_X963",
	KDF_BCRYPT:           "KDF_BCRYPT",
	KDF_SP_800_108:       "KDF_SP_800_108",
	ECC_PrivateToPublic:  "ECC_PrivateToPublic",
	ECC_ValidatePubkey:   "ECC_ValidatePubkey",
	ECC_GenerateKeyPair:  "ECC_GenerateKeyPair",
	ECDSA_Sign:           "ECDSA_Sign",
	ECDSA_Verify:         "ECDSA_Verify",
	ECDH_Derive:          "ECDH_Derive",
	ECIES_Encrypt:        "ECIES_Encrypt",
	ECIES_Decrypt:        "ECIES_Decrypt",
	DH_GenerateKeyPair:   "DH_GenerateKeyPair",
	DH_Derive:            "DH_Derive",
	BignumCalc:           "BignumCalc",
	BLS_PrivateToPublic:  "BLS_PrivateToPublic",
	BLS_Sign:             "BLS_Sign",
	BLS_Verify:           "BLS_Verify",
	BLS_Pairing:          "BLS_Pairing",
	BLS_HashToG1:         "BLS_HashToG1",
	BLS_HashToG2:         "BLS_HashToG2",
	BLS_IsG1OnCurve:      "BLS_IsG1OnCurve",
	BLS_IsG2OnCurve:      "BLS_IsG2OnCurve",
	BLS_GenerateKeyPair:  "BLS_GenerateKeyPair",
	BLS_Decompress_G1:    "BLS_Decompress_G1",
	BLS_Compress_G1:      "BLS_Compress_G1",
	BLS_Decompress_G2:    "BLS_Decompress_G2",
	BLS_Compress_G2:      "BLS_Compress_G2",
	Misc:                 "Misc",
	SR25519_Verify:       "SR25519_Verify",
}

func (f Family) String() string {
	if n, ok := familyNames[f]; ok {
		return n
	}
	return "Unknown"
}

// maxOperations bounds how many (module, op) tasks the Run loop will
// accept per fuzzer buffer for a given family (§4.1 step 2). Families
// whose per-call cost is high (KDF with memory-hard parameters, BLS
// pairings) get a tighter cap than cheap ones (Digest, BignumCalc) to
// keep a single Run within a bounded wall-clock budget.
var maxOperations = map[Family]int{
	Digest:               16,
	HMAC:                 16,
	CMAC:                 16,
	SymmetricEncrypt:     8,
	SymmetricDecrypt:     8,
	KDF_SCRYPT:           2,
	KDF_HKDF:             8,
	KDF_PBKDF:            4,
	KDF_PBKDF1:           4,
	KDF_PBKDF2:           4,
	KDF_ARGON2:           2,
	KDF_SSH:              4,
	KDF_TLS1_PRF:         4,
	KDF_X963:             4,
	KDF_BCRYPT:           2,
	KDF_SP_800_108:       4,
	ECC_PrivateToPublic:  8,
	ECC_ValidatePubkey:   8,
	ECC_GenerateKeyPair:  4,
	ECDSA_Sign:           8,
	ECDSA_Verify:         8,
	ECDH_Derive:          4,
	ECIES_Encrypt:        4,
	ECIES_Decrypt:        4,
	DH_GenerateKeyPair:   4,
	DH_Derive:            4,
	BignumCalc:           32,
	BLS_PrivateToPublic:  4,
	BLS_Sign:             4,
	BLS_Verify:           4,
	BLS_Pairing:          4,
	BLS_HashToG1:         4,
	BLS_HashToG2:         4,
	BLS_IsG1OnCurve:      4,
	BLS_IsG2OnCurve:      4,
	BLS_GenerateKeyPair:  4,
	BLS_Decompress_G1:    4,
	BLS_Compress_G1:      4,
	BLS_Decompress_G2:    4,
	BLS_Compress_G2:      4,
	Misc:                 8,
	SR25519_Verify:       8,
}

// MaxOperations returns the cap on accepted tasks for one Run of this
// family (§4.1 step 2).
func (f Family) MaxOperations() int {
	if n, ok := maxOperations[f]; ok {
		return n
	}
	return 4
}

// NumFamilies returns the size of the closed family set (§3), letting
// callers outside this package iterate every family without it having
// to export the numFamilies sentinel itself.
func NumFamilies() int { return int(numFamilies) }
