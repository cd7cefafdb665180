// kdf.go: the eleven KDF_* operation families. These share a common
// shape (password/IKM, salt/info, a size parameter, sometimes a digest
// id) but differ enough in their parameter sets that each gets its own
// struct, matching how the original gives each its own operation type
// while sharing a single result type (component.Key).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package operation

import (
	"encoding/hex"
	"fmt"
)

type KDF_SCRYPT_Op struct {
	Base
	Password, Salt     []byte
	N, R, P             int
	KeySize             int
}

func NewKDFScryptOp(password, salt []byte, n, r, p, keySize int, modifier []byte) *KDF_SCRYPT_Op {
	return &KDF_SCRYPT_Op{Base: NewBase(KDF_SCRYPT, modifier), Password: password, Salt: salt, N: n, R: r, P: p, KeySize: keySize}
}
func (o *KDF_SCRYPT_Op) AlgorithmString() string { return "SCRYPT" }
func (o *KDF_SCRYPT_Op) ToString() string {
	return fmt.Sprintf("KDF_SCRYPT(password=%s, salt=%s, N=%d, r=%d, p=%d, keySize=%d, modifier=%s)",
		hex.EncodeToString(o.Password), hex.EncodeToString(o.Salt), o.N, o.R, o.P, o.KeySize, o.modifierHex())
}
func (o *KDF_SCRYPT_Op) ToJSON() map[string]any {
	return map[string]any{"password": hex.EncodeToString(o.Password), "salt": hex.EncodeToString(o.Salt), "N": o.N, "r": o.R, "p": o.P, "keySize": o.KeySize}
}
func (o *KDF_SCRYPT_Op) Equal(other Operation) bool {
	oo, ok := other.(*KDF_SCRYPT_Op)
	return ok && string(o.Password) == string(oo.Password) && string(o.Salt) == string(oo.Salt) &&
		o.N == oo.N && o.R == oo.R && o.P == oo.P && o.KeySize == oo.KeySize && o.EqualModifier(oo.Base)
}

type KDF_HKDF_Op struct {
	Base
	Password, Salt, Info []byte
	DigestType            DigestID
	KeySize               int
}

func NewKDFHKDFOp(password, salt, info []byte, digestType DigestID, keySize int, modifier []byte) *KDF_HKDF_Op {
	return &KDF_HKDF_Op{Base: NewBase(KDF_HKDF, modifier), Password: password, Salt: salt, Info: info, DigestType: digestType, KeySize: keySize}
}
func (o *KDF_HKDF_Op) AlgorithmString() string { return string(o.DigestType) }
func (o *KDF_HKDF_Op) ToString() string {
	return fmt.Sprintf("KDF_HKDF(ikm=%s, salt=%s, info=%s, digestType=%s, keySize=%d, modifier=%s)",
		hex.EncodeToString(o.Password), hex.EncodeToString(o.Salt), hex.EncodeToString(o.Info), o.DigestType, o.KeySize, o.modifierHex())
}
func (o *KDF_HKDF_Op) ToJSON() map[string]any {
	return map[string]any{"ikm": hex.EncodeToString(o.Password), "salt": hex.EncodeToString(o.Salt), "info": hex.EncodeToString(o.Info), "digestType": string(o.DigestType), "keySize": o.KeySize}
}
func (o *KDF_HKDF_Op) Equal(other Operation) bool {
	oo, ok := other.(*KDF_HKDF_Op)
	return ok && string(o.Password) == string(oo.Password) && string(o.Salt) == string(oo.Salt) &&
		string(o.Info) == string(oo.Info) && o.DigestType == oo.DigestType && o.KeySize == oo.KeySize && o.EqualModifier(oo.Base)
}

type pbkdfLike struct {
	Base
	Password, Salt []byte
	Iterations     int
	DigestType     DigestID
	KeySize        int
}

// KDF_PBKDF_Op is the generic PBKDF construction (digest-parameterized
// PRF, arbitrary iteration count).
type KDF_PBKDF_Op struct{ pbkdfLike }

func NewKDFPBKDFOp(password, salt []byte, iterations int, digestType DigestID, keySize int, modifier []byte) *KDF_PBKDF_Op {
	return &KDF_PBKDF_Op{pbkdfLike{Base: NewBase(KDF_PBKDF, modifier), Password: password, Salt: salt, Iterations: iterations, DigestType: digestType, KeySize: keySize}}
}
func (o *KDF_PBKDF_Op) AlgorithmString() string { return string(o.DigestType) }
func (o *KDF_PBKDF_Op) ToString() string {
	return fmt.Sprintf("KDF_PBKDF(password=%s, salt=%s, iterations=%d, digestType=%s, keySize=%d, modifier=%s)",
		hex.EncodeToString(o.Password), hex.EncodeToString(o.Salt), o.Iterations, o.DigestType, o.KeySize, o.modifierHex())
}
func (o *KDF_PBKDF_Op) ToJSON() map[string]any {
	return map[string]any{"password": hex.EncodeToString(o.Password), "salt": hex.EncodeToString(o.Salt), "iterations": o.Iterations, "digestType": string(o.DigestType), "keySize": o.KeySize}
}
func (o *KDF_PBKDF_Op) Equal(other Operation) bool {
	oo, ok := other.(*KDF_PBKDF_Op)
	return ok && string(o.Password) == string(oo.Password) && string(o.Salt) == string(oo.Salt) &&
		o.Iterations == oo.Iterations && o.DigestType == oo.DigestType && o.KeySize == oo.KeySize && o.EqualModifier(oo.Base)
}

// KDF_PBKDF1_Op is the legacy single-hash PBKDF1 construction.
type KDF_PBKDF1_Op struct{ pbkdfLike }

func NewKDFPBKDF1Op(password, salt []byte, iterations int, digestType DigestID, keySize int, modifier []byte) *KDF_PBKDF1_Op {
	return &KDF_PBKDF1_Op{pbkdfLike{Base: NewBase(KDF_PBKDF1, modifier), Password: password, Salt: salt, Iterations: iterations, DigestType: digestType, KeySize: keySize}}
}
func (o *KDF_PBKDF1_Op) AlgorithmString() string { return string(o.DigestType) }
func (o *KDF_PBKDF1_Op) ToString() string {
	return fmt.Sprintf("KDF_PBKDF1(password=%s, salt=%s, iterations=%d, digestType=%s, keySize=%d, modifier=%s)",
		hex.EncodeToString(o.Password), hex.EncodeToString(o.Salt), o.Iterations, o.DigestType, o.KeySize, o.modifierHex())
}
func (o *KDF_PBKDF1_Op) ToJSON() map[string]any {
	return map[string]any{"password": hex.EncodeToString(o.Password), "salt": hex.EncodeToString(o.Salt), "iterations": o.Iterations, "digestType": string(o.DigestType), "keySize": o.KeySize}
}
func (o *KDF_PBKDF1_Op) Equal(other Operation) bool {
	oo, ok := other.(*KDF_PBKDF1_Op)
	return ok && string(o.Password) == string(oo.Password) && string(o.Salt) == string(oo.Salt) &&
		o.Iterations == oo.Iterations && o.DigestType == oo.DigestType && o.KeySize == oo.KeySize && o.EqualModifier(oo.Base)
}

// KDF_PBKDF2_Op is RFC 2898 PBKDF2.
type KDF_PBKDF2_Op struct{ pbkdfLike }

func NewKDFPBKDF2Op(password, salt []byte, iterations int, digestType DigestID, keySize int, modifier []byte) *KDF_PBKDF2_Op {
	return &KDF_PBKDF2_Op{pbkdfLike{Base: NewBase(KDF_PBKDF2, modifier), Password: password, Salt: salt, Iterations: iterations, DigestType: digestType, KeySize: keySize}}
}
func (o *KDF_PBKDF2_Op) AlgorithmString() string { return string(o.DigestType) }
func (o *KDF_PBKDF2_Op) ToString() string {
	return fmt.Sprintf("KDF_PBKDF2(password=%s, salt=%s, iterations=%d, digestType=%s, keySize=%d, modifier=%s)",
		hex.EncodeToString(o.Password), hex.EncodeToString(o.Salt), o.Iterations, o.DigestType, o.KeySize, o.modifierHex())
}
func (o *KDF_PBKDF2_Op) ToJSON() map[string]any {
	return map[string]any{"password": hex.EncodeToString(o.Password), "salt": hex.EncodeToString(o.Salt), "iterations": o.Iterations, "digestType": string(o.DigestType), "keySize": o.KeySize}
}
func (o *KDF_PBKDF2_Op) Equal(other Operation) bool {
	oo, ok := other.(*KDF_PBKDF2_Op)
	return ok && string(o.Password) == string(oo.Password) && string(o.Salt) == string(oo.Salt) &&
		o.Iterations == oo.Iterations && o.DigestType == oo.DigestType && o.KeySize == oo.KeySize && o.EqualModifier(oo.Base)
}

type KDF_ARGON2_Op struct {
	Base
	Password, Salt []byte
	Type           string // "argon2i" | "argon2d" | "argon2id"
	Threads        uint8
	Memory         uint32
	Iterations     uint32
	KeySize        int
}

func NewKDFArgon2Op(password, salt []byte, typ string, threads uint8, memory, iterations uint32, keySize int, modifier []byte) *KDF_ARGON2_Op {
	return &KDF_ARGON2_Op{Base: NewBase(KDF_ARGON2, modifier), Password: password, Salt: salt, Type: typ, Threads: threads, Memory: memory, Iterations: iterations, KeySize: keySize}
}
func (o *KDF_ARGON2_Op) AlgorithmString() string { return o.Type }
func (o *KDF_ARGON2_Op) ToString() string {
	return fmt.Sprintf("KDF_ARGON2(password=%s, salt=%s, type=%s, threads=%d, memory=%d, iterations=%d, keySize=%d, modifier=%s)",
		hex.EncodeToString(o.Password), hex.EncodeToString(o.Salt), o.Type, o.Threads, o.Memory, o.Iterations, o.KeySize, o.modifierHex())
}
func (o *KDF_ARGON2_Op) ToJSON() map[string]any {
	return map[string]any{"password": hex.EncodeToString(o.Password), "salt": hex.EncodeToString(o.Salt), "type": o.Type, "threads": o.Threads, "memory": o.Memory, "iterations": o.Iterations, "keySize": o.KeySize}
}
func (o *KDF_ARGON2_Op) Equal(other Operation) bool {
	oo, ok := other.(*KDF_ARGON2_Op)
	return ok && string(o.Password) == string(oo.Password) && string(o.Salt) == string(oo.Salt) &&
		o.Type == oo.Type && o.Threads == oo.Threads && o.Memory == oo.Memory && o.Iterations == oo.Iterations &&
		o.KeySize == oo.KeySize && o.EqualModifier(oo.Base)
}

type KDF_SSH_Op struct {
	Base
	Key, XCGHash, SessionID []byte
	DigestType              DigestID
	KeyType                 byte
	KeySize                 int
}

func NewKDFSSHOp(key, xcgHash, sessionID []byte, digestType DigestID, keyType byte, keySize int, modifier []byte) *KDF_SSH_Op {
	return &KDF_SSH_Op{Base: NewBase(KDF_SSH, modifier), Key: key, XCGHash: xcgHash, SessionID: sessionID, DigestType: digestType, KeyType: keyType, KeySize: keySize}
}
func (o *KDF_SSH_Op) AlgorithmString() string { return string(o.DigestType) }
func (o *KDF_SSH_Op) ToString() string {
	return fmt.Sprintf("KDF_SSH(key=%s, xcgHash=%s, sessionID=%s, digestType=%s, keyType=%d, keySize=%d, modifier=%s)",
		hex.EncodeToString(o.Key), hex.EncodeToString(o.XCGHash), hex.EncodeToString(o.SessionID), o.DigestType, o.KeyType, o.KeySize, o.modifierHex())
}
func (o *KDF_SSH_Op) ToJSON() map[string]any {
	return map[string]any{"key": hex.EncodeToString(o.Key), "xcgHash": hex.EncodeToString(o.XCGHash), "sessionID": hex.EncodeToString(o.SessionID), "digestType": string(o.DigestType), "keyType": o.KeyType, "keySize": o.KeySize}
}
func (o *KDF_SSH_Op) Equal(other Operation) bool {
	oo, ok := other.(*KDF_SSH_Op)
	return ok && string(o.Key) == string(oo.Key) && string(o.XCGHash) == string(oo.XCGHash) &&
		string(o.SessionID) == string(oo.SessionID) && o.DigestType == oo.DigestType && o.KeyType == oo.KeyType &&
		o.KeySize == oo.KeySize && o.EqualModifier(oo.Base)
}

type KDF_TLS1_PRF_Op struct {
	Base
	Secret, Seed []byte
	DigestType   DigestID
	KeySize      int
}

func NewKDFTLS1PRFOp(secret, seed []byte, digestType DigestID, keySize int, modifier []byte) *KDF_TLS1_PRF_Op {
	return &KDF_TLS1_PRF_Op{Base: NewBase(KDF_TLS1_PRF, modifier), Secret: secret, Seed: seed, DigestType: digestType, KeySize: keySize}
}
func (o *KDF_TLS1_PRF_Op) AlgorithmString() string { return string(o.DigestType) }
func (o *KDF_TLS1_PRF_Op) ToString() string {
	return fmt.Sprintf("KDF_TLS1_PRF(secret=%s, seed=%s, digestType=%s, keySize=%d, modifier=%s)",
		hex.EncodeToString(o.Secret), hex.EncodeToString(o.Seed), o.DigestType, o.KeySize, o.modifierHex())
}
func (o *KDF_TLS1_PRF_Op) ToJSON() map[string]any {
	return map[string]any{"secret": hex.EncodeToString(o.Secret), "seed": hex.EncodeToString(o.Seed), "digestType": string(o.DigestType), "keySize": o.KeySize}
}
func (o *KDF_TLS1_PRF_Op) Equal(other Operation) bool {
	oo, ok := other.(*KDF_TLS1_PRF_Op)
	return ok && string(o.Secret) == string(oo.Secret) && string(o.Seed) == string(oo.Seed) &&
		o.DigestType == oo.DigestType && o.KeySize == oo.KeySize && o.EqualModifier(oo.Base)
}

type KDF_X963_Op struct {
	Base
	Secret, Info []byte
	DigestType   DigestID
	KeySize      int
}

func NewKDFX963Op(secret, info []byte, digestType DigestID, keySize int, modifier []byte) *KDF_X963_Op {
	return &KDF_X963_Op{Base: NewBase(KDF_X963, modifier), Secret: secret, Info: info, DigestType: digestType, KeySize: keySize}
}
func (o *KDF_X963_Op) AlgorithmString() string { return string(o.DigestType) }
func (o *KDF_X963_Op) ToString() string {
	return fmt.Sprintf("KDF_X963(secret=%s, info=%s, digestType=%s, keySize=%d, modifier=%s)",
		hex.EncodeToString(o.Secret), hex.EncodeToString(o.Info), o.DigestType, o.KeySize, o.modifierHex())
}
func (o *KDF_X963_Op) ToJSON() map[string]any {
	return map[string]any{"secret": hex.EncodeToString(o.Secret), "info": hex.EncodeToString(o.Info), "digestType": string(o.DigestType), "keySize": o.KeySize}
}
func (o *KDF_X963_Op) Equal(other Operation) bool {
	oo, ok := other.(*KDF_X963_Op)
	return ok && string(o.Secret) == string(oo.Secret) && string(o.Info) == string(oo.Info) &&
		o.DigestType == oo.DigestType && o.KeySize == oo.KeySize && o.EqualModifier(oo.Base)
}

type KDF_BCRYPT_Op struct {
	Base
	Secret, Salt []byte
	DigestType   DigestID
	Cost         int
	KeySize      int
}

func NewKDFBcryptOp(secret, salt []byte, digestType DigestID, cost, keySize int, modifier []byte) *KDF_BCRYPT_Op {
	return &KDF_BCRYPT_Op{Base: NewBase(KDF_BCRYPT, modifier), Secret: secret, Salt: salt, DigestType: digestType, Cost: cost, KeySize: keySize}
}
func (o *KDF_BCRYPT_Op) AlgorithmString() string { return string(o.DigestType) }
func (o *KDF_BCRYPT_Op) ToString() string {
	return fmt.Sprintf("KDF_BCRYPT(secret=%s, salt=%s, digestType=%s, cost=%d, keySize=%d, modifier=%s)",
		hex.EncodeToString(o.Secret), hex.EncodeToString(o.Salt), o.DigestType, o.Cost, o.KeySize, o.modifierHex())
}
func (o *KDF_BCRYPT_Op) ToJSON() map[string]any {
	return map[string]any{"secret": hex.EncodeToString(o.Secret), "salt": hex.EncodeToString(o.Salt), "digestType": string(o.DigestType), "cost": o.Cost, "keySize": o.KeySize}
}
func (o *KDF_BCRYPT_Op) Equal(other Operation) bool {
	oo, ok := other.(*KDF_BCRYPT_Op)
	return ok && string(o.Secret) == string(oo.Secret) && string(o.Salt) == string(oo.Salt) &&
		o.DigestType == oo.DigestType && o.Cost == oo.Cost && o.KeySize == oo.KeySize && o.EqualModifier(oo.Base)
}

// SP800108Mech carries SP 800-108's mode switch (§9.7 supplemented
// behavior): Mode==true selects counter mode with Type as the PRF's
// digest id; Mode==false selects feedback/pipeline mode. The executor's
// digest filter gates on Type in both modes.
type SP800108Mech struct {
	Mode bool
	Type DigestID
}

type KDF_SP_800_108_Op struct {
	Base
	Key, Label, Context []byte
	Mech                 SP800108Mech
	KeySize              int
}

func NewKDFSP800108Op(key, label, context []byte, mech SP800108Mech, keySize int, modifier []byte) *KDF_SP_800_108_Op {
	return &KDF_SP_800_108_Op{Base: NewBase(KDF_SP_800_108, modifier), Key: key, Label: label, Context: context, Mech: mech, KeySize: keySize}
}
func (o *KDF_SP_800_108_Op) AlgorithmString() string { return string(o.Mech.Type) }
func (o *KDF_SP_800_108_Op) ToString() string {
	return fmt.Sprintf("KDF_SP_800_108(key=%s, label=%s, context=%s, mode=%v, type=%s, keySize=%d, modifier=%s)",
		hex.EncodeToString(o.Key), hex.EncodeToString(o.Label), hex.EncodeToString(o.Context), o.Mech.Mode, o.Mech.Type, o.KeySize, o.modifierHex())
}
func (o *KDF_SP_800_108_Op) ToJSON() map[string]any {
	return map[string]any{"key": hex.EncodeToString(o.Key), "label": hex.EncodeToString(o.Label), "context": hex.EncodeToString(o.Context), "mode": o.Mech.Mode, "type": string(o.Mech.Type), "keySize": o.KeySize}
}
func (o *KDF_SP_800_108_Op) Equal(other Operation) bool {
	oo, ok := other.(*KDF_SP_800_108_Op)
	return ok && string(o.Key) == string(oo.Key) && string(o.Label) == string(oo.Label) &&
		string(o.Context) == string(oo.Context) && o.Mech == oo.Mech && o.KeySize == oo.KeySize && o.EqualModifier(oo.Base)
}
