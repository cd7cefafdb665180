// Package simdcrypto wires in the retrieval pack's vectorized/fast-path
// libraries: minio/sha256-simd and zeebo/blake3 for hashing,
// minio/highwayhash for a keyed MAC, and holiman/uint256 for a
// fixed-width BignumCalc fast path. Its coverage is deliberately
// narrow — it exists to give the reference backend something genuinely
// different to disagree with, not to reimplement it.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package simdcrypto

import (
	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

const ID operation.ModuleID = 2

type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) ID() operation.ModuleID          { return ID }
func (m *Module) Name() string                    { return "simdcrypto" }
func (m *Module) SupportsModularBignumCalc() bool { return true }

func (m *Module) Dispatch(op operation.Operation) (component.Result, error) {
	switch o := op.(type) {
	case *operation.DigestOp:
		return dispatchDigest(o)
	case *operation.CMACOp:
		return dispatchCMAC(o)
	case *operation.BignumCalcOp:
		return dispatchBignumCalc(o)
	default:
		return nil, nil
	}
}
