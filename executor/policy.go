// policy.go: the per-family policy contract (§4.3, §9 "Open per-family
// dispatch") and the table of concrete policies. The Run loop is
// family-generic; it asks PolicyTable.For(family) for the five hooks
// and never switches on a family tag itself.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package executor

import (
	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/module"
	"github.com/cryptofuzz-go/cryptodiff/operation"
)

// Policy is the five-hook contract every operation family satisfies
// (§4.3, §9). A family that needs none of the special behaviors simply
// gets a basePolicy with no overrides.
type Policy interface {
	// CallModule gates op against size caps and the option filter, then
	// dispatches to mod. The bool return is false for both "gated" and
	// "backend declined" — §7 treats them identically.
	CallModule(e *Executor, mod module.Module, op operation.Operation) (component.Result, bool)
	// Postprocess runs the sanitizer probe, pool admission and any
	// family-specific side effect (self-decrypt check, BLS pool
	// population, DH's ¼ gate) (§4.3, §4.4, §4.7).
	Postprocess(e *Executor, mod module.Module, op operation.Operation, rp resultPair)
	// DontCompare reports whether cross-module comparison should be
	// skipped for op because a correct backend may legitimately diverge
	// (§4.3, §8 P5).
	DontCompare(op operation.Operation) bool
	// Compare runs cross-module comparison, or is a no-op for families
	// whose generation step is inherently non-deterministic.
	Compare(e *Executor, policy Policy, tasks []task, results []resultPair)
	// GetOpPostprocess may substitute or rewrite an operation right
	// after it is built, before any module sees it (§4.2, §4.6, §4.8).
	GetOpPostprocess(e *Executor, ds opDatasource, op operation.Operation) operation.Operation
}

// opDatasource is the narrow slice of datasource.Source the
// ECDH_Derive substitution needs; declared locally so this file does
// not need to import datasource just for a type name used once.
type opDatasource interface {
	GetBool() (bool, error)
	GetByte() (byte, error)
	GetUint64() (uint64, error)
	GetBytes() ([]byte, error)
	GetDecimal() (string, error)
}

// basePolicy is embedded by every concrete policy and supplies the
// shared CallModule/Postprocess/Compare/GetOpPostprocess
// implementations; a family overrides only the hook it needs to
// differ on.
type basePolicy struct {
	dontCompare func(operation.Operation) bool
	compare     func(*Executor, Policy, []task, []resultPair)
	postprocess func(*Executor, module.Module, operation.Operation, resultPair)
	getOp       func(*Executor, opDatasource, operation.Operation) operation.Operation
}

func (p basePolicy) CallModule(e *Executor, mod module.Module, op operation.Operation) (component.Result, bool) {
	if !checkSizeCaps(op) {
		return nil, false
	}
	if !checkOptionFilter(e, op) {
		return nil, false
	}
	if bc, ok := op.(*operation.BignumCalcOp); ok && bc.Modulo != nil && !mod.SupportsModularBignumCalc() {
		return nil, false
	}
	result, err := mod.Dispatch(op)
	if err != nil || result == nil {
		return nil, false
	}
	return result, true
}

func (p basePolicy) Postprocess(e *Executor, mod module.Module, op operation.Operation, rp resultPair) {
	if rp.ok {
		probeResult(rp.result)
		admitToPools(e, op, rp.result)
	}
	if p.postprocess != nil {
		p.postprocess(e, mod, op, rp)
	}
}

func (p basePolicy) DontCompare(op operation.Operation) bool {
	if p.dontCompare != nil {
		return p.dontCompare(op)
	}
	return false
}

func (p basePolicy) Compare(e *Executor, policy Policy, tasks []task, results []resultPair) {
	if p.compare != nil {
		p.compare(e, policy, tasks, results)
		return
	}
	defaultCompare(e, policy, tasks, results)
}

func (p basePolicy) GetOpPostprocess(e *Executor, ds opDatasource, op operation.Operation) operation.Operation {
	if p.getOp != nil {
		return p.getOp(e, ds, op)
	}
	return op
}

func always(v bool) func(operation.Operation) bool { return func(operation.Operation) bool { return v } }

// PolicyTable maps each Family to its Policy.
type PolicyTable struct {
	byFamily map[operation.Family]Policy
}

// NewPolicyTable builds the full table (§3's closed family set). Every
// family not explicitly listed gets the all-defaults basePolicy{}.
func NewPolicyTable() *PolicyTable {
	t := &PolicyTable{byFamily: make(map[operation.Family]Policy)}

	generic := basePolicy{}

	t.byFamily[operation.SymmetricEncrypt] = basePolicy{postprocess: selfDecryptPostprocess}
	t.byFamily[operation.SymmetricDecrypt] = basePolicy{dontCompare: desEDE3WrapDontCompare}
	t.byFamily[operation.CMAC] = basePolicy{dontCompare: desEDE3WrapDontCompareCMAC}
	t.byFamily[operation.HMAC] = basePolicy{dontCompare: desEDE3WrapDontCompareHMAC}

	t.byFamily[operation.ECC_GenerateKeyPair] = basePolicy{dontCompare: always(true), compare: noopCompare}
	t.byFamily[operation.DH_GenerateKeyPair] = basePolicy{
		dontCompare: always(true),
		compare:     noopCompare,
		postprocess: dhGenerateKeyPairPostprocess,
	}

	t.byFamily[operation.ECDSA_Sign] = basePolicy{dontCompare: ecdsaSignDontCompare}
	t.byFamily[operation.BignumCalc] = basePolicy{dontCompare: bignumCalcDontCompare, getOp: bignumCalcGetOpPostprocess}

	t.byFamily[operation.ECDH_Derive] = basePolicy{getOp: ecdhDeriveGetOpPostprocess}

	t.byFamily[operation.BLS_Sign] = basePolicy{postprocess: blsSignPostprocess}

	// Every other family reuses generic unless already set above.
	for f := operation.Family(0); f < operation.Family(numFamilyCount()); f++ {
		if _, ok := t.byFamily[f]; !ok {
			t.byFamily[f] = generic
		}
	}

	return t
}

// For returns the policy for family, defaulting to an all-generic
// basePolicy if the table somehow lacks an entry (it never does after
// NewPolicyTable, but the Run loop should not panic on a future family
// the table forgot to seed).
func (t *PolicyTable) For(family operation.Family) Policy {
	if p, ok := t.byFamily[family]; ok {
		return p
	}
	return basePolicy{}
}

// numFamilyCount hides the operation package's unexported sentinel
// behind a small accessor so this file can iterate every family
// without operation needing to export an implementation detail.
func numFamilyCount() int { return operation.NumFamilies() }
