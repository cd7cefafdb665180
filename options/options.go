// Package options implements the Option filter (§3 "Options", §6)
// that gates which modules, operation families and per-operation
// behaviors a Run is permitted to exercise.
//
// Membership tests run hot — once per drawn (module, op) pair, for
// every one of the ~40 families — so before doing an exact set lookup
// the filter asks a bloom.BloomFilter whether the id could possibly be
// disabled at all; a negative answer skips the map read entirely. On
// the sizes this filter deals with (a handful of module ids per run)
// the win is marginal, but it is the same layered-membership pattern
// the retrieval corpus itself uses for set membership, so it is kept
// here as the idiomatic default rather than a bare map.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package options

import (
	"encoding/binary"

	bloom "github.com/bits-and-blooms/bloom/v3"

	"github.com/cryptofuzz-go/cryptodiff/operation"
)

// falsePositiveRate mirrors the corpus's own bloom filter sizing
// convention: negligible false-positive probability, since a false
// positive here only costs one extra exact-map lookup, never a
// correctness problem.
const falsePositiveRate = 1e-6

// Option is the functional-options-configured filter every Run
// consults before dispatching a task (§4.1 step 3) and before running
// the default comparator (§4.5).
type Option struct {
	disabledModules map[operation.ModuleID]bool
	disabledFilter  *bloom.BloomFilter

	forceModule   operation.ModuleID
	hasForce      bool

	minModules int

	noDecrypt     bool
	noCompare     bool
	disableTests  bool
	debug         bool

	jsonDumpFunc func([]byte)

	// digests/ciphers/curves/calcOps are inclusion sets over algorithm
	// ids (§6 "Options"): nil means "everything allowed", matching the
	// same zero-value-friendly default the rest of Option uses. Once one
	// of these is set via its With* option, only the listed ids pass.
	digests  map[operation.DigestID]bool
	ciphers  map[operation.CipherID]bool
	curves   map[operation.CurveID]bool
	calcOps  map[operation.CalcOp]bool
}

// New builds an Option from functional overrides, defaulting to
// "nothing disabled, no forced module, minModules=2" — the same
// zero-value-friendly construction style as the teacher's KDFParams.
func New(opts ...func(*Option)) *Option {
	o := &Option{
		disabledModules: make(map[operation.ModuleID]bool),
		disabledFilter:  bloom.NewWithEstimates(64, falsePositiveRate),
		minModules:      2,
	}
	for _, apply := range opts {
		apply(o)
	}
	return o
}

// WithDisabledModules marks the given module ids as ineligible for
// selection (§6 "force-module / disabled-module").
func WithDisabledModules(ids ...operation.ModuleID) func(*Option) {
	return func(o *Option) {
		for _, id := range ids {
			o.disabledModules[id] = true
			o.disabledFilter.Add(moduleIDBytes(id))
		}
	}
}

// WithForceModule restricts every draw to a single module id, skipping
// the normal module-selection draw entirely (§6).
func WithForceModule(id operation.ModuleID) func(*Option) {
	return func(o *Option) { o.forceModule = id; o.hasForce = true }
}

// WithMinModules sets the minimum number of tasks a Run must hold after
// its fan-out expansion (§4.1 step 4) before any of them is executed.
func WithMinModules(n int) func(*Option) {
	return func(o *Option) { o.minModules = n }
}

// WithNoDecrypt disables the self-decrypt check (§4.4).
func WithNoDecrypt() func(*Option) { return func(o *Option) { o.noDecrypt = true } }

// WithNoCompare disables cross-module comparison entirely (§4.5).
func WithNoCompare() func(*Option) { return func(o *Option) { o.noCompare = true } }

// WithDisableTests disables the per-operation invariant checks (§4.1
// step 7).
func WithDisableTests() func(*Option) { return func(o *Option) { o.disableTests = true } }

// WithDebug sets the Debug flag (§4.1, §7). The executor does not read
// it, so it prints no operation trace.
func WithDebug() func(*Option) { return func(o *Option) { o.debug = true } }

// WithJSONDump installs the sink the Run loop writes each dispatched
// operation's JSON form to (§6 "json dump").
func WithJSONDump(sink func([]byte)) func(*Option) {
	return func(o *Option) { o.jsonDumpFunc = sink }
}

// WithDigests restricts every digest-bearing operation to the listed
// algorithm ids (§6). Calling it installs a non-nil set even if ids is
// empty, which disables every digest-bearing operation outright.
func WithDigests(ids ...operation.DigestID) func(*Option) {
	return func(o *Option) {
		o.digests = make(map[operation.DigestID]bool, len(ids))
		for _, id := range ids {
			o.digests[id] = true
		}
	}
}

// WithCiphers restricts every cipher-bearing operation to the listed
// algorithm ids (§6).
func WithCiphers(ids ...operation.CipherID) func(*Option) {
	return func(o *Option) {
		o.ciphers = make(map[operation.CipherID]bool, len(ids))
		for _, id := range ids {
			o.ciphers[id] = true
		}
	}
}

// WithCurves restricts every curve-bearing operation to the listed
// curve ids (§6).
func WithCurves(ids ...operation.CurveID) func(*Option) {
	return func(o *Option) {
		o.curves = make(map[operation.CurveID]bool, len(ids))
		for _, id := range ids {
			o.curves[id] = true
		}
	}
}

// WithCalcOps restricts BignumCalc to the listed operators (§6).
func WithCalcOps(ids ...operation.CalcOp) func(*Option) {
	return func(o *Option) {
		o.calcOps = make(map[operation.CalcOp]bool, len(ids))
		for _, id := range ids {
			o.calcOps[id] = true
		}
	}
}

func moduleIDBytes(id operation.ModuleID) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(id))
	return b
}

// IsModuleDisabled reports whether id has been excluded from
// selection.
func (o *Option) IsModuleDisabled(id operation.ModuleID) bool {
	if !o.disabledFilter.Test(moduleIDBytes(id)) {
		return false
	}
	return o.disabledModules[id]
}

// ForceModule reports the single module every draw must use, if one
// was configured.
func (o *Option) ForceModule() (operation.ModuleID, bool) { return o.forceModule, o.hasForce }

func (o *Option) MinModules() int     { return o.minModules }
func (o *Option) NoDecrypt() bool     { return o.noDecrypt }
func (o *Option) NoCompare() bool     { return o.noCompare }
func (o *Option) DisableTests() bool  { return o.disableTests }
func (o *Option) Debug() bool         { return o.debug }

// DumpJSON forwards b to the configured sink, if any (§6).
func (o *Option) DumpJSON(b []byte) {
	if o.jsonDumpFunc != nil {
		o.jsonDumpFunc(b)
	}
}

// HaveDigest reports whether id is allowed by the digest inclusion set
// (§6 "Have(id)"); an unset (nil) set allows everything.
func (o *Option) HaveDigest(id operation.DigestID) bool {
	if o.digests == nil {
		return true
	}
	return o.digests[id]
}

// HaveCipher reports whether id is allowed by the cipher inclusion set.
func (o *Option) HaveCipher(id operation.CipherID) bool {
	if o.ciphers == nil {
		return true
	}
	return o.ciphers[id]
}

// HaveCurve reports whether id is allowed by the curve inclusion set.
func (o *Option) HaveCurve(id operation.CurveID) bool {
	if o.curves == nil {
		return true
	}
	return o.curves[id]
}

// HaveCalcOp reports whether id is allowed by the BignumCalc operator
// inclusion set.
func (o *Option) HaveCalcOp(id operation.CalcOp) bool {
	if o.calcOps == nil {
		return true
	}
	return o.calcOps[id]
}
