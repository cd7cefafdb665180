// Package executor implements the differential execution core: the
// Run loop that turns one fuzzer byte buffer into a sequence of
// (module, operation) tasks, dispatches each through its family's
// policy, checks self-consistency, compares results across modules,
// and aborts the process on any discrepancy (§4.1).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package executor

import (
	"encoding/json"
	"io"
	"math/rand"
	"sort"
	"time"

	goerrors "github.com/agilira/go-errors"
	"github.com/agilira/go-timecache"

	"github.com/cryptofuzz-go/cryptodiff/checks"
	"github.com/cryptofuzz-go/cryptodiff/component"
	"github.com/cryptofuzz-go/cryptodiff/datasource"
	"github.com/cryptofuzz-go/cryptodiff/module"
	"github.com/cryptofuzz-go/cryptodiff/operation"
	"github.com/cryptofuzz-go/cryptodiff/options"
	"github.com/cryptofuzz-go/cryptodiff/pools"
)

var ErrNoTasksAccepted = goerrors.New("EXE_001", "no tasks accepted for this buffer")

// task is the (module, operation) pair the Run loop assembles and
// dispatches (§3 "Task").
type task struct {
	moduleID operation.ModuleID
	mod      module.Module
	op       operation.Operation
}

// resultPair is what a dispatched task produced, or its absence (§3
// "ResultPair"). ok is false for both a gated call and a backend
// failure — §7 treats the two identically at the comparator level.
type resultPair struct {
	mod    module.Module
	result component.Result
	ok     bool
}

// Executor owns everything a Run needs across invocations: the module
// registry, the option filter, the shared pools, the family policy
// table, and the process-wide deterministic PRNG the DH ¼ gate samples
// from (§5 "process-wide state"). The ECDH_Derive substitution draws
// from the Datasource, not from this PRNG.
type Executor struct {
	Registry *module.Registry
	Options  *options.Option
	Pools    *pools.Registry
	Policies *PolicyTable

	rng    *rand.Rand
	dumpFP io.Writer

	// Modulus, when non-nil, is stamped onto every BignumCalc operation
	// this Executor builds (§4.8). Set only by the three modular
	// constructors; a plain New Executor leaves it nil.
	Modulus *component.Bignum

	// lastDispatchAt is refreshed via go-timecache on every dispatched
	// task. Nothing in the package reads it; it is not consulted for any
	// control-flow decision and is not printed.
	lastDispatchAt time.Time
}

// New builds an Executor. seed must be supplied by the caller from the
// fuzzer corpus, never the wall clock (§9 "Randomness source") — P3
// (determinism of selection) depends on it.
func New(registry *module.Registry, opts *options.Option, seed int64) *Executor {
	return &Executor{
		Registry: registry,
		Options:  opts,
		Pools:    pools.NewRegistry(),
		Policies: NewPolicyTable(),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Run drives one fuzzer buffer end to end (§4.1). The buffer is split
// into a task-scheduling Datasource (drawing module ids and the stop
// bit) and passed, itself, as the operation-construction Datasource:
// both views read off the same underlying bytes in the order the
// upstream executor's single Datasource would, since Go has no
// equivalent of that type's dual "parent"/child split — the practical
// effect (determinism, §8 P3) is identical either way.
func (e *Executor) Run(family operation.Family, buf []byte) error {
	ds := datasource.New(buf)

	policy := e.Policies.For(family)

	tasks, err := e.buildTasks(family, policy, ds)
	if err != nil && len(tasks) == 0 {
		return ErrNoTasksAccepted
	}
	if len(tasks) == 0 {
		return ErrNoTasksAccepted
	}

	e.fanOut(family, &tasks)

	if len(tasks) < e.Options.MinModules() {
		return nil
	}

	e.mutateDuplicateModifiers(tasks)

	results := make([]resultPair, len(tasks))

	for i, t := range tasks {
		e.lastDispatchAt = timecache.CachedTime()

		result, ok := policy.CallModule(e, t.mod, t.op)
		results[i] = resultPair{mod: t.mod, result: result, ok: ok}

		if ok {
			e.dumpJSON(t.op, result)
			if !e.Options.DisableTests() {
				if err := checks.Test(t.op, result); err != nil {
					e.abortOn(tasks, results, i, "correctness violation")
					return err
				}
			}
		}

		policy.Postprocess(e, t.mod, t.op, results[i])
	}

	if !e.Options.NoCompare() {
		e.compare(policy, tasks, results)
	}

	return nil
}

// buildTasks implements §4.1 steps 1-2: repeatedly draw an operation
// and a module id until the family's MaxOperations cap is hit or the
// Datasource's stop bit reads 0. An unknown or disabled module id does
// not consume a task slot — it is simply skipped and drawing continues
// from a fresh operation.
func (e *Executor) buildTasks(family operation.Family, policy Policy, ds *datasource.Source) ([]task, error) {
	var tasks []task
	maxOps := family.MaxOperations()

	for len(tasks) < maxOps {
		op, err := operation.Build(family, ds)
		if err != nil {
			break
		}
		op = policy.GetOpPostprocess(e, ds, op)

		modID, err := e.drawModuleID(ds)
		if err != nil {
			break
		}

		mod, ok := e.resolveModule(modID)
		if !ok {
			continue
		}

		tasks = append(tasks, task{moduleID: modID, mod: mod, op: op})

		stop, err := ds.GetBool()
		if err != nil || !stop {
			break
		}
	}

	return tasks, nil
}

func (e *Executor) drawModuleID(ds *datasource.Source) (operation.ModuleID, error) {
	if forced, ok := e.Options.ForceModule(); ok {
		// Consume a uint64 regardless so downstream draws stay aligned
		// with a buffer recorded under non-forced settings (§8 P3).
		_, err := ds.GetUint64()
		if err != nil {
			return 0, err
		}
		return forced, nil
	}
	raw, err := ds.GetUint64()
	if err != nil {
		return 0, err
	}
	return operation.ModuleID(raw), nil
}

func (e *Executor) resolveModule(id operation.ModuleID) (module.Module, bool) {
	if e.Options.IsModuleDisabled(id) {
		return nil, false
	}
	mod, err := e.Registry.Get(id)
	if err != nil {
		return nil, false
	}
	return mod, true
}

// fanOut implements §4.1 step 3 and §8 P6: every enabled, non-disabled
// registered module must appear at least once, running against the
// first operation drawn, even if the buffer never happened to draw
// that module's id itself.
func (e *Executor) fanOut(family operation.Family, tasks *[]task) {
	if len(*tasks) == 0 {
		return
	}
	present := make(map[operation.ModuleID]bool, len(*tasks))
	for _, t := range *tasks {
		present[t.moduleID] = true
	}
	firstOp := (*tasks)[0].op
	for _, id := range e.Registry.IDs() {
		if present[id] || e.Options.IsModuleDisabled(id) {
			continue
		}
		mod, err := e.Registry.Get(id)
		if err != nil {
			continue
		}
		*tasks = append(*tasks, task{moduleID: id, mod: mod, op: firstOp})
	}
}

// mutateDuplicateModifiers implements §4.1 step 5 / §8 P7: consecutive
// tasks on the same module with an identical modifier would otherwise
// hit a backend's internal memoization and mask real bugs, so the
// modifier is force-mutated in place.
func (e *Executor) mutateDuplicateModifiers(tasks []task) {
	for i := 1; i < len(tasks); i++ {
		prev, cur := tasks[i-1], tasks[i]
		if prev.moduleID != cur.moduleID {
			continue
		}
		prevMod := prev.op.GetModifier()
		curMod := cur.op.GetModifier()
		if string(prevMod) != string(curMod) {
			continue
		}
		if len(curMod) == 0 {
			fresh := make([]byte, 512)
			for i := range fresh {
				fresh[i] = 0x01
			}
			cur.op.SetModifier(fresh)
			continue
		}
		mutated := make([]byte, len(curMod))
		for i, b := range curMod {
			mutated[i] = byte((int(b) + 1) % 256)
		}
		cur.op.SetModifier(mutated)
	}
}

func (e *Executor) dumpJSON(op operation.Operation, result component.Result) {
	record := struct {
		Operation any `json:"operation"`
		Result    any `json:"result"`
	}{Operation: op.ToJSON(), Result: result.ToJSON()}
	b, err := json.Marshal(record)
	if err != nil {
		return
	}
	e.Options.DumpJSON(b)
}

// sortedModuleNames returns the distinct module names among tasks,
// sorted, for the Abort diagnostic's deterministic "sorted-module-
// names" segment (§6).
func sortedModuleNames(tasks []task) []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range tasks {
		if !seen[t.mod.Name()] {
			seen[t.mod.Name()] = true
			names = append(names, t.mod.Name())
		}
	}
	sort.Strings(names)
	return names
}
