// compare.go: the default cross-module comparator (§4.5) and the
// Abort reporter (§6, §7, §9 "Abort semantics").
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package executor

import (
	"fmt"
	"os"
	"strings"
)

// exitFunc is what Abort calls after flushing its diagnostic. Tests
// substitute a non-terminating stand-in; production wiring leaves it
// as os.Exit, matching §6's "process termination" contract.
var exitFunc = os.Exit

// compare dispatches to the family's own Compare hook. Most families
// get defaultCompare; ECC_GenerateKeyPair and DH_GenerateKeyPair
// install noopCompare (§4.3, §8 P5).
func (e *Executor) compare(policy Policy, tasks []task, results []resultPair) {
	policy.Compare(e, policy, tasks, results)
}

// defaultCompare is the comparator every family gets unless its Policy
// overrides Compare (§4.5). It honors dontCompare(tasks[0].op) before
// doing any pairwise work, then walks present results in dispatch
// order and aborts on the first disagreement.
func defaultCompare(e *Executor, policy Policy, tasks []task, results []resultPair) {
	if policy.DontCompare(tasks[0].op) {
		return
	}

	var have []resultPair
	for _, rp := range results {
		if rp.ok {
			have = append(have, rp)
		}
	}
	if len(have) < 2 {
		return
	}

	for i := 1; i < len(have); i++ {
		prev, cur := have[i-1], have[i]
		if prev.result.Equal(cur.result) {
			continue
		}
		fmt.Printf(
			"Difference detected\n\nOperation: %s\nModule %s result: %s\nModule %s   result: %s\n",
			tasks[0].op.ToString(),
			prev.mod.Name(), prev.result.ToString(),
			cur.mod.Name(), cur.result.ToString(),
		)
		Abort([]task{{mod: prev.mod, op: tasks[0].op}, {mod: cur.mod, op: tasks[0].op}}, "difference")
		return
	}
}

// noopCompare is installed for families whose generation is
// inherently non-deterministic across correct backends (§4.3
// "ECC_GenerateKeyPair and DH_GenerateKeyPair override it to a
// no-op").
func noopCompare(*Executor, Policy, []task, []resultPair) {}

// Abort formats the exact diagnostic line §6 specifies, flushes
// stdout, and terminates the process.
func Abort(tasks []task, reason string) {
	names := sortedModuleNames(tasks)
	op := tasks[0].op
	fmt.Printf("Assertion failure: %s-%s-%s-%s\n", strings.Join(names, "-"), op.Name(), op.AlgorithmString(), reason)
	os.Stdout.Sync()
	exitFunc(1)
}

// abortOn is the correctness-violation path (§7c): a per-operation
// test failed. It reports at the index where the violation was
// detected rather than waiting for the full task list to finish.
func (e *Executor) abortOn(tasks []task, results []resultPair, idx int, reason string) {
	fmt.Printf("Correctness violation at task %d: %s\n", idx, tasks[idx].op.ToString())
	Abort(tasks[:idx+1], reason)
}
