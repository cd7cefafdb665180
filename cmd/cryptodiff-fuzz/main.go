// Package main is the replay/corpus-driver entry point for the
// differential execution core. It is deliberately thin: all the actual
// fuzzing logic — task construction, dispatch, checks, comparison,
// abort — lives in package executor. This binary exists to drive that
// loop over corpus files saved from a crash or collected by `go test
// -fuzz`, and to let a CI job sweep a directory of seed inputs without
// the overhead of the Go fuzzing engine's instrumentation.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cryptofuzz-go/cryptodiff/executor"
	"github.com/cryptofuzz-go/cryptodiff/module"
	"github.com/cryptofuzz-go/cryptodiff/operation"
	"github.com/cryptofuzz-go/cryptodiff/options"
)

func main() {
	var (
		seed       = flag.Int64("seed", 1, "deterministic PRNG seed for module/substitution draws")
		modular    = flag.String("modular", "", `run the modular BignumCalc variant: "r", "p", or "2^256" (default: plain executor)`)
		minModules = flag.Int("min-modules", 2, "minimum number of tasks (after fan-out) required before a buffer's tasks run")
		noCompare  = flag.Bool("no-compare", false, "skip cross-module comparison")
		noDecrypt  = flag.Bool("no-decrypt", false, "skip the self-decrypt check")
		debug      = flag.Bool("debug", false, "print each corpus file's outcome")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: cryptodiff-fuzz [flags] corpus-file...")
		os.Exit(2)
	}

	reg := newRegistry()
	opts := options.New(
		options.WithMinModules(*minModules),
		options.WithNoCompare(*noCompare),
		options.WithNoDecrypt(*noDecrypt),
	)

	exec := buildExecutor(reg, opts, *seed, *modular)

	for _, path := range flag.Args() {
		if err := replay(exec, path, *debug); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		}
	}
}

func buildExecutor(registry *module.Registry, opts *options.Option, seed int64, modular string) *executor.Executor {
	switch modular {
	case "r":
		return executor.NewModularBLS12_381_R(registry, opts, seed)
	case "p":
		return executor.NewModularBLS12_381_P(registry, opts, seed)
	case "2^256":
		return executor.New2Exp256(registry, opts, seed)
	default:
		return executor.New(registry, opts, seed)
	}
}

// replay reads one corpus file and runs it through exec.Run. The first
// byte of the file selects the operation family (mod the closed family
// count, so any byte value is legal corpus input); the remainder is
// the Datasource buffer Run itself parses.
func replay(exec *executor.Executor, path string, debug bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("empty corpus file")
	}

	family := operation.Family(int(data[0]) % operation.NumFamilies())
	buf := data[1:]

	err = exec.Run(family, buf)
	if debug {
		fmt.Printf("%s: family=%s bufLen=%d err=%v\n", path, family, len(buf), err)
	}
	if err == executor.ErrNoTasksAccepted {
		return nil
	}
	return err
}
