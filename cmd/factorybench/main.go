/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command factorybench compares the component type factories on the
// create, copy and accessor paths.
//
// Profiling:
//
//	go build ./cmd/factorybench
//	./factorybench -profile cpu -factory generated
//	go tool pprof -http=":8000" ./factorybench cpu.pprof
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"time"

	"github.com/pkg/profile"

	"github.com/suparena/componentstore"
	"github.com/suparena/componentstore/component"
	"github.com/suparena/componentstore/config"
	tc "github.com/suparena/componentstore/internal/testcomponents"
)

var (
	factoryFlag = flag.String("factory", "all", "Factory to measure: reflect, generated or all")
	itersFlag   = flag.Int("iters", 1_000_000, "Operations per measurement")
	profileFlag = flag.String("profile", "", "Profile to write: cpu, mem or empty for none")
	pathFlag    = flag.String("profile-path", ".", "Directory for profile output")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "factorybench: %v\n", err)
		os.Exit(2)
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "factorybench: %v\n", err)
		os.Exit(2)
	}

	var factories []component.TypeFactory
	if *factoryFlag == "all" {
		factories = []component.TypeFactory{component.ReflectFactory{}, component.GeneratedFactory{}}
	} else {
		f, err := component.FactoryByName(*factoryFlag)
		if err != nil {
			logger.Error("Unknown factory.", "factory", *factoryFlag, "error", err)
			os.Exit(2)
		}
		factories = []component.TypeFactory{f}
	}

	switch *profileFlag {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*pathFlag), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(*pathFlag), profile.NoShutdownHook).Stop()
	case "":
	default:
		logger.Error("Unknown profile.", "profile", *profileFlag)
		os.Exit(2)
	}

	for _, f := range factories {
		if err := run(f, *itersFlag, logger); err != nil {
			logger.Error("Benchmark failed.", "factory", f.Name(), "error", err)
			os.Exit(1)
		}
	}
}

func run(f component.TypeFactory, iters int, logger *slog.Logger) error {
	m := componentstore.NewManager(componentstore.WithFactory(f), componentstore.WithLogger(logger))

	start := time.Now()
	ct, err := m.Type(reflect.TypeFor[tc.Basic]())
	if err != nil {
		return err
	}
	build := time.Since(start)

	name, ok := ct.PropertyInfo().Property("name")
	if !ok {
		return fmt.Errorf("%s has no name property", ct.Name())
	}

	inst, err := ct.Create()
	if err != nil {
		return err
	}

	measure := func(op string, fn func(i int) error) error {
		start := time.Now()
		for i := 0; i < iters; i++ {
			if err := fn(i); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
		elapsed := time.Since(start)
		logger.Info("Measured.",
			"factory", f.Name(), "op", op, "iters", iters,
			"total", elapsed, "per_op", elapsed/time.Duration(max(iters, 1)))
		return nil
	}

	logger.Info("Built.", "factory", f.Name(), "component", ct.Name(), "duration", build)
	if err := measure("type", func(int) error { _, err := m.Type(ct.ReflectType()); return err }); err != nil {
		return err
	}
	if err := measure("create", func(int) error { _, err := ct.Create(); return err }); err != nil {
		return err
	}
	if err := measure("copy", func(int) error { _, err := ct.Copy(inst); return err }); err != nil {
		return err
	}
	if err := measure("set", func(int) error { return name.Set(inst, "bench") }); err != nil {
		return err
	}
	return measure("get", func(int) error { _ = name.Get(inst); return nil })
}
