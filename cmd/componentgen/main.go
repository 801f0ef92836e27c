/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command componentgen writes accessor tables for the component types of a
// package, so the generated factory can skip reflection on the hot path.
//
//	//go:generate go run github.com/suparena/componentstore/cmd/componentgen -dir .
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/suparena/componentstore"
	"github.com/suparena/componentstore/config"
	"github.com/suparena/componentstore/processor"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	dirFlag     = flag.String("dir", ".", "Package directory to scan")
	outFlag     = flag.String("out", processor.DefaultOutput, "Generated file name, relative to -dir")
	typesFlag   = flag.String("types", "", "Comma-separated type names to generate (default: all components)")
	levelFlag   = flag.String("log-level", "info", "Log level: debug, info, warn or error")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := componentstore.GetVersionInfo()
		fmt.Printf("componentgen version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	logger, err := config.NewLogger(*levelFlag, config.LogFormatText, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "componentgen: %v\n", err)
		os.Exit(2)
	}

	var types []string
	if *typesFlag != "" {
		for _, name := range strings.Split(*typesFlag, ",") {
			if name = strings.TrimSpace(name); name != "" {
				types = append(types, name)
			}
		}
	}

	cfg := processor.Config{Dir: *dirFlag, Output: *outFlag, Types: types, Logger: logger}
	if err := processor.Run(cfg); err != nil {
		logger.Error("Generation failed.", "dir", *dirFlag, "error", err)
		os.Exit(1)
	}
}
