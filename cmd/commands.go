// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package cmd assembles the svlint command-line interface: the root
// cobra.Command plus the lint and version subcommands.
package cmd

import (
	"github.com/spf13/cobra"
)

// RootCommand is the base CLI command every subcommand is added to.
var RootCommand = &cobra.Command{
	Use:   "svlint",
	Short: "svlint: a SystemVerilog style linter",
	Long:  "svlint lints SystemVerilog and Verilog source files against a configurable set of style rules.",
}

// Command wires every subcommand onto rootCommand, falling back to the
// package-level RootCommand when nil is passed. Exposed mainly so tests can assemble an isolated
// command tree without depending on package-level init order.
func Command(rootCommand *cobra.Command) *cobra.Command {
	if rootCommand == nil {
		rootCommand = RootCommand
	}

	initLint(rootCommand)
	initVersion(rootCommand)

	return rootCommand
}

func init() {
	Command(RootCommand)
}
