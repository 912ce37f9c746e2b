// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/svlint/svlint/cmd/internal/env"
	"github.com/svlint/svlint/config"
	"github.com/svlint/svlint/format"
	internallogging "github.com/svlint/svlint/internal/logging"
	"github.com/svlint/svlint/internal/svlexer"
	"github.com/svlint/svlint/internal/telemetry"
	"github.com/svlint/svlint/linter"
	"github.com/svlint/svlint/lintrule"
	"github.com/svlint/svlint/loader"
	"github.com/svlint/svlint/logging"
	"github.com/svlint/svlint/presentation"
	"github.com/svlint/svlint/registry"
	_ "github.com/svlint/svlint/rules"
	"github.com/svlint/svlint/waiver"
)

type lintParams struct {
	ruleSet           string
	rules             string
	rulesConfig       string
	rulesConfigSearch bool
	waiverFiles       repeatedStringFlag
	showContext       bool
	format            string
	parseFatal        bool
	lintFatal         bool
	ignore            []string
	logLevel          string
}

func newLintParams() lintParams {
	return lintParams{
		waiverFiles: newRepeatedStringFlag(nil),
	}
}

// lintOutcome is the per-file result a worker sends back to the
// collector: either a populated set of rule statuses, or a fatal error
// that should escalate the whole run to exit code 2.
type lintOutcome struct {
	path     string
	statuses []lintrule.RuleStatus
	err      error
}

// newLogger builds the Logger runLint uses; a package-level var so
// tests can substitute a buffering logger and assert on its entries.
var newLogger = func(level string) (logging.Logger, error) {
	lvl, err := internallogging.GetLevel(level)
	if err != nil {
		return nil, err
	}
	log := logging.New()
	log.SetFormatter(internallogging.GetFormatter("text", time.RFC3339))
	log.SetLevel(lvl)
	return log, nil
}

func runLint(p lintParams, args []string) (int, error) {
	if len(args) == 0 {
		return 2, errors.New("specify at least one file or directory")
	}

	log, err := newLogger(p.logLevel)
	if err != nil {
		return 2, err
	}

	var filter loader.Filter
	for _, name := range p.ignore {
		f := loader.GlobExcludeName(name, 1)
		if filter == nil {
			filter = f
		} else {
			prev := filter
			filter = func(abspath string, info os.FileInfo, depth int) bool {
				return prev(abspath, info, depth) || f(abspath, info, depth)
			}
		}
	}

	paths, err := loader.SourceFiles(args, filter)
	if err != nil {
		return 2, err
	}
	if len(paths) == 0 {
		return 2, fmt.Errorf("no source files found under %v", args)
	}
	log.Debug("discovered %d source file(s) under %v", len(paths), args)

	cfg, err := config.Resolve(config.Options{
		RuleSet:           p.ruleSet,
		Rules:             p.rules,
		RulesConfig:       p.rulesConfig,
		RulesConfigSearch: p.rulesConfigSearch,
		WaiverFiles:       p.waiverFiles.v,
		LintTarget:        paths[0],
	})
	if err != nil {
		return 2, err
	}

	waiverFileContents := make([]string, 0, len(cfg.WaiverFiles))
	for _, wf := range cfg.WaiverFiles {
		raw, err := os.ReadFile(wf)
		if err != nil {
			return 2, err
		}
		waiverFileContents = append(waiverFileContents, string(raw))
	}
	activeRules := map[string]bool{}
	for _, id := range cfg.Enabled() {
		activeRules[id] = true
	}
	log.Debug("resolved configuration: %d rule(s) active, %d waiver file(s)", len(activeRules), len(cfg.WaiverFiles))

	metrics := telemetry.New()

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}
	log.Debug("linting with %d worker(s)", numWorkers)

	jobs := make(chan string)
	results := make(chan lintOutcome)
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- lintOne(path, cfg, activeRules, waiverFileContents, metrics, log)
			}
		}()
	}
	go func() {
		for _, path := range paths {
			jobs <- path
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	statusesByFile := map[string][]lintrule.RuleStatus{}
	var fatalErr error
	anyViolations := false
	for out := range results {
		if out.err != nil {
			log.Error("linting %s: %v", out.path, out.err)
			fatalErr = out.err
			continue
		}
		statusesByFile[out.path] = out.statuses
		for _, s := range out.statuses {
			if len(s.Violations) > 0 {
				anyViolations = true
			}
		}
	}
	if fatalErr != nil {
		return 2, fatalErr
	}
	log.Info("linted %d file(s), violations found: %v", len(paths), anyViolations)

	if err := printResults(p, statusesByFile, metrics); err != nil {
		return 2, err
	}

	if anyViolations && p.lintFatal {
		return 1, nil
	}
	return 0, nil
}

func lintOne(path string, cfg *registry.Configuration, activeRules map[string]bool, waiverFileContents []string, metrics *telemetry.Registry, log logging.Logger) lintOutcome {
	log.Debug("linting %s", path)
	contents, err := os.ReadFile(path)
	if err != nil {
		return lintOutcome{path: path, err: err}
	}

	structure := svlexer.Lex(path, contents)

	var externalWaivers *waiver.Map
	if len(waiverFileContents) > 0 {
		externalWaivers = waiver.NewMap()
		for _, content := range waiverFileContents {
			if err := waiver.ApplyExternalWaivers(externalWaivers, activeRules, path, content); err != nil {
				return lintOutcome{path: path, err: err}
			}
		}
	}

	l := &linter.Linter{Config: cfg, ExternalWaivers: externalWaivers}

	start := time.Now()
	result, err := l.Lint(structure, path)
	if err != nil {
		return lintOutcome{path: path, err: err}
	}
	elapsed := time.Since(start)

	violationsByRule := map[string]int{}
	for _, s := range result.Statuses {
		violationsByRule[s.RuleID] = len(s.Violations)
	}
	metrics.ObserveFile(elapsed, violationsByRule)

	return lintOutcome{path: path, statuses: result.Statuses}
}

func printResults(p lintParams, statusesByFile map[string][]lintrule.RuleStatus, metrics *telemetry.Registry) error {
	if p.format == "json" {
		return presentation.PrintJSON(os.Stdout, presentation.Output{Files: statusesByFile})
	}

	fmtr := format.Formatter{ShowContext: p.showContext}
	for _, path := range sortedKeys(statusesByFile) {
		statuses := statusesByFile[path]
		contents, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		structure := svlexer.Lex(path, contents)
		out := fmtr.FormatStatuses(path, structure.Contents, structure.Lines(), structure.LineColumnMap, statuses)
		if out != "" {
			fmt.Fprintln(os.Stdout, out)
		}
	}
	presentation.PrintPrettySummary(os.Stdout, statusesByFile, metrics.Snapshot())
	return nil
}

func initLint(rootCommand *cobra.Command) {
	params := newLintParams()

	lintCommand := &cobra.Command{
		Use:   "lint <path> [path [...]]",
		Short: "Lint SystemVerilog/Verilog source files",
		Long: `Lint recursively walks the given files and directories, applying the
configured rule set to every .sv/.svh/.v/.vh source file found, and
reports one diagnostic line per violation.`,

		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("specify at least one file or directory")
			}
			return env.CmdFlags.CheckEnvironmentVariables(cmd)
		},

		Run: func(_ *cobra.Command, args []string) {
			code, err := runLint(params, args)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			if code != 0 {
				os.Exit(code)
			}
		},
	}

	addRuleSetFlag(lintCommand.Flags(), &params.ruleSet)
	addRulesFlag(lintCommand.Flags(), &params.rules)
	addRulesConfigFlag(lintCommand.Flags(), &params.rulesConfig)
	addRulesConfigSearchFlag(lintCommand.Flags(), &params.rulesConfigSearch)
	addWaiverFilesFlag(lintCommand.Flags(), &params.waiverFiles)
	addShowContextFlag(lintCommand.Flags(), &params.showContext)
	addFormatFlag(lintCommand.Flags(), &params.format)
	addIgnoreFlag(lintCommand.Flags(), &params.ignore)
	addLogLevelFlag(lintCommand.Flags(), &params.logLevel)
	lintCommand.Flags().BoolVar(&params.parseFatal, "parse_fatal", false, "exit 1 when a syntax error is found")
	lintCommand.Flags().BoolVar(&params.lintFatal, "lint_fatal", false, "exit 1 when any lint violation is found")

	rootCommand.AddCommand(lintCommand)
}

func sortedKeys(m map[string][]lintrule.RuleStatus) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
