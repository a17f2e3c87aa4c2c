package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcheck/internal/configloader"
	"github.com/yaklabco/mdcheck/internal/logging"
	"github.com/yaklabco/mdcheck/pkg/analysis"
	"github.com/yaklabco/mdcheck/pkg/config"
	"github.com/yaklabco/mdcheck/pkg/lint"
	_ "github.com/yaklabco/mdcheck/pkg/lint/rules" // Register built-in rules
	goldmarkparser "github.com/yaklabco/mdcheck/pkg/parser/goldmark"
	"github.com/yaklabco/mdcheck/pkg/reporter"
	"github.com/yaklabco/mdcheck/pkg/runner"
)

type lintFlags struct {
	format      string
	flavor      string
	ruleFormat  string
	sortBy      string
	ignore      []string
	enable      []string
	disable     []string
	jobs        int
	showContext bool
	noSummary   bool
	watch       bool
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Markdown files",
		Long:  lintLongDescription(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

func lintLongDescription() string {
	var b strings.Builder
	b.WriteString(`Lint Markdown files against the rule catalog.

By default, lints all .md and .markdown files under the current directory,
skipping hidden directories. Specify paths to lint specific files or
directories.

Examples:
  mdcheck lint                        # Lint current directory
  mdcheck lint docs/ README.md        # Lint a directory and a file
  mdcheck lint --disable MD013        # Skip the line length rule
  mdcheck lint --enable no-hard-tabs  # Rules resolve by code, name or alias
  mdcheck lint --format json          # Machine-readable output for CI
  mdcheck lint --watch docs/          # Re-lint whenever a file changes

Environment:
`)
	for _, env := range configloader.EnvVars() {
		fmt.Fprintf(&b, "  %-22s %s\n", env[0], env[1])
	}
	return strings.TrimRight(b.String(), "\n")
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "commonmark", "Markdown flavor: commonmark, gfm")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.sortBy, "sort", "count", "order of summary tables: count, alpha")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rules to enable (code, name or alias)")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rules to disable (code, name or alias)")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.showContext, "context", false, "print the flagged source line under each issue")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the summary line from text output")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-lint when files change")
}

// cliConfig builds the CLI configuration layer. Only flags the user set
// are copied, so lower layers keep their values otherwise.
func (f *lintFlags) cliConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(f.format)
		if !cfg.Format.IsValid() {
			return nil, fmt.Errorf("%w: --format %q: must be text, json or summary", ErrUsage, f.format)
		}
	}
	if changed("flavor") {
		cfg.Flavor = config.Flavor(f.flavor)
		if !cfg.Flavor.IsValid() {
			return nil, fmt.Errorf("%w: --flavor %q: must be commonmark or gfm", ErrUsage, f.flavor)
		}
	}
	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(f.ruleFormat)
		if !cfg.RuleFormat.IsValid() {
			return nil, fmt.Errorf("%w: --rule-format %q: must be name, id or combined", ErrUsage, f.ruleFormat)
		}
	}
	if changed("jobs") {
		if f.jobs < 0 {
			return nil, fmt.Errorf("%w: --jobs %d: must not be negative", ErrUsage, f.jobs)
		}
		cfg.Jobs = f.jobs
	}
	if changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if changed("enable") {
		cfg.EnableRules = f.enable
	}
	if changed("disable") {
		cfg.DisableRules = f.disable
	}

	if !analysis.SortField(f.sortBy).IsValid() {
		return nil, fmt.Errorf("%w: --sort %q: must be count or alpha", ErrUsage, f.sortBy)
	}

	return cfg, nil
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	cliCfg, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	session := &lintSession{
		out:     cmd.OutOrStdout(),
		workDir: workDir,
		paths:   args,
		loadOpts: configloader.LoadOptions{
			WorkingDir:   workDir,
			ExplicitPath: configPath,
			CLIConfig:    cliCfg,
		},
		color:       colorMode,
		showContext: flags.showContext,
		showSummary: !flags.noSummary,
		sortBy:      analysis.SortField(flags.sortBy),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flags.watch {
		return watchAndLint(ctx, session)
	}

	result, err := session.run(ctx)
	if err != nil {
		return err
	}
	return outcomeError(result)
}

// lintSession holds everything needed to lint the same inputs repeatedly.
type lintSession struct {
	out         io.Writer
	workDir     string
	paths       []string
	loadOpts    configloader.LoadOptions
	color       string
	showContext bool
	showSummary bool
	sortBy      analysis.SortField

	// loadedFrom records the config files read by the last run.
	loadedFrom []string
}

// run loads configuration, lints every discovered file and reports.
func (s *lintSession) run(ctx context.Context) (*runner.Result, error) {
	logger := logging.FromContext(ctx)

	loadResult, err := configloader.Load(ctx, s.loadOpts)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	cfg := loadResult.Config
	s.loadedFrom = loadResult.LoadedFrom

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfigSource, loadResult.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
	)

	engine := lint.NewEngine(goldmarkparser.New(string(cfg.Flavor)), lint.DefaultRegistry)
	lintRunner := runner.New(lint.NewPipeline(engine))

	runOpts := runner.Options{
		Paths:       s.paths,
		WorkingDir:  s.workDir,
		Extensions:  runner.DefaultExtensions(),
		IgnoreGlobs: cfg.Ignore,
		Jobs:        cfg.Jobs,
		Config:      cfg,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return nil, fmt.Errorf("lint run failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      s.out,
		Format:      cfg.Format,
		Color:       s.color,
		ShowContext: s.showContext,
		ShowSummary: s.showSummary,
		RuleFormat:  cfg.RuleFormat,
		SortBy:      s.sortBy,
		WorkingDir:  s.workDir,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return nil, fmt.Errorf("report results: %w", err)
	}

	logger.Debug("lint run finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldViolations, result.Stats.IssuesTotal,
		logging.FieldDuration, result.Stats.Duration,
	)

	return result, nil
}

// absPaths returns the session's inputs as absolute paths, defaulting to
// the working directory.
func (s *lintSession) absPaths() []string {
	if len(s.paths) == 0 {
		return []string{s.workDir}
	}
	result := make([]string, 0, len(s.paths))
	for _, path := range s.paths {
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.workDir, path)
		}
		result = append(result, filepath.Clean(path))
	}
	return result
}

// outcomeError converts a finished run into the error that selects the
// exit code. Unreadable files outrank violations.
func outcomeError(result *runner.Result) error {
	switch {
	case result == nil:
		return nil
	case result.HasErrors():
		return ErrFilesFailed
	case result.HasIssues():
		return ErrLintIssuesFound
	default:
		return nil
	}
}
