package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lint381/internal/config"
	"lint381/internal/diag"
	"lint381/internal/diagfmt"
	"lint381/internal/driver"
	"lint381/internal/lint"
	"lint381/internal/rules"
	"lint381/internal/version"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [file|directory]...",
		Short: "Lint C and C++ files",
		Long: `Lint the given files, or every C and C++ source under the given directories.
Without arguments the current directory is checked. The exit code is 1 when any
problem is reported or a file could not be linted.`,
		RunE: runCheck,
	}
	f := cmd.Flags()
	f.String("lang", "auto", "force the language (auto|c|cpp)")
	f.String("format", "pretty", "output format (pretty|short|json|sarif)")
	f.Int("jobs", 0, "max files linted in parallel (0=config or GOMAXPROCS)")
	f.Bool("parallel-rules", false, "evaluate the rules of one file concurrently")
	f.StringSlice("disable", nil, "rule IDs to skip, in addition to the config")
	f.Bool("cache", false, "reuse results from the on-disk cache")
	f.Bool("clear-cache", false, "empty the on-disk cache before linting (implies --cache)")
	f.String("ui", "auto", "progress view (auto|on|off)")
	f.String("config", "", "config file (default: nearest "+config.FileName+")")
	f.Bool("hints", true, "print suggested replacements")
	f.Int8("context", 0, "source lines shown above each excerpt")
	f.String("path-mode", "auto", "how file paths are printed (auto|absolute|relative|basename)")
	return cmd
}

type checkFlags struct {
	lang          string
	format        string
	jobs          int
	parallelRules bool
	disable       []string
	cache         bool
	clearCache    bool
	ui            uiMode
	configPath    string
	hints         bool
	context       int8
	pathMode      diagfmt.PathMode

	quiet          bool
	timings        bool
	maxDiagnostics int
}

func readCheckFlags(cmd *cobra.Command) (checkFlags, error) {
	var (
		cf  checkFlags
		err error
	)
	f := cmd.Flags()
	if cf.lang, err = f.GetString("lang"); err != nil {
		return cf, fmt.Errorf("failed to get lang flag: %w", err)
	}
	if cf.format, err = f.GetString("format"); err != nil {
		return cf, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch cf.format {
	case "pretty", "short", "json", "sarif":
	default:
		return cf, fmt.Errorf("unknown format: %s", cf.format)
	}
	if cf.jobs, err = f.GetInt("jobs"); err != nil {
		return cf, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if cf.parallelRules, err = f.GetBool("parallel-rules"); err != nil {
		return cf, fmt.Errorf("failed to get parallel-rules flag: %w", err)
	}
	if cf.disable, err = f.GetStringSlice("disable"); err != nil {
		return cf, fmt.Errorf("failed to get disable flag: %w", err)
	}
	if cf.cache, err = f.GetBool("cache"); err != nil {
		return cf, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if cf.clearCache, err = f.GetBool("clear-cache"); err != nil {
		return cf, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	cf.cache = cf.cache || cf.clearCache
	uiStr, err := f.GetString("ui")
	if err != nil {
		return cf, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if cf.ui, err = readUIMode(uiStr); err != nil {
		return cf, err
	}
	if cf.configPath, err = f.GetString("config"); err != nil {
		return cf, fmt.Errorf("failed to get config flag: %w", err)
	}
	if cf.hints, err = f.GetBool("hints"); err != nil {
		return cf, fmt.Errorf("failed to get hints flag: %w", err)
	}
	if cf.context, err = f.GetInt8("context"); err != nil {
		return cf, fmt.Errorf("failed to get context flag: %w", err)
	}
	pathStr, err := f.GetString("path-mode")
	if err != nil {
		return cf, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if cf.pathMode, err = diagfmt.ParsePathMode(pathStr); err != nil {
		return cf, err
	}

	pf := cmd.Root().PersistentFlags()
	if cf.quiet, err = pf.GetBool("quiet"); err != nil {
		return cf, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if cf.timings, err = pf.GetBool("timings"); err != nil {
		return cf, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if cf.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return cf, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return cf, nil
}

// loadConfig reads --config, or discovers the file governing the first path.
func loadConfig(cf checkFlags, paths []string) (config.Config, error) {
	if cf.configPath != "" {
		return config.Load(cf.configPath)
	}
	return config.Discover(paths[0])
}

// buildOptions merges config values with flags; flags win when set.
func buildOptions(cmd *cobra.Command, cf checkFlags, cfg config.Config) (driver.Options, error) {
	opts := driver.Options{
		Disable:        slices.Concat(cfg.Lint.Disable, cf.disable),
		Severity:       cfg.Severities(),
		Jobs:           cfg.Lint.Jobs,
		ParallelRules:  cfg.Lint.ParallelRules || cf.parallelRules,
		MaxDiagnostics: cfg.Lint.MaxDiagnostics,
		TabWidth:       cfg.Lint.TabWidth,
		Version:        version.Get().Version,
		Timings:        cf.timings,
	}

	lang, err := cfg.Language()
	if err != nil {
		return opts, err
	}
	if cf.lang != "auto" {
		if lang, err = lint.ParseLanguage(cf.lang); err != nil {
			return opts, err
		}
	}
	opts.Lang = lang

	if cmd.Flags().Changed("jobs") {
		opts.Jobs = cf.jobs
	}
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		opts.MaxDiagnostics = cf.maxDiagnostics
	}
	if opts.Jobs < 0 || opts.MaxDiagnostics < 0 {
		return opts, fmt.Errorf("--jobs and --max-diagnostics must not be negative")
	}

	if wd, err := os.Getwd(); err == nil {
		opts.BaseDir = wd
	}
	return opts, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cf, err := readCheckFlags(cmd)
	if err != nil {
		return err
	}
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	cfg, err := loadConfig(cf, paths)
	if err != nil {
		return err
	}
	opts, err := buildOptions(cmd, cf, cfg)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	if !cf.quiet {
		unknown := cfg.UnknownRules(rules.All())
		for _, id := range cf.disable {
			if _, ok := rules.All().Lookup(id); !ok && !slices.Contains(unknown, id) {
				unknown = append(unknown, id)
			}
		}
		if len(unknown) > 0 {
			fmt.Fprintf(stderr, "warning: unknown rule IDs: %s\n", strings.Join(unknown, ", "))
		}
	}

	if cf.cache {
		cache, err := driver.OpenDiskCache("lint381")
		if err != nil {
			// без кэша проверка всё равно работает
			if !cf.quiet {
				fmt.Fprintf(stderr, "warning: disk cache disabled: %v\n", err)
			}
		} else {
			opts.Cache = cache
			if cf.clearCache {
				if err := cache.DropAll(); err != nil {
					return fmt.Errorf("failed to clear cache: %w", err)
				}
			}
		}
	}

	files, err := driver.Collect(paths)
	if err != nil {
		return err
	}

	began := time.Now()
	var results []*driver.FileResult
	if shouldUseTUI(cf.ui, cmd.OutOrStdout(), cf.format, len(files)) {
		title := fmt.Sprintf("Linting %s", strings.Join(paths, " "))
		results, err = runLintWithUI(cmd.Context(), cmd.OutOrStdout(), title, files, opts)
	} else {
		results, err = driver.LintFiles(cmd.Context(), files, opts)
	}
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	if err := writeReport(cmd, cf, opts, results); err != nil {
		return err
	}
	if cf.timings {
		printTimings(stderr, results, time.Since(began))
	}

	if !driver.Summarize(results).Clean() {
		return errFindings
	}
	return nil
}

func writeReport(cmd *cobra.Command, cf checkFlags, opts driver.Options, results []*driver.FileResult) error {
	out := cmd.OutOrStdout()
	reports := driver.Reports(results)

	switch cf.format {
	case "json":
		return diagfmt.JSON(out, reports, diagfmt.JSONOpts{
			PathMode: cf.pathMode,
			BaseDir:  opts.BaseDir,
		})
	case "sarif":
		return diagfmt.Sarif(out, reports, diagfmt.SarifRunMeta{
			ToolName:       "lint381",
			ToolVersion:    opts.Version,
			InvocationArgs: os.Args,
			Rules:          ruleMetas(),
			PathMode:       cf.pathMode,
			BaseDir:        opts.BaseDir,
		})
	case "short":
		return writeShort(out, cmd.ErrOrStderr(), results)
	default:
		color, err := useColor(cmd, out)
		if err != nil {
			return err
		}
		return diagfmt.Pretty(out, reports, diagfmt.PrettyOpts{
			Color:     color,
			Context:   cf.context,
			PathMode:  cf.pathMode,
			BaseDir:   opts.BaseDir,
			ShowHints: cf.hints,
			Summary:   !cf.quiet,
		})
	}
}

// writeShort prints one line per diagnostic on out and file failures on errOut.
func writeShort(out, errOut io.Writer, results []*driver.FileResult) error {
	var all []diag.Diagnostic
	for _, r := range results {
		if r.Failed() {
			fmt.Fprintf(errOut, "%s: error: %v\n", filepath.ToSlash(r.Path), r.Err)
			continue
		}
		all = append(all, r.Diagnostics()...)
	}
	if text := diag.FormatShort(all); text != "" {
		if _, err := fmt.Fprintln(out, text); err != nil {
			return err
		}
	}
	return nil
}

func ruleMetas() []lint.Meta {
	rs := rules.All().Rules()
	metas := make([]lint.Meta, len(rs))
	for i, r := range rs {
		metas[i] = r.Meta()
	}
	return metas
}
