package driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"lint381/internal/diag"
	"lint381/internal/lexer"
	"lint381/internal/lint"
	"lint381/internal/observ"
	"lint381/internal/source"
	"lint381/internal/token"
	"lint381/internal/trace"
)

// LintFile loads, tokenizes and lints one file. Load, language and tokenizer
// failures end up in FileResult.Err; the returned error is reserved for
// cancellation and configuration mistakes.
func LintFile(ctx context.Context, path string, opts Options) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := &FileResult{Path: path, Bag: diag.NewBag(opts.MaxDiagnostics)}

	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
	}
	ctx, span := trace.Start(ctx, trace.ScopeFile, path)
	defer func() {
		span.WithExtra("diagnostics", strconv.Itoa(res.Bag.Len()))
		span.End(res.status())
		if timer != nil {
			report := timer.Report()
			res.Timing = &report
		}
	}()

	sink := opts.progress()
	started := time.Now()
	emit := func(stage Stage, status Status, err error) {
		sink.OnEvent(Event{
			File:        path,
			Stage:       stage,
			Status:      status,
			Err:         err,
			Elapsed:     time.Since(started),
			Diagnostics: res.Bag.Len(),
		})
	}
	fail := func(stage Stage, err error) (*FileResult, error) {
		res.Err = err
		emit(stage, StatusError, err)
		return res, nil
	}

	emit(StageLoad, StatusWorking, nil)
	lang, err := opts.language(path)
	if err != nil {
		return fail(StageLoad, err)
	}
	res.Lang = lang
	reg, err := opts.registry(lang)
	if err != nil {
		return nil, err
	}

	done := timer.Track("load")
	fs := source.NewFileSet()
	if opts.TabWidth > 0 {
		fs.SetTabWidth(opts.TabWidth)
	}
	if opts.BaseDir != "" {
		fs.SetBaseDir(opts.BaseDir)
	}
	id, err := fs.Load(path)
	done("")
	if err != nil {
		return fail(StageLoad, fmt.Errorf("failed to load file: %w", err))
	}
	res.File = fs.Get(id)

	src := &lint.SourceCode{Filename: path}
	kind := FileKind{Lang: lang, Header: src.IsHeaderFile()}
	key := MakeCacheKey(res.File.Hash, kind, reg.Fingerprint(), opts.Version, opts.TabWidth)
	if opts.Cache != nil {
		var payload DiskPayload
		ok, err := opts.Cache.Get(key, &payload)
		if err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache", err.Error())
		}
		if ok {
			res.Cached = true
			// запись могла прийти от другого файла с тем же содержимым
			for i := range payload.Diagnostics {
				payload.Diagnostics[i].File = path
			}
			res.add(payload.Diagnostics, &opts)
			emit(StageLint, StatusCached, nil)
			return res, nil
		}
	}

	emit(StageTokenize, StatusWorking, nil)
	toks, err := tokenizeFile(ctx, res.File, timer)
	if err != nil {
		return fail(StageTokenize, err)
	}
	res.Tokens = toks

	emit(StageLint, StatusWorking, nil)
	src.Tokens = toks
	diags, err := runRules(ctx, reg, src, opts, timer)
	if err != nil {
		return nil, err
	}

	if opts.Cache != nil {
		payload := &DiskPayload{Path: path, Language: uint8(lang), TokenCount: len(toks), Diagnostics: diags}
		if err := opts.Cache.Put(key, payload); err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache", err.Error())
		}
	}
	res.add(diags, &opts)
	emit(StageLint, StatusDone, nil)
	return res, nil
}

func tokenizeFile(ctx context.Context, file *source.File, timer *observ.Timer) ([]token.Token, error) {
	_, span := trace.Start(ctx, trace.ScopePass, "tokenize")
	done := timer.Track("tokenize")
	toks, err := lexer.TokenizeFile(file)
	if err != nil {
		done("failed")
		span.End(err.Error())
		return nil, err
	}
	note := strconv.Itoa(len(toks)) + " tokens"
	done(note)
	span.End(note)
	return toks, nil
}

func runRules(ctx context.Context, reg *lint.Registry, src *lint.SourceCode, opts Options, timer *observ.Timer) ([]diag.Diagnostic, error) {
	ctx, span := trace.Start(ctx, trace.ScopePass, "lint")
	span.WithExtra("rules", strconv.Itoa(reg.Len()))
	done := timer.Track("lint")

	var (
		diags []diag.Diagnostic
		err   error
	)
	if opts.ParallelRules {
		diags, err = reg.LintParallel(ctx, src, opts.RuleJobs)
	} else {
		diags = reg.Lint(src)
	}
	note := strconv.Itoa(len(diags)) + " diagnostics"
	done(note)
	span.End(note)
	return diags, err
}
