package driver

import (
	"context"
	"fmt"

	"lint381/internal/source"
	"lint381/internal/token"
	"lint381/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
}

// Tokenize loads path and tokenizes it without running rules. When the
// tokenizer fails the result still carries the loaded file.
func Tokenize(ctx context.Context, path string, tabWidth int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	if tabWidth > 0 {
		fs.SetTabWidth(tabWidth)
	}
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load file: %w", err)
	}
	res := &TokenizeResult{FileSet: fs, File: fs.Get(fileID)}

	ctx, span := trace.Start(ctx, trace.ScopeFile, path)
	defer span.End("")
	toks, err := tokenizeFile(ctx, res.File, nil)
	if err != nil {
		return res, err
	}
	res.Tokens = toks
	return res, nil
}
