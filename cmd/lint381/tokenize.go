package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lint381/internal/config"
	"lint381/internal/diagfmt"
	"lint381/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file",
		Short: "Print the tokens of a C or C++ file",
		Long:  `Tokenize breaks a source file into the tokens the rules see, after tab expansion`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	cfg, err := config.Discover(filePath)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(cmd.Context(), filePath, cfg.Lint.TabWidth)
	if err != nil {
		if result == nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		// ошибка токенизатора: печатаем её с позицией в stderr
		color, colorErr := useColor(cmd, cmd.ErrOrStderr())
		if colorErr != nil {
			return colorErr
		}
		report := diagfmt.FileReport{Path: filePath, File: result.File, Err: err}
		if printErr := diagfmt.Pretty(cmd.ErrOrStderr(), []diagfmt.FileReport{report}, diagfmt.PrettyOpts{Color: color, Context: 2}); printErr != nil {
			return printErr
		}
		return errFindings
	}

	// Выводим токены в выбранном формате
	if format == "json" {
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	}
	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens)
}
