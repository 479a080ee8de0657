package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"lint381/internal/driver"
	"lint381/internal/ui"
)

type lintOutcome struct {
	results []*driver.FileResult
	err     error
}

// runLintWithUI lints files in the background while a Bubble Tea program
// renders driver events. Quitting the UI early cancels the run.
func runLintWithUI(ctx context.Context, out io.Writer, title string, files []string, opts driver.Options) ([]*driver.FileResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan lintOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.LintFiles(ctx, files, optsCopy)
		outcomeCh <- lintOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()

	// UI больше не читает канал: дочитываем, чтобы воркеры не встали
	cancel()
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if outcome.err != nil {
		return outcome.results, outcome.err
	}
	return outcome.results, uiErr
}
