package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ronfmt/internal/driver"
	"ronfmt/internal/ui"
)

type formatOutcome struct {
	results []driver.FormatResult
	err     error
}

// runFormatWithUI formats files while a progress view follows the events.
func runFormatWithUI(ctx context.Context, title string, files []string, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.FormatFiles(ctx, files, optsCopy)
		outcomeCh <- formatOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
