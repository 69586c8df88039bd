package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"stlkit/internal/driver"
	"stlkit/internal/ui"
)

type inspectOutcome struct {
	sums []driver.Summary
	err  error
}

// Подменяются в тестах.
var (
	inspectFiles = driver.Inspect
	runProgram   = func(m tea.Model) error {
		_, err := tea.NewProgram(m, tea.WithOutput(os.Stdout)).Run()
		return err
	}
)

func runInspectWithUI(ctx context.Context, title string, files []string, opts driver.Options) ([]driver.Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan inspectOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		sums, err := inspectFiles(ctx, files, optsCopy)
		outcomeCh <- inspectOutcome{sums: sums, err: err}
		close(events)
	}()

	uiErr := runProgram(ui.NewProgressModel(title, files, events))
	// UI закрыт (ctrl+c или все события получены): оставшиеся файлы не ждём
	cancel()
	// воркеры не должны блокироваться на канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.sums, uiErr
	}
	return outcome.sums, outcome.err
}

// inspect runs driver.Inspect, through the progress view when the UI mode
// asks for it.
func (s *settings) inspect(ctx context.Context, title string, files []string, opts driver.Options) ([]driver.Summary, error) {
	opts.Jobs = s.jobs
	opts.Logger = s.logger
	if !s.quiet && shouldUseTUI(s.ui, len(files)) {
		return runInspectWithUI(ctx, title, files, opts)
	}
	return driver.Inspect(ctx, files, opts)
}
