package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/flavono123/schemer/internal/store"
	"github.com/flavono123/schemer/internal/ui"
)

func runTUI(w io.Writer) error {
	fields := initialFields()

	// piped, nothing to interact with
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		log.Debug("stdout is not a terminal, printing the preview")
		return writePreview(w, fields)
	}

	s := store.NewStore(fields, store.StoreOptions{HistoryLimit: cfg.HistoryLimit})
	model := ui.NewModel(s, cfg)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}

	if printOnExit {
		return writePreview(w, model.Fields())
	}
	return nil
}
