package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"groupedit/internal/eventbus"
	"groupedit/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Browse groups and open the create/edit dialog (default)",
	Args:  cobra.NoArgs,
	RunE:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	bus := eventbus.New()
	defer bus.Close()

	cfg, logCloser, err := startLogging(bus)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	store, storeCloser, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
	}
	defer storeCloser.Close()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Printf("Starting as %q (admin=%t) on %s store", cfg.User.Login, cfg.User.Admin, cfg.Store.Driver)

	uiModel := ui.NewModel(ctx, bus, cfg, store)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// The model already shows these; the log keeps a record
	bus.Subscribe(eventbus.EventDialogOpened, func(e eventbus.DomainEvent) {
		log.Printf("Dialog opened: %s", e.(eventbus.DialogOpenedEvent).Mode)
	})
	bus.Subscribe(eventbus.EventDialogClosed, func(e eventbus.DomainEvent) {
		log.Printf("Dialog closed: %s", e.(eventbus.DialogClosedEvent).Mode)
	})
	bus.Subscribe(eventbus.EventGroupSaved, func(e eventbus.DomainEvent) {
		saved := e.(eventbus.GroupSavedEvent)
		log.Printf("Group %d saved (%s)", saved.Record.ID, saved.Mode)
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		log.Printf("Error: %s", e.(eventbus.ErrorEvent).Message)
	})

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
