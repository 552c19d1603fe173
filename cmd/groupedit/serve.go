package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"groupedit/internal/api"
	"groupedit/internal/config"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the configured store over HTTP",
	Long: `Serve the configured group store as a JSON API that other groupedit
instances can use with the rest store driver.

Routes:
  GET  /group         list groups
  POST /group         create a group
  GET  /group/{id}    fetch one group
  PUT  /group/{id}    update a group
  GET  /health        liveness probe`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(nil)
	if err != nil {
		return err
	}
	if cfg.Store.Driver == config.DriverREST {
		return errors.New("serve needs a memory or sqlite store, not rest")
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	store, closer, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
	}
	defer closer.Close()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewHandler(store).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serving %s store on %s", cfg.Store.Driver, cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}
	return nil
}
