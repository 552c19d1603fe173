package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"groupedit/internal/config"
	"groupedit/internal/eventbus"
	"groupedit/internal/groups"
)

// loadConfig reads the config file and applies the flags shared by all commands
func loadConfig(bus eventbus.EventBus) (*config.Config, config.ConfigService, error) {
	svc := config.NewConfigServiceWithBus(bus, configPath)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config %s: %w", svc.Path(), err)
	}
	if adminFlag {
		cfg.User.Admin = true
	}
	return cfg, svc, nil
}

// setupLogging sends the standard logger to the configured file. The
// returned closer restores stderr.
func setupLogging(cfg *config.Config) io.Closer {
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return nopCloser
	}
	log.SetOutput(logFile)
	return closerFunc(func() error {
		log.SetOutput(os.Stderr)
		return logFile.Close()
	})
}

// startLogging loads the config, redirects the logger to its log file and
// only then announces the load on bus, so the event lands in the file
func startLogging(bus eventbus.EventBus) (*config.Config, io.Closer, error) {
	cfg, svc, err := loadConfig(nil)
	if err != nil {
		return nil, nil, err
	}
	closer := setupLogging(cfg)
	bus.Publish(eventbus.ConfigLoadedEvent{Path: svc.Path()})
	return cfg, closer, nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// openStore builds the group store named by the configuration
func openStore(cfg *config.Config) (groups.Store, io.Closer, error) {
	policy := cfg.Policy.AddToGroup

	switch cfg.Store.Driver {
	case config.DriverSQLite:
		store, err := groups.OpenSQLGroupStore(cfg.Store.DSN, policy)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil

	case config.DriverREST:
		client := &http.Client{Timeout: 30 * time.Second}
		return groups.NewRESTGroupStore(cfg.Store.URL, client), nopCloser, nil

	default:
		return groups.NewMemoryGroupStore(policy), nopCloser, nil
	}
}
