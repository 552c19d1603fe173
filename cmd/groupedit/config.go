package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"groupedit/internal/eventbus"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or write the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration, overrides applied",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, svc, err := loadConfig(nil)
		if err != nil {
			return err
		}
		data, err := toml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "# %s\n%s", svc.Path(), data)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bus := eventbus.New()
		defer bus.Close()

		saved := make(chan string, 1)
		bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
			saved <- e.(eventbus.ConfigSavedEvent).Path
		})

		cfg, svc, err := loadConfig(bus)
		if err != nil {
			return err
		}
		if _, err := os.Stat(svc.Path()); err == nil {
			return fmt.Errorf("%s already exists", svc.Path())
		}
		if err := svc.SaveToPath(cfg, svc.Path()); err != nil {
			return err
		}

		path := <-saved
		log.Printf("Wrote config to %s", path)
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
