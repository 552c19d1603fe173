package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	adminFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "groupedit",
	Short: "Create and edit groups from the terminal",
	Long: `groupedit lists groups and opens a create/edit dialog for them.

Groups live in the store named by the configuration: in memory, in a
SQLite file, or behind another groupedit instance running "serve".`,
	Example: `  # Edit groups in a local SQLite file as an administrator
  GROUPEDIT_STORE_DRIVER=sqlite GROUPEDIT_STORE_DSN=groups.db groupedit --admin

  # Serve that file over HTTP and edit it from elsewhere
  groupedit serve --addr :8080
  GROUPEDIT_STORE_DRIVER=rest GROUPEDIT_STORE_URL=http://host:8080 groupedit`,
	SilenceUsage: true,
	RunE:         runEdit,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/groupedit/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&adminFlag, "admin", false, "Act as a site administrator")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
