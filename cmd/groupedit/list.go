package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"groupedit/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the groups in the configured store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(nil)
		if err != nil {
			return err
		}
		store, closer, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
		}
		defer closer.Close()

		list, err := store.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing groups: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRIVACY\tADD MEMBERS\tDESCRIPTION")
		for _, g := range list {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", g.ID, g.Name, privacy(g), addAllowed(g.AddAllowed), g.Description)
		}
		return w.Flush()
	},
}

func privacy(g *domain.GroupRecord) string {
	if g.Public {
		return "public"
	}
	return "private"
}

func addAllowed(a domain.AddAllowed) string {
	if a == domain.AddAllowedUnset {
		return "-"
	}
	return string(a)
}
