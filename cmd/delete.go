package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"LocalMeasure/internal/config"
	"LocalMeasure/internal/store"
)

func newDeleteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved measurement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackend(*cfg, cliPreferences)
			if err != nil {
				return err
			}
			defer b.Close()

			id := args[0]
			out := cmd.OutOrStdout()
			if _, err := b.Store.Get(id); errors.Is(err, store.ErrNotFound) {
				fmt.Fprintf(out, "No measurement %s\n", id)
				return nil
			}
			if err := b.Store.Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted %s\n", id)
			return nil
		},
	}
}

func newClearCmd(cfg *config.Config) *cobra.Command {
	var force bool

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved measurement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackend(*cfg, cliPreferences)
			if err != nil {
				return err
			}
			defer b.Close()

			n := len(b.Store.List())
			if n > 0 && !force {
				return fmt.Errorf("refusing to delete %d measurements without --force", n)
			}
			if err := b.Store.ClearAll(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d measurements\n", n)
			return nil
		},
	}
	clearCmd.Flags().BoolVarP(&force, "force", "f", false, "do not refuse when measurements exist")
	return clearCmd
}
