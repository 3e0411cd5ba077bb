// Package cmd is the localmeasure command line. Without a subcommand it
// opens the measuring window.
package cmd

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"LocalMeasure/internal/config"
	"LocalMeasure/internal/ui"
)

// NewRootCmd builds the command tree around a fresh configuration.
func NewRootCmd() *cobra.Command {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "localmeasure",
		Short: "Measure the distance between two rectangles",
		Long: `LocalMeasure lets you draw two rectangles on a canvas, shows the distance
between their centers, and keeps a local log of saved measurements.
Run without a subcommand to open the window.`,
		Version:      "1.0.0",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cfg)
		},
	}
	cfg.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newListCmd(&cfg),
		newMeasureCmd(&cfg),
		newDeleteCmd(&cfg),
		newClearCmd(&cfg),
		newExportCmd(&cfg),
		newServeCmd(&cfg),
		newDiscoverCmd(),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGUI(cfg config.Config) error {
	a := app.NewWithID(config.AppID)
	b, err := openBackend(cfg, a.Preferences)
	if err != nil {
		return err
	}
	defer b.Close()

	return ui.RunApp(a, ui.Options{Config: cfg, Store: b.Store, WatchPath: b.WatchPath})
}
