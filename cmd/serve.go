package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"LocalMeasure/internal/config"
	feed "LocalMeasure/internal/net"
	"LocalMeasure/internal/store/kv"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Publish the record log on the local network without a window",
		Long: `Serve the saved measurements to LAN viewers over HTTP and websocket.
With the file backend, edits made by other processes are pushed to viewers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackend(*cfg, cliPreferences)
			if err != nil {
				return err
			}
			defer b.Close()

			hub := feed.NewHub(b.Store)
			if b.WatchPath != "" {
				w, err := kv.Watch(b.WatchPath, 200*time.Millisecond, func() {
					hub.Broadcast(feed.Message{Type: feed.TypeSnapshot, Records: b.Store.List()})
				})
				if err != nil {
					log.Printf("[FEED] File watch disabled: %v", err)
				} else {
					defer w.Close()
				}
			}

			if cfg.Advertise {
				server, err := feed.Advertise(cfg.FeedPort)
				if err != nil {
					log.Printf("[MDNS] %v", err)
				} else {
					defer server.Shutdown()
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Sharing measurements at %s\n", feed.ShareURL(cfg.FeedPort))
			return feed.Serve(ctx, cfg.FeedPort, hub)
		},
	}
}

func newDiscoverCmd() *cobra.Command {
	var timeout time.Duration

	discoverCmd := &cobra.Command{
		Use:   "discover",
		Short: "Find record feeds on the local network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			found := 0
			err := feed.Browse(timeout, func(addr string) {
				found++
				fmt.Fprintf(out, "ws://%s/ws\n", addr)
			})
			if err != nil {
				return err
			}
			if found == 0 {
				fmt.Fprintln(out, "No record feeds found")
			}
			return nil
		},
	}
	discoverCmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "how long to listen for answers")
	return discoverCmd
}
