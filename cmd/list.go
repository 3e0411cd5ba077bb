package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"LocalMeasure/internal/config"
	"LocalMeasure/internal/geometry"
	"LocalMeasure/internal/store"
)

func newListCmd(cfg *config.Config) *cobra.Command {
	var (
		search string
		sortBy string
		order  string
		asJSON bool
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved measurements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuery(search, sortBy, order)
			if err != nil {
				return err
			}
			b, err := openBackend(*cfg, cliPreferences)
			if err != nil {
				return err
			}
			defer b.Close()

			records := q.Apply(b.Store.List())
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "No measurements")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDISTANCE\tRECTANGLE 1\tRECTANGLE 2\tCREATED")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, geometry.FormatDistance(r.Distance),
					geometry.FormatDimensions(r.Rectangles[0]), geometry.FormatDimensions(r.Rectangles[1]),
					r.DisplayTime())
			}
			return w.Flush()
		},
	}

	listCmd.Flags().StringVarP(&search, "search", "s", "", "only show measurements matching text")
	listCmd.Flags().StringVar(&sortBy, "sort", "time", "sort by time or distance")
	listCmd.Flags().StringVar(&order, "order", "desc", "sort order: asc or desc")
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print the records as JSON")
	return listCmd
}

func parseQuery(search, sortBy, order string) (store.Query, error) {
	q := store.Query{Search: search}
	switch sortBy {
	case "time", "timestamp":
		q.Field = store.SortByTimestamp
	case "distance":
		q.Field = store.SortByDistance
	default:
		return q, fmt.Errorf("unknown sort field %q", sortBy)
	}
	switch order {
	case "asc":
		q.Order = store.Ascending
	case "desc":
		q.Order = store.Descending
	default:
		return q, fmt.Errorf("unknown sort order %q", order)
	}
	return q, nil
}
