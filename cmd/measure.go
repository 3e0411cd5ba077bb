package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"LocalMeasure/internal/config"
	"LocalMeasure/internal/geometry"
	"LocalMeasure/internal/state"
	"LocalMeasure/internal/store"
)

func newMeasureCmd(cfg *config.Config) *cobra.Command {
	var (
		r1, r2 string
		save   bool
	)

	measureCmd := &cobra.Command{
		Use:   "measure",
		Short: "Measure the distance between two rectangles",
		Long: `Measure the distance between the centers of two rectangles given as
x,y,width,height in canvas pixels. Negative sizes are normalized.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseRect(r1)
			if err != nil {
				return fmt.Errorf("--r1: %w", err)
			}
			b, err := parseRect(r2)
			if err != nil {
				return fmt.Errorf("--r2: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Rectangle Measurement")
			fmt.Fprintln(out, "=====================")
			for i, r := range []geometry.Rectangle{a, b} {
				c := geometry.Center(r)
				fmt.Fprintf(out, "Rectangle %d: (%.2f, %.2f) %s, center (%.2f, %.2f)\n",
					i+1, r.X, r.Y, geometry.FormatDimensions(r), c.X, c.Y)
			}
			fmt.Fprintf(out, "Distance: %s px\n", geometry.FormatDistance(geometry.Distance(a, b)))

			if !save {
				return nil
			}
			be, err := openBackend(*cfg, cliPreferences)
			if err != nil {
				return err
			}
			defer be.Close()

			rec := store.NewRecord(state.NewID(), a, b, state.SystemClock())
			if err := be.Store.Save(rec); err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved as %s\n", rec.ID)
			return nil
		},
	}

	measureCmd.Flags().StringVar(&r1, "r1", "", "first rectangle as x,y,width,height")
	measureCmd.Flags().StringVar(&r2, "r2", "", "second rectangle as x,y,width,height")
	measureCmd.Flags().BoolVar(&save, "save", false, "store the measurement")
	measureCmd.MarkFlagRequired("r1")
	measureCmd.MarkFlagRequired("r2")
	return measureCmd
}

// parseRect reads "x,y,width,height".
func parseRect(s string) (geometry.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geometry.Rectangle{}, fmt.Errorf("want x,y,width,height, got %q", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geometry.Rectangle{}, fmt.Errorf("bad number %q: %w", p, err)
		}
		v[i] = f
	}
	start := geometry.Point{X: v[0], Y: v[1]}
	end := geometry.Point{X: v[0] + v[2], Y: v[1] + v[3]}
	return geometry.FromPoints(start, end), nil
}
