package export

import (
	"bufio"
	"fmt"
	"io"

	"LocalMeasure/internal/geometry"
	"LocalMeasure/internal/store"
)

// WriteText writes a plain-text report of records.
func WriteText(w io.Writer, records []store.Record) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "LocalMeasure Export\n")
	fmt.Fprintf(bw, "===================\n\n")
	fmt.Fprintf(bw, "Total measurements: %d\n\n", len(records))

	for i, r := range records {
		fmt.Fprintf(bw, "Measurement %d:\n", i+1)
		fmt.Fprintf(bw, "  ID: %s\n", r.ID)
		fmt.Fprintf(bw, "  Distance: %s\n", geometry.FormatDistance(r.Distance))
		fmt.Fprintf(bw, "  Time: %s\n", r.DisplayTime())
		for j, rect := range r.Rectangles {
			c := geometry.Center(rect)
			fmt.Fprintf(bw, "  Rectangle %d: (%.2f, %.2f) %s, center (%.2f, %.2f)\n",
				j+1, rect.X, rect.Y, geometry.FormatDimensions(rect), c.X, c.Y)
		}
		fmt.Fprintf(bw, "\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
