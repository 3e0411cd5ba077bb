// Package export writes measurement reports.
package export

import (
	"fmt"
	"io"
	"time"

	"LocalMeasure/internal/geometry"
	"LocalMeasure/internal/render"
	"LocalMeasure/internal/store"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin   = 15.0
	diagramWidth = 180.0
)

// WritePDF renders a summary table followed by one diagram page per record.
// canvas is the backing size the rectangles were drawn on.
func WritePDF(w io.Writer, records []store.Record, canvas geometry.Size, generated time.Time) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetMargins(pageMargin, pageMargin, pageMargin)
	tr := p.UnicodeTranslatorFromDescriptor("")

	p.AddPage()
	p.SetFont("Helvetica", "B", 16)
	p.Cell(0, 10, "LocalMeasure report")
	p.Ln(10)
	p.SetFont("Helvetica", "", 10)
	p.Cell(0, 6, fmt.Sprintf("Generated %s, %d measurements", generated.Format("2006-01-02 15:04"), len(records)))
	p.Ln(10)

	writeTable(p, tr, records)

	for i, r := range records {
		p.AddPage()
		p.SetFont("Helvetica", "B", 12)
		p.Cell(0, 8, fmt.Sprintf("Measurement %d: %s px", i+1, geometry.FormatDistance(r.Distance)))
		p.Ln(8)
		p.SetFont("Helvetica", "", 9)
		p.Cell(0, 5, tr(fmt.Sprintf("%s   id %s", r.DisplayTime(), r.ID)))
		p.Ln(8)
		drawDiagram(p, r, canvas, p.GetY())
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func writeTable(p *gofpdf.Fpdf, tr func(string) string, records []store.Record) {
	widths := []float64{10, 30, 40, 40, 60}
	headers := []string{"#", "Distance", "Rectangle 1", "Rectangle 2", "Created"}

	p.SetFont("Helvetica", "B", 9)
	p.SetFillColor(240, 240, 240)
	for i, h := range headers {
		p.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	p.Ln(-1)

	p.SetFont("Helvetica", "", 9)
	for i, r := range records {
		row := []string{
			fmt.Sprintf("%d", i+1),
			geometry.FormatDistance(r.Distance),
			geometry.FormatDimensions(r.Rectangles[0]),
			geometry.FormatDimensions(r.Rectangles[1]),
			r.DisplayTime(),
		}
		for j, cell := range row {
			p.CellFormat(widths[j], 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		p.Ln(-1)
	}
}

// drawDiagram replays the renderer's commands, minus the grid, scaled to
// the page.
func drawDiagram(p *gofpdf.Fpdf, r store.Record, canvas geometry.Size, top float64) {
	scale := diagramWidth / canvas.Width
	tx := func(x float64) float64 { return pageMargin + x*scale }
	ty := func(y float64) float64 { return top + y*scale }

	p.SetDrawColor(200, 200, 200)
	p.SetLineWidth(0.2)
	p.Rect(tx(0), ty(0), canvas.Width*scale, canvas.Height*scale, "D")

	for _, c := range render.Render(r.Rectangles[:], canvas) {
		switch c.Kind {
		case render.KindBox:
			p.SetDrawColor(int(c.Stroke.R), int(c.Stroke.G), int(c.Stroke.B))
			p.SetFillColor(int(c.Stroke.R), int(c.Stroke.G), int(c.Stroke.B))
			p.SetLineWidth(0.5)
			p.SetAlpha(0.15, "Normal")
			p.Rect(tx(c.Rect.X), ty(c.Rect.Y), c.Rect.Width*scale, c.Rect.Height*scale, "F")
			p.SetAlpha(1, "Normal")
			p.Rect(tx(c.Rect.X), ty(c.Rect.Y), c.Rect.Width*scale, c.Rect.Height*scale, "D")
		case render.KindCenter:
			p.SetFillColor(int(c.Fill.R), int(c.Fill.G), int(c.Fill.B))
			p.Circle(tx(c.From.X), ty(c.From.Y), 0.8, "F")
		case render.KindDashedLine:
			p.SetDrawColor(int(c.Stroke.R), int(c.Stroke.G), int(c.Stroke.B))
			p.SetLineWidth(0.3)
			p.SetDashPattern([]float64{1.5, 1.5}, 0)
			p.Line(tx(c.From.X), ty(c.From.Y), tx(c.To.X), ty(c.To.Y))
			p.SetDashPattern([]float64{}, 0)
		}
	}
}
