package ui

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"LocalMeasure/internal/export"
	"LocalMeasure/internal/geometry"
	"LocalMeasure/internal/store"
)

// showExportDialog asks for a destination and writes a report there. A
// ".txt" name produces the plain-text report, anything else a PDF.
func showExportDialog(w fyne.Window, records []store.Record, canvas geometry.Size, status func(string)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if writer == nil {
			return
		}
		if err := writeReport(writer, records, canvas); err != nil {
			log.Printf("[UI] Export failed: %v", err)
			dialog.ShowError(err, w)
			return
		}
		status(fmt.Sprintf("Exported %d measurements to %s", len(records), writer.URI().Name()))
	}, w)
	d.SetFileName("measurements.pdf")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf", ".txt"}))
	d.Show()
}

func writeReport(writer fyne.URIWriteCloser, records []store.Record, canvas geometry.Size) error {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[UI] Error closing export: %v", err)
		}
	}()

	if export.FormatFor(writer.URI().Name()) == export.FormatText {
		return export.WriteText(writer, records)
	}
	return export.WritePDF(writer, records, canvas, time.Now())
}
