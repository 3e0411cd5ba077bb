package export

import (
	"path/filepath"
	"strings"
)

const (
	FormatPDF  = "pdf"
	FormatText = "text"
)

// FormatFor picks the report format from a file name: ".txt" is text,
// everything else is PDF.
func FormatFor(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".txt") {
		return FormatText
	}
	return FormatPDF
}
