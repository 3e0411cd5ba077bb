package export

import (
	"bytes"
	"testing"
	"time"

	"LocalMeasure/internal/geometry"
	"LocalMeasure/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportRecords() []store.Record {
	at := time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC)
	return []store.Record{
		store.NewRecord("one",
			geometry.Rectangle{Width: 100, Height: 100},
			geometry.Rectangle{X: 100, Y: 100, Width: 100, Height: 100}, at),
		store.NewRecord("two",
			geometry.Rectangle{Width: 100, Height: 100},
			geometry.Rectangle{X: 50, Y: 50, Width: 100, Height: 100}, at),
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reportRecords()))

	out := buf.String()
	assert.Contains(t, out, "Total measurements: 2")
	assert.Contains(t, out, "Measurement 1:\n  ID: one\n  Distance: 141.42\n")
	assert.Contains(t, out, "  Distance: 70.71\n")
	assert.Contains(t, out, "Rectangle 2: (100.00, 100.00) 100.00×100.00, center (150.00, 150.00)")
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, nil))
	assert.Contains(t, buf.String(), "Total measurements: 0")
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, reportRecords(), geometry.Size{Width: 800, Height: 600}, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	var empty bytes.Buffer
	require.NoError(t, WritePDF(&empty, nil, geometry.Size{Width: 800, Height: 600}, time.Now()))
	assert.Less(t, empty.Len(), buf.Len())
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"report.txt", FormatText},
		{"REPORT.TXT", FormatText},
		{"report.pdf", FormatPDF},
		{"report.out", FormatPDF},
		{"report", FormatPDF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFor(tt.name), tt.name)
	}
}
