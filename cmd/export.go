package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"LocalMeasure/internal/config"
	"LocalMeasure/internal/export"
)

func newExportCmd(cfg *config.Config) *cobra.Command {
	var format, outPath string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a report of saved measurements",
		Long: `Write every saved measurement to a PDF or plain-text report. The format
is text for a ".txt" file and PDF otherwise; "-" writes text to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case format != "":
			case outPath == "-":
				format = export.FormatText
			default:
				format = export.FormatFor(outPath)
			}
			if format != export.FormatPDF && format != export.FormatText {
				return fmt.Errorf("unknown format %q", format)
			}
			if outPath == "-" && format == export.FormatPDF {
				return fmt.Errorf("pdf reports need an output file")
			}

			b, err := openBackend(*cfg, cliPreferences)
			if err != nil {
				return err
			}
			defer b.Close()
			records := b.Store.List()

			if outPath == "-" {
				return export.WriteText(cmd.OutOrStdout(), records)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create report: %w", err)
			}
			if format == export.FormatPDF {
				err = export.WritePDF(f, records, cfg.CanvasSize(), time.Now())
			} else {
				err = export.WriteText(f, records)
			}
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("close report: %w", cerr)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d measurements to %s\n", len(records), outPath)
			return nil
		},
	}

	exportCmd.Flags().StringVar(&format, "format", "", "report format: pdf or text")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file, or - for stdout")
	exportCmd.MarkFlagRequired("out")
	return exportCmd
}
