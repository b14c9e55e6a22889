package cli

import (
	"fmt"
	"os"

	"github.com/agentx-labs/nukit/internal/branding"
	"github.com/agentx-labs/nukit/internal/config"
	"github.com/agentx-labs/nukit/internal/pdftext"
	"github.com/spf13/cobra"
)

func newPDFTextCmd() *cobra.Command {
	var (
		output string
		pages  string
	)

	cmd := &cobra.Command{
		Use:   branding.PDFCLIName() + " <pdf-file>",
		Short: "Extract text from PDF files",
		Long: `Extract the text layer of a PDF file.

Text goes to stdout unless --output is given. Pages are separated by a
blank line; pages outside the document are skipped with a warning.

Examples:
  pdf-text report.pdf
  pdf-text report.pdf --output report.txt
  pdf-text report.pdf --pages 1-5
  pdf-text report.pdf --pages 1,3,5`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Load()

			path := args[0]
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("file not found: %s", path)
			}

			doc, err := pdftext.Open(path)
			if err != nil {
				return fmt.Errorf("reading PDF: %w", err)
			}
			defer doc.Close()

			var selection []int
			if expr := config.Resolve(pages, config.KeyPDFPages); expr != "" {
				selection, err = pdftext.ParsePageRange(expr, doc.NumPage())
				if err != nil {
					return err
				}
			}

			text, err := pdftext.Extract(doc, selection, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("reading PDF: %w", err)
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}

			if err := os.WriteFile(output, []byte(text), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Text extracted to: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&pages, "pages", "", "Page range (e.g., '1-5' or '1,3,5')")
	return cmd
}
