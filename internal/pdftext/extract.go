package pdftext

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// PageSeparator is written between the text of consecutive pages.
const PageSeparator = "\n\n"

// Document is a paged source of text.
type Document interface {
	// NumPage returns the number of pages.
	NumPage() int
	// PageText returns the text of the 1-indexed page n.
	PageText(n int) (string, error)
}

// Extract returns the text of the selected pages, in ascending order, joined
// with PageSeparator. A nil selection means every page. Pages outside
// 1..NumPage() are reported to warn and skipped; pages without text
// contribute nothing, not even a separator.
func Extract(doc Document, pages []int, warn io.Writer) (string, error) {
	total := doc.NumPage()
	if pages == nil {
		pages = AllPages(total)
	} else {
		pages = slices.Clone(pages)
		slices.Sort(pages)
		pages = slices.Compact(pages)
	}

	var parts []string
	for _, n := range pages {
		if n < 1 || n > total {
			fmt.Fprintf(warn, "Warning: Page %d out of range (1-%d)\n", n, total)
			continue
		}

		text, err := doc.PageText(n)
		if err != nil {
			return "", fmt.Errorf("extracting page %d: %w", n, err)
		}
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, PageSeparator), nil
}
