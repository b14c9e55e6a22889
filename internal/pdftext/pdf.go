package pdftext

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// File is a Document backed by a PDF file on disk.
type File struct {
	f *os.File
	r *pdf.Reader
}

// Open opens the PDF at path. The caller must Close it.
func Open(path string) (*File, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &File{f: f, r: r}, nil
}

// NumPage returns the page count from the document's page tree.
func (d *File) NumPage() int {
	return d.r.NumPage()
}

// PageText returns the plain text layer of page n. Pages without a page
// object yield no text.
func (d *File) PageText(n int) (text string, err error) {
	// The parser panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed page %d: %v", n, r)
		}
	}()

	p := d.r.Page(n)
	if p.V.IsNull() {
		return "", nil
	}

	fonts := make(map[string]*pdf.Font)
	for _, name := range p.Fonts() {
		font := p.Font(name)
		fonts[name] = &font
	}
	return p.GetPlainText(fonts)
}

// Close releases the underlying file.
func (d *File) Close() error {
	return d.f.Close()
}
