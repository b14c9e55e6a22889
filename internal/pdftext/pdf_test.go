package pdftext

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentx-labs/nukit/internal/pdftext/pdftest"
)

func TestOpenAndExtract(t *testing.T) {
	path := pdftest.Write(t, []string{"Hello page one", "Second page here", "Third"})

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer doc.Close()

	if got := doc.NumPage(); got != 3 {
		t.Fatalf("NumPage() = %d, want 3", got)
	}

	text, err := doc.PageText(2)
	if err != nil {
		t.Fatalf("PageText(2) error: %v", err)
	}
	if !strings.Contains(text, "Second page here") {
		t.Errorf("PageText(2) = %q, want it to contain %q", text, "Second page here")
	}

	all, err := Extract(doc, []int{1, 3}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if !strings.Contains(all, "Hello page one") || !strings.Contains(all, "Third") {
		t.Errorf("Extract() = %q, want pages 1 and 3", all)
	}
	if strings.Contains(all, "Second page here") {
		t.Errorf("Extract() = %q, should not contain page 2", all)
	}
	if strings.HasSuffix(all, PageSeparator) {
		t.Errorf("Extract() = %q, must not end with a separator", all)
	}
}

func TestOpenNotPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	if err := os.WriteFile(path, []byte("just some text"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Fatal("expected error opening a non-PDF file")
	}
}
