// Package pdftext extracts plain text from selected pages of a PDF. It
// powers the pdf-text command: a page range expression is parsed into a
// sorted page selection, and the text of each selected page is pulled from
// a Document (backed by github.com/ledongthuc/pdf) and joined with blank
// lines.
package pdftext
