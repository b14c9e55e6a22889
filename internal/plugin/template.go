package plugin

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrTemplateNotFound is returned when a template directory does not exist.
var ErrTemplateNotFound = errors.New("template directory not found")

//go:embed all:template
var embeddedTemplate embed.FS

// EmbeddedSource is the Template.Source of the built-in template.
const EmbeddedSource = "<embedded>"

// Template is a read-only template tree.
type Template struct {
	FS     fs.FS
	Source string // on-disk path, or EmbeddedSource
}

// LocateTemplate returns the template at dir, or the built-in template when
// dir is empty.
func LocateTemplate(dir string) (*Template, error) {
	if dir == "" {
		sub, err := fs.Sub(embeddedTemplate, "template")
		if err != nil {
			return nil, fmt.Errorf("opening embedded template: %w", err)
		}
		return &Template{FS: sub, Source: EmbeddedSource}, nil
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w at %s", ErrTemplateNotFound, dir)
	}
	return &Template{FS: os.DirFS(dir), Source: dir}, nil
}
