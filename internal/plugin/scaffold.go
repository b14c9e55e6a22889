package plugin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrProjectExists is returned when the target project directory is already
// present. Existing trees are never merged or overwritten.
var ErrProjectExists = errors.New("directory already exists")

// Options control where and from what a plugin project is generated.
type Options struct {
	OutputDir   string // parent of the project directory; "" means "."
	TemplateDir string // on-disk template; "" means the embedded one
	Version     string // running CLI version, checked against the manifest
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	ProjectDir  string
	Template    string
	Files       []string // every copied file, relative to ProjectDir
	Substituted []string // files that went through placeholder substitution
}

// ProjectDirName returns the directory name of the generated project.
func ProjectDirName(name PluginName) string {
	return "nu_plugin_" + name.Snake
}

// ProjectDir returns the path Generate would create for name under outputDir.
func ProjectDir(name PluginName, outputDir string) string {
	if outputDir == "" {
		outputDir = "."
	}
	return filepath.Join(outputDir, ProjectDirName(name))
}

// Generate creates a new plugin project for name.
//
// The template is copied into a hidden staging directory next to the final
// project directory and substituted there; only a fully generated tree is
// renamed into place. On failure the staging directory is removed, so the
// output directory never holds a partially generated project.
func Generate(name PluginName, opts Options) (*Result, error) {
	tmpl, err := LocateTemplate(opts.TemplateDir)
	if err != nil {
		return nil, err
	}

	manifest, err := LoadManifest(tmpl.FS)
	if err != nil {
		return nil, err
	}
	if err := manifest.CheckCompatible(opts.Version); err != nil {
		return nil, err
	}
	rules, err := manifest.Rules(name)
	if err != nil {
		return nil, err
	}

	projectDir := ProjectDir(name, opts.OutputDir)
	if _, err := os.Lstat(projectDir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, projectDir)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("checking %s: %w", projectDir, err)
	}

	parent := filepath.Dir(projectDir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	staging, err := os.MkdirTemp(parent, "."+ProjectDirName(name)+"-*")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	published := false
	defer func() {
		if !published {
			_ = os.RemoveAll(staging)
		}
	}()

	files, err := copyTree(tmpl.FS, staging)
	if err != nil {
		return nil, fmt.Errorf("copying template %s: %w", tmpl.Source, err)
	}

	substituted, err := SubstituteTree(staging, rules, manifest.Extensions)
	if err != nil {
		return nil, fmt.Errorf("substituting placeholders: %w", err)
	}

	// MkdirTemp creates 0700 directories.
	if err := os.Chmod(staging, 0755); err != nil {
		return nil, fmt.Errorf("setting permissions on %s: %w", staging, err)
	}
	if err := os.Rename(staging, projectDir); err != nil {
		return nil, fmt.Errorf("publishing %s: %w", projectDir, err)
	}
	published = true

	return &Result{
		ProjectDir:  projectDir,
		Template:    tmpl.Source,
		Files:       files,
		Substituted: substituted,
	}, nil
}
