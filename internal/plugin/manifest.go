package plugin

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// ManifestFile is the optional manifest at the root of a template tree. It is
// never copied into generated projects.
const ManifestFile = "template.yaml"

// ErrIncompatibleTemplate is returned when a template requires a different
// CLI version than the one running.
var ErrIncompatibleTemplate = errors.New("template is not compatible with this version")

// Manifest describes a template tree.
type Manifest struct {
	Name         string        `yaml:"name"`
	Version      string        `yaml:"version,omitempty"`
	Description  string        `yaml:"description,omitempty"`
	Requires     string        `yaml:"requires,omitempty"`
	Extensions   []string      `yaml:"extensions,omitempty"`
	Placeholders []Placeholder `yaml:"placeholders,omitempty"`
}

// Placeholder is an extra substitution declared by a template. Value is a
// text/template evaluated against the PluginName.
type Placeholder struct {
	Pattern string `yaml:"pattern"`
	Value   string `yaml:"value"`
}

// LoadManifest reads and validates the manifest at the root of fsys. A tree
// without a manifest gets the default extensions and no extra placeholders.
func LoadManifest(fsys fs.FS) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if errors.Is(err, fs.ErrNotExist) {
		return &Manifest{Extensions: DefaultExtensions}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ManifestFile, err)
	}

	result, err := ValidateManifest(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", ManifestFile, err)
	}
	if !result.Valid {
		msgs := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			msgs = append(msgs, issue.String())
		}
		return nil, fmt.Errorf("invalid %s: %s", ManifestFile, strings.Join(msgs, "; "))
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}
	if len(m.Extensions) == 0 {
		m.Extensions = DefaultExtensions
	}
	return &m, nil
}

// CheckCompatible verifies the manifest's requires constraint against the
// running CLI version. Versions that are not semver (e.g. "dev") always pass.
func (m *Manifest) CheckCompatible(cliVersion string) error {
	if m.Requires == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(m.Requires)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", m.Requires, err)
	}

	v, err := semver.NewVersion(strings.TrimPrefix(cliVersion, "v"))
	if err != nil {
		return nil
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w: template %q requires %s, running %s", ErrIncompatibleTemplate, m.Name, m.Requires, v)
	}
	return nil
}

// Rules returns the substitution rules for name: the built-in rules plus the
// manifest's placeholders, ordered longest pattern first.
func (m *Manifest) Rules(name PluginName) ([]Rule, error) {
	rules := DefaultRules(name)
	for _, p := range m.Placeholders {
		value, err := renderValue(p, name)
		if err != nil {
			return nil, err
		}
		rules = append(rules, Rule{Pattern: p.Pattern, Replacement: value})
	}
	return OrderRules(rules), nil
}

func renderValue(p Placeholder, name PluginName) (string, error) {
	tmpl, err := template.New(p.Pattern).Option("missingkey=error").Parse(p.Value)
	if err != nil {
		return "", fmt.Errorf("parsing placeholder %s: %w", p.Pattern, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, name); err != nil {
		return "", fmt.Errorf("executing placeholder %s: %w", p.Pattern, err)
	}
	return buf.String(), nil
}
