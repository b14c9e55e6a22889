// Package branding provides compile-time identity values for the nukit tools.
//
// Values come from the embedded branding.yaml, overlaid on hard defaults.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	PluginCLIName string `yaml:"plugin_cli_name"`
	PDFCLIName    string `yaml:"pdf_cli_name"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			DisplayName:   "nukit",
			Description:   "Nushell plugin scaffolding and PDF text extraction tools",
			HomeDir:       ".nukit",
			EnvPrefix:     "NUKIT",
			PluginCLIName: "nu-plugin-init",
			PDFCLIName:    "pdf-text",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".nukit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "NUKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// PluginCLIName returns the scaffolder command name.
func PluginCLIName() string { load(); return defaults.PluginCLIName }

// PDFCLIName returns the PDF extractor command name.
func PDFCLIName() string { load(); return defaults.PDFCLIName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "NUKIT_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
