package plugin

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Placeholder tokens used by plugin templates.
const (
	PlaceholderName    = "PLUGIN_NAME"
	PlaceholderPlugin  = "PLUGIN_NAMEPlugin"
	PlaceholderCommand = "PLUGIN_NAMECommand"
)

// DefaultExtensions are the file extensions that receive substitution when a
// template does not declare its own.
var DefaultExtensions = []string{".rs", ".toml", ".md"}

// Rule is a literal text substitution.
type Rule struct {
	Pattern     string
	Replacement string
}

// Apply replaces every occurrence of the rule's pattern in content.
func (r Rule) Apply(content string) string {
	return strings.ReplaceAll(content, r.Pattern, r.Replacement)
}

// DefaultRules returns the built-in rules for name. Longer patterns come
// first so PLUGIN_NAME never fires inside PLUGIN_NAMEPlugin.
func DefaultRules(name PluginName) []Rule {
	return []Rule{
		{Pattern: PlaceholderPlugin, Replacement: name.Pascal + "Plugin"},
		{Pattern: PlaceholderCommand, Replacement: name.Pascal + "Command"},
		{Pattern: PlaceholderName, Replacement: name.Snake},
	}
}

// OrderRules returns a copy of rules sorted by descending pattern length.
// Rules with equal length keep their relative order.
func OrderRules(rules []Rule) []Rule {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Pattern) > len(ordered[j].Pattern)
	})
	return ordered
}

// ApplyRules applies rules to content in order.
func ApplyRules(content string, rules []Rule) string {
	for _, r := range rules {
		content = r.Apply(content)
	}
	return content
}

// SubstituteTree rewrites, in place, every regular file under root whose
// extension is listed in exts. It returns the slash-separated paths of the
// rewritten files relative to root. The first read or write error aborts the
// walk.
func SubstituteTree(root string, rules []Rule, exts []string) ([]string, error) {
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[ext] = true
	}

	var rewritten []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || !allowed[fileSuffix(d.Name())] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		out := ApplyRules(string(data), rules)
		if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rewritten = append(rewritten, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rewritten, nil
}

// fileSuffix returns the extension of name. Dotfiles without a further dot
// (".gitignore") have no extension.
func fileSuffix(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return ext
}
