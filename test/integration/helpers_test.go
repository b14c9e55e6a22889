//go:build integration

package integration_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir     string // NUKIT_HOME, holds config.yaml
	TemplateDir string // an on-disk plugin template
	OutputDir   string // where projects get generated
}

// setupTestEnv creates isolated temp directories and points NUKIT_HOME at
// one of them. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:     t.TempDir(),
		TemplateDir: t.TempDir(),
		OutputDir:   t.TempDir(),
	}
	t.Setenv("NUKIT_HOME", env.HomeDir)
	return env
}

// setupTemplate writes a plugin template mixing substituted and verbatim
// files into dir.
func setupTemplate(t *testing.T, dir string) {
	t.Helper()

	writeFile(t, filepath.Join(dir, "Cargo.toml"), `[package]
name = "nu_plugin_PLUGIN_NAME"
version = "0.1.0"
`)
	writeFile(t, filepath.Join(dir, "src", "main.rs"), `struct PLUGIN_NAMEPlugin;
struct PLUGIN_NAMECommand;

impl SimplePluginCommand for PLUGIN_NAMECommand {
    type Plugin = PLUGIN_NAMEPlugin;

    fn name(&self) -> &str {
        "PLUGIN_NAME"
    }
}
`)
	writeFile(t, filepath.Join(dir, "README.md"), "# PLUGIN_NAMEPlugin\n")
	writeFile(t, filepath.Join(dir, "scripts", "install.sh"), "#!/bin/sh\ncargo install --path . # PLUGIN_NAME\n")
	writeFile(t, filepath.Join(dir, "LICENSE"), "MIT PLUGIN_NAMEPlugin\n")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	if content := readFile(t, path); !strings.Contains(content, substr) {
		t.Errorf("file %s does not contain %q\n--- content ---\n%s", path, substr, content)
	}
}

// walkFiles returns the slash-separated relative paths of regular files under root.
func walkFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.Type().IsRegular() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files
}
