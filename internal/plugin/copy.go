package plugin

import (
	"io/fs"
	"os"
	"path/filepath"
)

// excludedNames are never copied out of a template tree.
var excludedNames = map[string]bool{
	".git":      true,
	".DS_Store": true,
}

// copyTree copies every directory and regular file of fsys into dst, which
// must already exist. The template manifest at the root is skipped, as are
// symlinks and entries in excludedNames. It returns the slash-separated
// paths of the copied files.
func copyTree(fsys fs.FS, dst string) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}
		if shouldExclude(path, d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if err := copyFile(fsys, path, target); err != nil {
			return err
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// copyFile copies a single file out of fsys, keeping its permission bits but
// always leaving it owner-writable (embedded files report 0444).
func copyFile(fsys fs.FS, src, dst string) error {
	data, err := fs.ReadFile(fsys, src)
	if err != nil {
		return err
	}

	info, err := fs.Stat(fsys, src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, data, info.Mode().Perm()|0600)
}

// shouldExclude returns true if the entry at path should not be copied.
func shouldExclude(path, name string) bool {
	return path == ManifestFile || excludedNames[name]
}
