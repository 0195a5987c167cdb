// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specialistvlad/prefabgo/internal/resourcepath"
)

// FindFilesByExtension recursively searches root for files ending with any of
// the given extensions. Paths are returned sorted.
func FindFilesByExtension(root string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}
	for _, ext := range extensions {
		if ext == "" {
			panic("extension must not be empty")
		}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range extensions {
			if strings.HasSuffix(d.Name(), ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ResourcePath maps a file below root to its project resource path, e.g.
// root/src/a.go becomes /src/a.go.
func ResourcePath(root, file string) (resourcepath.Path, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s against %s: %w", file, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside of %s", file, root)
	}
	return resourcepath.Path(resourcepath.Separator + filepath.ToSlash(rel)), nil
}
