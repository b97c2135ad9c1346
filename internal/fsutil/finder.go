// Package fsutil provides file system discovery helpers for config loading.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFilesByExtension recursively searches the given root path for all
// files ending with the specified extension. It returns their full paths.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// ExpandPatterns resolves a mixed list of files, directories, and doublestar
// glob patterns into a flat, deduplicated list of config file paths.
// Directories are walked for each of the given extensions; glob matches and
// plain files are filtered to those extensions. Paths that do not exist are
// skipped rather than treated as errors.
func ExpandPatterns(patterns []string, extensions []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		if !hasAnyExtension(path, extensions) {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, pattern := range patterns {
		if isGlob(pattern) {
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				info, err := os.Stat(m)
				if err == nil && !info.IsDir() {
					add(m)
				}
			}
			continue
		}

		info, err := os.Stat(pattern)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		if info.IsDir() {
			for _, ext := range extensions {
				found, err := FindFilesByExtension(pattern, ext)
				if err != nil {
					return nil, err
				}
				for _, f := range found {
					add(f)
				}
			}
			continue
		}
		add(pattern)
	}

	return files, nil
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func hasAnyExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
