package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/telzey/xstruct/grouper"
	"github.com/telzey/xstruct/xserrors"
)

// FindXMLFiles walks root recursively and returns the paths of all regular
// files whose extension (without the dot) is in exts. maxDepth limits
// traversal depth below root (0 = unlimited; depth 1 is root's direct
// children). Unreadable directory entries are logged and skipped; an empty
// result is an error.
func FindXMLFiles(root string, exts []string, maxDepth int, logger grouper.Logger) ([]string, error) {
	if logger == nil {
		logger = grouper.NopLogger{}
	}
	logger.Info("scanning directory", "path", root)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if maxDepth > 0 && d.IsDir() && pathDepth(root, path) >= maxDepth {
			return fs.SkipDir
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		for _, want := range exts {
			if ext == want {
				logger.Debug("found XML file", "path", path)
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, xserrors.NewIOError(root, "walk", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no XML files found in directory: %s", root)
	}

	logger.Info("scan complete", "files", len(files))
	return files, nil
}

// pathDepth returns how many levels below root the path sits.
func pathDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return 1 + strings.Count(rel, string(filepath.Separator))
}

// ValidateDirectory checks that path exists and is a directory.
func ValidateDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return xserrors.NewIOError(path, "stat", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}
	return nil
}
