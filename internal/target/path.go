// Package target resolves, confirms and writes the generated file.
package target

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/opmodel/crust/internal/errors"
)

// Resolve forces suffix onto path and checks that its directory exists.
// An empty suffix leaves the name alone. The directory is never created.
func Resolve(path, suffix string) (string, error) {
	if path == "" {
		return "", oerrors.NewValidationError("file name must not be empty", "file", "")
	}

	if suffix != "" && ext(path) != suffix {
		path = withSuffix(path, suffix)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return "", oerrors.NewNotFoundError(
			fmt.Sprintf("%s does not exist", dir), dir,
			"Create the directory first; crust does not create parent directories.")
	}
	if err != nil {
		return "", fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", oerrors.NewNotFoundError(fmt.Sprintf("%s is not a directory", dir), dir, "")
	}

	return path, nil
}

// Name returns the file name without directory or suffix.
func Name(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(ext(base))]
}

// withSuffix replaces the extension of path, or appends suffix when there is none.
func withSuffix(path, suffix string) string {
	return path[:len(path)-len(ext(path))] + suffix
}

// ext is filepath.Ext, except that the leading dot of a dotfile such as
// ".hidden" does not start an extension.
func ext(path string) string {
	base := filepath.Base(path)
	e := filepath.Ext(base)
	if e == base {
		return ""
	}
	return e
}
