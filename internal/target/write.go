package target

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	oerrors "github.com/opmodel/crust/internal/errors"
	"github.com/opmodel/crust/internal/output"
)

// Outcome describes what Writer.Write did.
type Outcome string

const (
	// Created means the file did not exist and was written.
	Created Outcome = "created"

	// Replaced means an existing file was truncated and rewritten.
	Replaced Outcome = "replaced"

	// Kept means the operator declined and the file was left alone.
	Kept Outcome = "kept"
)

// Writer writes generated text, asking before it replaces a file.
type Writer struct {
	// Force replaces existing files without asking.
	Force bool

	// Confirmer is consulted for existing files when Force is false.
	Confirmer *Confirmer
}

// Write stores content at path. An existing file is replaced only when
// Force is set or the operator confirms.
func (w *Writer) Write(path, content string) (Outcome, error) {
	_, err := os.Stat(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("checking %s: %w", path, err)
	}

	if exists && !w.Force {
		if w.Confirmer == nil {
			return "", fmt.Errorf("file %s already exists; use --force to overwrite", path)
		}
		ok, err := w.Confirmer.Confirm(path)
		if err != nil {
			return "", err
		}
		if !ok {
			output.Debug("keeping existing file", "path", path)
			return Kept, nil
		}
	}

	if err := WriteFile(path, content, exists); err != nil {
		return "", err
	}

	if exists {
		return Replaced, nil
	}
	return Created, nil
}

// WriteFile writes content to path. Without overwrite the file must not
// exist yet; with overwrite it is truncated.
func WriteFile(path, content string, overwrite bool) error {
	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return wrapWriteError(path, err)
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return wrapWriteError(path, err)
	}

	if err := f.Close(); err != nil {
		return wrapWriteError(path, err)
	}

	output.Debug("wrote file", "path", path, "bytes", len(content), "overwrite", overwrite)
	return nil
}

func wrapWriteError(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return oerrors.NewPermissionError(err.Error(), path, "Check the permissions of the target directory.")
	}
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("file %s appeared while writing; rerun to be asked about replacing it: %w", path, err)
	}
	return fmt.Errorf("writing %s: %w", path, err)
}
