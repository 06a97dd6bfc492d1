package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	oerrors "github.com/opmodel/crust/internal/errors"
	"github.com/opmodel/crust/internal/output"
)

// PrintError writes err to w and returns an ExitError carrying the exit code
// that matches its category. The returned error is marked as printed.
func PrintError(w io.Writer, err error) error {
	if err == nil {
		return nil
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Printed {
		return err
	}

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		fmt.Fprint(w, detail.Error())
	} else {
		fmt.Fprintln(w, "Error: "+strings.TrimSpace(err.Error()))
	}

	code := oerrors.ExitCodeFromError(err)
	output.Debug("command failed", "exit", code, "reason", oerrors.ExitCodeName(code))

	return &oerrors.ExitError{
		Code:    code,
		Err:     err,
		Printed: true,
	}
}
