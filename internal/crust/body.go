package crust

import (
	"fmt"
	"strings"

	oerrors "github.com/opmodel/crust/internal/errors"
)

// Body is the content placed between a section's bars. It is either a
// Literal or a Lines count.
type Body interface {
	expand(prefix string) (string, error)
}

// Literal is inserted between the bars verbatim.
type Literal string

// Lines fills the section with the prefix repeated Lines+1 times.
type Lines int

func (l Literal) expand(string) (string, error) {
	return string(l), nil
}

func (n Lines) expand(prefix string) (string, error) {
	if n < 0 {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("block length must not be negative, got %d", int(n)),
			"length", "")
	}
	return strings.Repeat(prefix, int(n)+1), nil
}
