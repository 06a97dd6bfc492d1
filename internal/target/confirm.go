package target

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoAnswer is returned when input ends before a yes or no answer.
var ErrNoAnswer = errors.New("no answer to overwrite prompt")

// Confirmer asks the operator whether an existing file may be replaced.
type Confirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewConfirmer creates a confirmer reading answers from in and writing
// prompts to out.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Confirm prompts until it reads y/yes (true) or n/no (false). Empty or
// unrecognized answers prompt again.
func (c *Confirmer) Confirm(path string) (bool, error) {
	for {
		fmt.Fprintf(c.out, "Warning: File %s already exists, do you want to replace it? [y/n]: ", path)

		line, err := c.reader.ReadString('\n')
		switch strings.TrimSpace(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(c.out)
				return false, ErrNoAnswer
			}
			return false, fmt.Errorf("reading answer: %w", err)
		}
	}
}
