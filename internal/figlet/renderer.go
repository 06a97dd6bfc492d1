package figlet

import (
	"context"
	"strconv"
	"strings"
)

// Defaults used by crust headers and footers.
const (
	DefaultPrefix = "##"
	DefaultPad    = 2
	DefaultLines  = 3
	DefaultWidth  = 80
)

// Options controls a single Render call.
type Options struct {
	// Profile selects predefined arguments. Ignored when Args is set.
	Profile Profile

	// Args replaces the profile arguments when non-empty. The width
	// option is still appended.
	Args []string

	// Prefix and Pad spaces are prepended to every output line.
	Prefix string
	Pad    int

	// Lines is the placeholder height used when rendering is skipped.
	Lines int

	// Width is the total column budget, including the prefix.
	Width int
}

// DefaultOptions returns the options crust uses for block headers.
func DefaultOptions() Options {
	return Options{
		Profile: Standard,
		Prefix:  DefaultPrefix,
		Pad:     DefaultPad,
		Lines:   DefaultLines,
		Width:   DefaultWidth,
	}
}

// Renderer produces prefixed figlet text.
type Renderer struct {
	Runner  Runner
	Enabled bool
}

// New returns an enabled renderer backed by runner.
func New(runner Runner) *Renderer {
	return &Renderer{Runner: runner, Enabled: true}
}

// Active reports whether Render will try to run figlet.
func (r *Renderer) Active() bool {
	return r != nil && r.Enabled && r.Runner != nil
}

// Render returns message as figlet art with every line prefixed. When the
// renderer is disabled or figlet fails, it returns opts.Lines placeholder
// lines instead. Only an unknown profile is reported as an error.
func (r *Renderer) Render(ctx context.Context, message string, opts Options) (string, error) {
	lead := opts.Prefix + strings.Repeat(" ", opts.Pad)
	placeholder := strings.Repeat(lead+"\n", max(opts.Lines, 0))

	if !r.Active() {
		return placeholder, nil
	}

	width := opts.Width - len(lead)
	var args []string
	if len(opts.Args) > 0 {
		args = append(append(args, opts.Args...), "-w", strconv.Itoa(width))
	} else {
		var err error
		if args, err = opts.Profile.Args(width); err != nil {
			return "", err
		}
	}

	out, ok := r.Runner.Run(ctx, append(args, message))
	if !ok {
		return placeholder, nil
	}

	return prefixLines(out, lead), nil
}

// prefixLines prepends lead to every line of s, keeping line terminators.
// A final line without a terminator is prefixed too.
func prefixLines(s, lead string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for line := range strings.SplitAfterSeq(s, "\n") {
		if line == "" {
			continue
		}
		b.WriteString(lead)
		b.WriteString(line)
	}
	return b.String()
}
