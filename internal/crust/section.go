// Package crust builds the text of a new source file: a header, labeled
// blocks framed by comment bars, an optional entry point and footer.
package crust

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	oerrors "github.com/opmodel/crust/internal/errors"
	"github.com/opmodel/crust/internal/figlet"
)

// barOverhead is the number of columns in a labeled bar not taken by the
// fill, the label or the padding.
const barOverhead = 3

// SectionSpec describes one labeled block.
type SectionSpec struct {
	// Label is shown in both bars and rendered as the figlet header.
	Label string

	// Body goes between the bars. A nil Body is empty.
	Body Body

	// Prefix is the unit repeated by a Lines body.
	Prefix string

	// Width is the column budget of each bar, including the newline.
	Width int

	// Bar is the fill string of the bars. It is repeated as a unit, so a
	// multi-character bar makes the line wider than Width.
	Bar string

	// Pad is the number of spaces on each side of the tagged label.
	Pad int

	// Tags is the raw tag string, normalized with ParseTags.
	Tags string

	// Head is repeated HeadRepeat times above the block when art is off.
	Head       string
	HeadRepeat int

	// Foot is repeated FootRepeat times below the block.
	Foot       string
	FootRepeat int

	// Art renders the header when active.
	Art        *figlet.Renderer
	ArtOptions figlet.Options
}

// DefaultSection returns a SectionSpec for a plain one-line block named label.
func DefaultSection(label string) SectionSpec {
	return SectionSpec{
		Label:      label,
		Body:       Lines(1),
		Prefix:     "\n",
		Width:      80,
		Bar:        "#",
		Pad:        1,
		Tags:       "    ",
		Head:       "\n",
		HeadRepeat: 3,
		ArtOptions: figlet.DefaultOptions(),
	}
}

// BarSplit returns the fill lengths on each side of a label. The left side
// takes the extra column of an odd split. It fails when width leaves no room
// for any fill.
//
// The label is measured in terminal columns (runewidth), not bytes or runes,
// so wide and combining characters keep the bar at width columns. The
// lengths count repetitions of the bar string, one column each for a
// single-character bar.
func BarSplit(width int, label string, pad int) (left, right int, err error) {
	if pad < 0 {
		return 0, 0, oerrors.NewValidationError(
			fmt.Sprintf("pad must not be negative, got %d", pad), "pad", "")
	}

	labelWidth := runewidth.StringWidth(label)
	fill := width - labelWidth - 2*pad - barOverhead
	if fill < 1 {
		return 0, 0, oerrors.NewValidationError(
			fmt.Sprintf("width %d is too small for block %q", width, label),
			"width",
			fmt.Sprintf("Use a width of at least %d or a smaller pad", labelWidth+2*pad+barOverhead+1))
	}

	right = fill / 2
	return fill - right, right, nil
}

// Section renders one block:
//
//	header, top bar, body, bottom bar, footer
func Section(ctx context.Context, spec SectionSpec) (string, error) {
	if spec.Bar == "" {
		return "", oerrors.NewValidationError("bar must not be empty", "bar", `Use "#" for Python-style comments`)
	}

	tags := ParseTags(spec.Tags)

	left, right, err := BarSplit(spec.Width, spec.Label, spec.Pad)
	if err != nil {
		return "", err
	}

	var head string
	if spec.Art.Active() {
		opts := spec.ArtOptions
		opts.Width = spec.Width
		if head, err = spec.Art.Render(ctx, spec.Label, opts); err != nil {
			return "", err
		}
	} else {
		head = strings.Repeat(spec.Head, max(spec.HeadRepeat, 0))
	}

	var foot string
	if spec.Foot != "" {
		foot = strings.Repeat(spec.Foot, max(spec.FootRepeat, 0))
	}

	var body string
	if spec.Body != nil {
		if body, err = spec.Body.expand(spec.Prefix); err != nil {
			return "", err
		}
	}

	lbar := strings.Repeat(spec.Bar, left)
	rbar := strings.Repeat(spec.Bar, right)
	pad := strings.Repeat(" ", spec.Pad)

	t1, t2 := tags.Top()
	t3, t4 := tags.Bottom()

	top := Join([]string{lbar, pad, t1, spec.Label, t2, pad, rbar, "\n"})
	bottom := Join([]string{lbar, pad, t3, spec.Label, t4, pad, rbar, "\n"})

	return Join([]string{head, top, body, bottom, foot}), nil
}
