// Package figlet renders ASCII-art headers and footers with the external
// figlet binary, falling back to blank placeholder lines when it is disabled
// or unavailable.
package figlet

import (
	"fmt"
	"strconv"

	"github.com/agnivade/levenshtein"

	oerrors "github.com/opmodel/crust/internal/errors"
)

// Profile names a predefined set of figlet arguments.
type Profile string

const (
	// Standard uses figlet's default font with kerning.
	Standard Profile = "std"

	// Big uses the "big" font with kerning.
	Big Profile = "big"
)

// profiles maps each profile to its arguments, excluding the width option.
var profiles = map[Profile][]string{
	Standard: {"-k"},
	Big:      {"-k", "-f", "big"},
}

// Profiles returns all profile names in a stable order.
func Profiles() []Profile {
	return []Profile{Standard, Big}
}

// IsValid reports whether p is a known profile.
func (p Profile) IsValid() bool {
	_, ok := profiles[p]
	return ok
}

// Args returns the figlet arguments for the profile with a width limit of
// width columns appended.
func (p Profile) Args(width int) ([]string, error) {
	base, ok := profiles[p]
	if !ok {
		return nil, unknownProfile(string(p), "")
	}
	args := make([]string, 0, len(base)+2)
	args = append(args, base...)
	return append(args, "-w", strconv.Itoa(width)), nil
}

// ParseProfile converts a name to a Profile. field names the option the name
// came from and is reported in the error.
func ParseProfile(name, field string) (Profile, error) {
	p := Profile(name)
	if !p.IsValid() {
		return "", unknownProfile(name, field)
	}
	return p, nil
}

func unknownProfile(name, field string) error {
	hint := fmt.Sprintf("Valid profiles: %s, %s", Standard, Big)
	if s := suggest(name); s != "" {
		hint = fmt.Sprintf("Did you mean %q? %s", s, hint)
	}
	return oerrors.NewValidationError(fmt.Sprintf("unknown figlet profile %q", name), field, hint)
}

// suggest returns the closest profile name within an edit distance of 2.
func suggest(name string) string {
	best, bestDist := "", 3
	for _, p := range Profiles() {
		if d := levenshtein.ComputeDistance(name, string(p)); d < bestDist {
			best, bestDist = string(p), d
		}
	}
	return best
}
