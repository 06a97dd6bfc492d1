package crust

// Tags holds the four decorations placed around a label: before and after it
// in the top bar, then before and after it in the bottom bar.
type Tags [4]string

// ParseTags normalizes a tag string into four slots.
//
//	""      -> "", "", "", ""
//	"@"     -> "@", " ", " ", " "
//	"@!"    -> "@", " ", "!", " "
//	"@!@"   -> "@", "!", "@", " "
//	"!!@@x" -> "!", "!", "@", "@"
func ParseTags(s string) Tags {
	r := []rune(s)
	switch len(r) {
	case 0:
		return Tags{}
	case 1:
		return Tags{string(r[0]), " ", " ", " "}
	case 2:
		return Tags{string(r[0]), " ", string(r[1]), " "}
	case 3:
		return Tags{string(r[0]), string(r[1]), string(r[2]), " "}
	default:
		return Tags{string(r[0]), string(r[1]), string(r[2]), string(r[3])}
	}
}

// Top returns the decorations around the label in the opening bar.
func (t Tags) Top() (before, after string) {
	return t[0], t[1]
}

// Bottom returns the decorations around the label in the closing bar.
func (t Tags) Bottom() (before, after string) {
	return t[2], t[3]
}
