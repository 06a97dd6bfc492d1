package crust

import "strings"

// Join concatenates segments in order. A nil or empty slice yields "".
func Join(segments []string) string {
	return strings.Join(segments, "")
}
