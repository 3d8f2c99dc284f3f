package components

import "strings"

// joinLines joins rendered rows with newlines.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
