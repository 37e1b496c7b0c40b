package testutil

import (
	"strings"
)

// Input joins lines into scripted standard input, one entry per line.
func Input(lines ...string) *strings.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
