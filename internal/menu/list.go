package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseList converts whitespace-separated integers into a slice.
// An empty line yields an empty list.
func ParseList(line string) ([]int, error) {
	fields := strings.Fields(line)
	list := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", f)
		}
		list = append(list, n)
	}
	return list, nil
}

// FormatList renders a list as "[a, b, c]".
func FormatList(list []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range list {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte(']')
	return b.String()
}
