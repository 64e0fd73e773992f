package utils

import (
	"strings"
)

// SplitAndTrim splits value on sep, trims whitespace and drops empty
// entries. Used for comma-joined tags and newline-joined bullet points.
func SplitAndTrim(value, sep string) []string {
	parts := strings.Split(value, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		result = append(result, p)
	}
	return result
}
