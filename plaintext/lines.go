package plaintext

import "strings"

// SplitLines splits s on every carriage return or line feed and drops the
// empty segments. Lines are otherwise returned untouched.
func SplitLines(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '\r' || r == '\n'
	})
}

// TrimLines trims surrounding whitespace from each line and drops lines that
// end up empty. The input slice is not modified.
func TrimLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
