package help

import "regexp"

// ansiPattern matches terminal escape sequences: ESC, '[', any run of digits
// and semicolons, and a terminating letter.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Normalize strips terminal escape sequences (colors, cursor movement) from
// captured output. No other transformation is applied.
func Normalize(text string) string {
	return ansiPattern.ReplaceAllString(text, "")
}
