package text

import "strings"

// Lines splits s at newlines.
func Lines(s string) []string {
	return strings.Split(s, "\n")
}

// Wrap breaks s into lines no wider than width, breaking at spaces.
// Explicit newlines always break. A single word wider than width gets a
// line of its own and overflows.
func Wrap(f *Face, s string, width float64) []string {
	var out []string
	for _, para := range Lines(s) {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		space := f.Advance(" ")
		line := words[0]
		lineWidth := f.Advance(line)
		for _, word := range words[1:] {
			ww := f.Advance(word)
			if lineWidth+space+ww > width {
				out = append(out, line)
				line, lineWidth = word, ww
				continue
			}
			line += " " + word
			lineWidth += space + ww
		}
		out = append(out, line)
	}
	return out
}
