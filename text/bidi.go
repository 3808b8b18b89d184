package text

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Visual returns s with its runs arranged in display order, left to right.
// Text without right-to-left characters is returned unchanged.
func Visual(s string) string {
	if !hasRTL(s) {
		return s
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return s
	}
	ordering, err := p.Order()
	if err != nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			b.WriteString(reverse(run.String()))
		} else {
			b.WriteString(run.String())
		}
	}
	return b.String()
}

// hasRTL reports whether s contains a strong right-to-left character.
func hasRTL(s string) bool {
	for _, r := range s {
		if r < 0x0590 {
			continue
		}
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			return true
		}
	}
	return false
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
