package label

import "strings"

// MeasureFunc returns the rendered width of s.
type MeasureFunc func(s string) float64

// WrapText breaks text into lines greedily: a word joins the current line
// while the joined line stays narrower than maxWidth. A word wider than
// maxWidth on its own gets a line to itself and is not split.
func WrapText(measure MeasureFunc, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) < maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
