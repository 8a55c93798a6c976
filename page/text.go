package page

import "fmt"

// TideChip formats the tide as a whole percentage.
func TideChip(tide float32) string {
	return fmt.Sprintf("Tide: %.0f%%", tide*100)
}

// RippleChip formats the splash count.
func RippleChip(n int) string {
	return fmt.Sprintf("Ripples: %d", n)
}

// CurrentChip formats the pond current arrow.
func CurrentChip(arrow string) string {
	return "Current: " + arrow
}

// Wrap splits text into lines no wider than width according to measure.
func Wrap(text string, width int32, measure func(string) int32) []string {
	var lines []string
	line := ""
	word := ""
	flush := func() {
		if word == "" {
			return
		}
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && measure(candidate) > width {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
		word = ""
	}
	for _, ch := range text {
		if ch == ' ' {
			flush()
			continue
		}
		word += string(ch)
	}
	flush()
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
