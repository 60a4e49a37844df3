package debugmenu

import (
	"strings"
	"unicode/utf8"
)

// WrapText wraps text at word boundaries so that no row is wider than
// maxWidth, as reported by measure. It appends the byte offset at which each
// row ends to rows. A word wider than maxWidth is split between runes.
// Newlines force a break.
//
// Rows may carry leading or trailing spaces; use TextRow to get the
// trimmed text of a row.
func WrapText(text string, maxWidth float32, measure func(s string) float32, rows []int) []int {
	start := 0
	for {
		for start < len(text) && text[start] == ' ' {
			start++
		}
		if start >= len(text) {
			return rows
		}
		end := wrapRow(text, start, maxWidth, measure)
		rows = append(rows, end)
		start = end
		if start < len(text) && text[start] == '\n' {
			start++
		}
	}
}

// wrapRow returns the end of the row starting at start.
func wrapRow(text string, start int, maxWidth float32, measure func(s string) float32) int {
	lastBreak := -1
	for i := start; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\n' {
			return i
		}
		if i > start && measure(text[start:i+size]) > maxWidth {
			if lastBreak > start {
				return lastBreak
			}
			return i
		}
		if r == ' ' {
			lastBreak = i
		}
		i += size
	}
	return len(text)
}

// TextRow returns row i of text wrapped into rows, without surrounding
// whitespace.
func TextRow(text string, rows []int, i int) string {
	start := 0
	if i > 0 {
		start = rows[i-1]
	}
	return strings.TrimSpace(text[start:rows[i]])
}

// truncateText shortens s so that it fits maxWidth, cutting between runes.
func truncateText(s string, maxWidth float32, measure func(s string) float32) string {
	if measure(s) <= maxWidth {
		return s
	}
	end := 0
	for i, r := range s {
		next := i + utf8.RuneLen(r)
		if measure(s[:next]) > maxWidth {
			break
		}
		end = next
	}
	return s[:end]
}
