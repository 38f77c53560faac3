// Package search implements substring matching over the lines of a text.
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"minigrep/internal/lines"
)

// LineSearcher adapts the package functions to domain.Searcher.
type LineSearcher struct{}

// NewLineSearcher returns a LineSearcher.
func NewLineSearcher() *LineSearcher { return &LineSearcher{} }

// Search calls the package-level Search.
func (LineSearcher) Search(query, text string, caseInsensitive bool) []string {
	return Search(query, text, caseInsensitive)
}

// Search returns the lines of text containing query, in file order.
func Search(query, text string, caseInsensitive bool) []string {
	if caseInsensitive {
		return SearchCaseInsensitive(query, text)
	}
	return SearchCaseSensitive(query, text)
}

// SearchCaseSensitive returns the lines of text that contain query byte for byte.
// The returned strings are substrings of text.
func SearchCaseSensitive(query, text string) []string {
	var out []string
	for _, line := range lines.Split(text) {
		if strings.Contains(line, query) {
			out = append(out, line)
		}
	}
	return out
}

// SearchCaseInsensitive lowercases query and every line before testing
// containment. The original line is returned, never its lowercased form.
// A line that contains query exactly always matches, even when lowercasing
// rewrites invalid UTF-8 in query.
func SearchCaseInsensitive(query, text string) []string {
	lowered := strings.ToLower(query)
	var out []string
	for _, line := range lines.Split(text) {
		if strings.Contains(line, query) || strings.Contains(strings.ToLower(line), lowered) {
			out = append(out, line)
		}
	}
	return out
}

// Span is a half-open byte range [Start, End) within a line.
type Span struct {
	Start int
	End   int
}

// Spans reports where query occurs in line. Occurrences do not overlap and
// always start and end on rune boundaries of line.
func Spans(line, query string, caseInsensitive bool) []Span {
	if query == "" {
		return nil
	}
	if !caseInsensitive {
		var spans []Span
		for off := 0; ; {
			i := strings.Index(line[off:], query)
			if i < 0 {
				return spans
			}
			start := off + i
			spans = append(spans, Span{Start: start, End: start + len(query)})
			off = start + len(query)
		}
	}

	hay, starts, ends := lowerWithOffsets(line)
	needle, _, _ := lowerWithOffsets(query)
	var spans []Span
	for off := 0; off < len(hay); {
		i := strings.Index(hay[off:], needle)
		if i < 0 {
			break
		}
		first := off + i
		last := first + len(needle) - 1
		sp := Span{Start: starts[first], End: ends[last]}
		if len(spans) == 0 || sp.Start >= spans[len(spans)-1].End {
			spans = append(spans, sp)
		}
		off = last + 1
	}
	return spans
}

// lowerWithOffsets lowercases s rune by rune. For every byte of the result,
// starts and ends hold the byte range of the rune of s it came from.
// Invalid bytes are copied through unchanged.
func lowerWithOffsets(s string) (lowered string, starts, ends []int) {
	var b strings.Builder
	b.Grow(len(s))
	starts = make([]int, 0, len(s))
	ends = make([]int, 0, len(s))
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		n := b.Len()
		if r == utf8.RuneError && width == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		for j := n; j < b.Len(); j++ {
			starts = append(starts, i)
			ends = append(ends, i+width)
		}
		i += width
	}
	return b.String(), starts, ends
}
