// Package lines splits text buffers at "\n" and "\r\n" line endings.
package lines

import "strings"

// Split returns the lines of text in order. Each element is a substring of
// text, so the result shares its memory. A final line without a trailing
// newline is included; an empty text has no lines. A lone "\r" that is not
// followed by "\n" stays part of the line.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, strings.Count(text, "\n")+1)
	for text != "" {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			out = append(out, text)
			break
		}
		out = append(out, strings.TrimSuffix(text[:i], "\r"))
		text = text[i+1:]
	}
	return out
}
