package service

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"minigrep/internal/domain"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeText converts raw file content to a UTF-8 string. A UTF-8 byte order
// mark is dropped and UTF-16 content with a byte order mark is transcoded.
// Anything else must already be valid UTF-8.
func DecodeText(content []byte) (string, error) {
	var dec *encoding.Decoder
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		content = content[len(bomUTF8):]
	case bytes.HasPrefix(content, bomUTF16LE):
		dec = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	case bytes.HasPrefix(content, bomUTF16BE):
		dec = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	}
	if dec != nil {
		decoded, err := dec.Bytes(content)
		if err != nil {
			return "", domain.ErrInvalidText
		}
		content = decoded
	}
	if !utf8.Valid(content) {
		return "", domain.ErrInvalidText
	}
	return string(content), nil
}
