package filesystem

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// DetectCharset returns the most likely charset of data, lowercased.
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// DecodeUTF8 returns data as UTF-8. Valid UTF-8 is returned as is; other
// input is decoded from its detected charset, falling back to the raw
// bytes when no decoder exists for it.
func DecodeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	reader, err := charset.NewReaderLabel(DetectCharset(data), bytes.NewReader(data))
	if err != nil {
		return data
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return data
	}
	return decoded
}

// IsText reports whether data sniffs as some kind of text.
func IsText(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
