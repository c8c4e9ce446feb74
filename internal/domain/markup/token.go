package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// TagName returns the name of a start or end tag with its source case.
// The tokenizer lowercases names in place, so the original spelling is
// recovered from the raw token text.
func TagName(raw string, lowered []byte) string {
	i := 1
	if i < len(raw) && raw[i] == '/' {
		i++
	}
	if end := i + len(lowered); end <= len(raw) && strings.EqualFold(raw[i:end], string(lowered)) {
		return raw[i:end]
	}
	return string(lowered)
}

// StartTag returns the name of the current start or self-closing tag with
// its source case. The tokenizer decides raw text on the lowercased name;
// that mode is kept only for an exact lowercase start tag, so <Textarea>
// or <Title> components and self-closed <textarea/> keep markup after them.
func StartTag(z *html.Tokenizer, tt html.TokenType, raw string) (name string, hasAttr bool) {
	lowered, hasAttr := z.TagName()
	name = TagName(raw, lowered)
	if tt == html.SelfClosingTagToken || name != string(lowered) {
		z.NextIsNotRawText()
	}
	return name, hasAttr
}

// TagAttrs drains the attributes of the current tag. Keys keep their
// source case when the raw text can be matched key for key.
// TagName or StartTag must have been called on z first.
func TagAttrs(z *html.Tokenizer, raw string, hasAttr bool) []html.Attribute {
	var attrs []html.Attribute
	for hasAttr {
		key, val, more := z.TagAttr()
		attrs = append(attrs, html.Attribute{Key: string(key), Val: string(val)})
		hasAttr = more
	}

	names := rawAttrNames(raw)
	if len(names) != len(attrs) {
		return attrs
	}
	for i := range attrs {
		if strings.EqualFold(names[i], attrs[i].Key) {
			attrs[i].Key = names[i]
		}
	}
	return attrs
}

func rawAttrNames(raw string) []string {
	i := 1
	for i < len(raw) && !isSpace(raw[i]) && raw[i] != '/' && raw[i] != '>' {
		i++
	}

	var names []string
	for i < len(raw) {
		for i < len(raw) && (isSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			break
		}

		start := i
		i++
		for i < len(raw) && !isSpace(raw[i]) && raw[i] != '/' && raw[i] != '>' && raw[i] != '=' {
			i++
		}
		names = append(names, raw[start:i])

		for i < len(raw) && isSpace(raw[i]) {
			i++
		}
		if i >= len(raw) || raw[i] != '=' {
			continue
		}
		i++
		for i < len(raw) && isSpace(raw[i]) {
			i++
		}
		if i < len(raw) && (raw[i] == '"' || raw[i] == '\'') {
			quote := raw[i]
			i++
			for i < len(raw) && raw[i] != quote {
				i++
			}
			i++
			continue
		}
		for i < len(raw) && !isSpace(raw[i]) && raw[i] != '>' {
			i++
		}
	}
	return names
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\n', '\r', '\t', '\f':
		return true
	}
	return false
}
