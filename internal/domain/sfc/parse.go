package sfc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/GriffinCanCode/sfc-extends/internal/domain/markup"
	"golang.org/x/net/html"
)

// PadMode controls how auxiliary block content is padded.
type PadMode int

const (
	// PadNone keeps block content exactly as written.
	PadNone PadMode = iota
	// PadLine prefixes each non-template block with one filler line per
	// source line preceding it, so compiler diagnostics report file lines.
	// A script without lang is padded with "//\n", everything else "\n".
	PadLine
)

// ParseOptions configures Parse.
type ParseOptions struct {
	Pad PadMode
}

// openBlock is a top-level block whose closing tag has not been seen.
type openBlock struct {
	block *Block
	depth int
	start int
	line  int
}

// Parse splits raw component source into its blocks. Block content is
// sliced from source byte for byte.
func Parse(source string, opts ParseOptions) (*Descriptor, error) {
	d := &Descriptor{}
	var cur *openBlock

	z := html.NewTokenizer(strings.NewReader(source))
	pos := 0
	for {
		tt := z.Next()
		n := len(z.Raw())
		start := pos
		raw := source[start : start+n]
		pos += n

		switch tt {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				return nil, fmt.Errorf("%w: %v", ErrMalformedSource, z.Err())
			}
			if cur != nil {
				return nil, fmt.Errorf("%w: unterminated <%s> block opened on line %d",
					ErrMalformedSource, cur.block.Type, cur.line)
			}
			if d.Template == nil {
				return nil, fmt.Errorf("%w: no <template> block", ErrMalformedSource)
			}
			if err := validateTemplate(d.Template); err != nil {
				return nil, err
			}
			return d, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := markup.StartTag(z, tt, raw)
			if cur != nil {
				if strings.EqualFold(name, cur.block.Type) && tt == html.StartTagToken {
					cur.depth++
				}
				continue
			}

			b := &Block{Type: name, Attrs: toAttrs(markup.TagAttrs(z, raw, hasAttr))}
			if tt == html.SelfClosingTagToken {
				if err := d.add(b); err != nil {
					return nil, err
				}
				continue
			}
			cur = &openBlock{block: b, start: pos, line: lineAt(source, start)}

		case html.EndTagToken:
			lowered, _ := z.TagName()
			name := markup.TagName(raw, lowered)
			if cur == nil {
				return nil, fmt.Errorf("%w: unexpected </%s> on line %d",
					ErrMalformedSource, name, lineAt(source, start))
			}
			if !strings.EqualFold(name, cur.block.Type) {
				continue
			}
			if cur.depth > 0 {
				cur.depth--
				continue
			}

			cur.block.Content = pad(source, cur.start, cur.block, opts.Pad) + source[cur.start:start]
			if err := d.add(cur.block); err != nil {
				return nil, err
			}
			cur = nil
		}
	}
}

func (d *Descriptor) add(b *Block) error {
	switch b.Type {
	case TypeTemplate:
		if d.Template != nil {
			return fmt.Errorf("%w: more than one <template> block", ErrMalformedSource)
		}
		d.Template = b
	case TypeScript:
		if d.Script != nil {
			return fmt.Errorf("%w: more than one <script> block", ErrMalformedSource)
		}
		d.Script = b
	case TypeStyle:
		d.Styles = append(d.Styles, b)
	default:
		d.CustomBlocks = append(d.CustomBlocks, b)
	}
	return nil
}

func validateTemplate(b *Block) error {
	if v, ok := b.Attrs.Get(AttrExtends); ok && strings.TrimSpace(v) == "" {
		return fmt.Errorf("%w: empty %q directive on <template>", ErrMalformedSource, AttrExtends)
	}
	if v, ok := b.Attrs.Get(AttrExtendable); ok && v != "" && v != AttrExtendable {
		return fmt.Errorf("%w: %q directive takes no value, got %q", ErrMalformedSource, AttrExtendable, v)
	}
	return nil
}

func toAttrs(in []html.Attribute) Attrs {
	out := make(Attrs, 0, len(in))
	for _, a := range in {
		// first occurrence wins, as in HTML
		if out.Has(a.Key) {
			continue
		}
		out = append(out, Attr{Key: a.Key, Val: a.Val})
	}
	return out
}

func pad(source string, offset int, b *Block, mode PadMode) string {
	if mode != PadLine || b.Type == TypeTemplate {
		return ""
	}
	filler := "\n"
	if b.Type == TypeScript && !b.Attrs.Has("lang") {
		filler = "//\n"
	}
	return strings.Repeat(filler, strings.Count(source[:offset], "\n"))
}

func lineAt(source string, offset int) int {
	return strings.Count(source[:offset], "\n") + 1
}
