package sfc

import (
	"html"
	"strings"
)

// Source serializes the auxiliary blocks of d: custom blocks in source
// order (top-level extension blocks excluded), then the script, then the
// styles. The template is never emitted.
func Source(d *Descriptor) string {
	parts := make([]string, 0, len(d.CustomBlocks)+len(d.Styles)+1)
	for _, b := range d.CustomBlocks {
		if b.Type == TypeExtension {
			continue
		}
		parts = append(parts, BlockSource(b))
	}
	if d.Script != nil {
		parts = append(parts, BlockSource(d.Script))
	}
	for _, b := range d.Styles {
		parts = append(parts, BlockSource(b))
	}
	return strings.Join(parts, "\n")
}

// BlockSource renders b as <type attrs>content</type>.
func BlockSource(b *Block) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(b.Type)
	writeAttrs(&sb, b.Attrs)
	sb.WriteString(">")
	sb.WriteString(b.Content)
	sb.WriteString("</")
	sb.WriteString(b.Type)
	sb.WriteString(">")
	return sb.String()
}

// Component assembles a full component: a template with the given
// attributes wrapping body, followed by the auxiliary blocks of d.
func Component(attrs Attrs, body string, d *Descriptor) string {
	var sb strings.Builder
	sb.WriteString("<template")
	writeAttrs(&sb, attrs)
	sb.WriteString(">")
	sb.WriteString(body)
	sb.WriteString("</template>\n")
	sb.WriteString(Source(d))
	return sb.String()
}

func writeAttrs(sb *strings.Builder, attrs Attrs) {
	for _, a := range attrs {
		sb.WriteString(" ")
		sb.WriteString(a.Key)
		if a.Val == "" {
			continue
		}
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Val))
		sb.WriteString(`"`)
	}
}
