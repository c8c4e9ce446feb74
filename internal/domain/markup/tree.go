package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidElements never take children, matching html.Render's own set.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"keygen": true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// Parse builds a forest from template markup and hangs it under a
// synthetic document node. Tags are not reordered or implied the way an
// HTML5 parser would: unmatched end tags are dropped and open elements
// are closed at end of input.
func Parse(text string) (*html.Node, error) {
	root := &html.Node{Type: html.DocumentNode}
	stack := []*html.Node{root}

	z := html.NewTokenizer(strings.NewReader(text))
	pos := 0
	for {
		tt := z.Next()
		n := len(z.Raw())
		raw := text[pos : pos+n]
		pos += n
		top := stack[len(stack)-1]

		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return root, nil
			}
			return nil, fmt.Errorf("tokenize markup: %w", z.Err())

		case html.TextToken:
			top.AppendChild(&html.Node{Type: html.TextNode, Data: string(z.Text())})

		case html.CommentToken:
			top.AppendChild(&html.Node{Type: html.CommentNode, Data: string(z.Text())})

		case html.DoctypeToken:
			top.AppendChild(&html.Node{Type: html.DoctypeNode, Data: string(z.Text())})

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := StartTag(z, tt, raw)
			el := &html.Node{
				Type:     html.ElementNode,
				Data:     name,
				DataAtom: atom.Lookup([]byte(name)),
				Attr:     TagAttrs(z, raw, hasAttr),
			}
			top.AppendChild(el)
			// Void is case-sensitive, as in html.Render: <Link> is a component.
			if tt == html.StartTagToken && !voidElements[name] {
				stack = append(stack, el)
			}

		case html.EndTagToken:
			lowered, _ := z.TagName()
			for i := len(stack) - 1; i > 0; i-- {
				if strings.EqualFold(stack[i].Data, string(lowered)) {
					stack = stack[:i]
					break
				}
			}
		}
	}
}

// Render serializes every node under root back to markup.
func Render(root *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("render markup: %w", err)
		}
	}
	return buf.String(), nil
}

// tagMatcher is a goquery.Matcher selecting element nodes by exact name.
type tagMatcher string

func (m tagMatcher) Match(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == string(m)
}

func (m tagMatcher) MatchAll(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if m.Match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func (m tagMatcher) Filter(nodes []*html.Node) []*html.Node {
	var out []*html.Node
	for _, n := range nodes {
		if m.Match(n) {
			out = append(out, n)
		}
	}
	return out
}

// FindByTag returns every element named tag below root, at any depth, in
// document order.
func FindByTag(root *html.Node, tag string) []*html.Node {
	return goquery.NewDocumentFromNode(root).FindMatcher(tagMatcher(tag)).Nodes
}

// FindTopLevel returns the direct element children of root named tag.
func FindTopLevel(root *html.Node, tag string) ([]*html.Node, error) {
	nodes, err := htmlquery.QueryAll(root, "/"+tag)
	if err != nil {
		return nil, fmt.Errorf("query top-level %q: %w", tag, err)
	}
	return nodes, nil
}
