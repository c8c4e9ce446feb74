// Package markup holds the tree operations used on template regions.
//
// Trees are golang.org/x/net/html nodes hung under a synthetic document
// node, so goquery and htmlquery can run over them directly. The builder
// is deliberately lenient: it keeps custom and PascalCase tags as written
// and never inserts the implied elements an HTML5 parser would.
//
// Example Usage:
//
//	root, err := markup.Parse(`<div><extension-point name="body"/></div>`)
//	for _, n := range markup.FindByTag(root, "extension-point") {
//		markup.Rename(n, "template")
//	}
//	out, err := markup.Render(root)
package markup
