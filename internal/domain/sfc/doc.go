// Package sfc splits single-file component source into blocks and puts
// it back together.
//
// A component is a sequence of top-level blocks: one <template>, at most
// one <script>, any number of <style> blocks and custom blocks such as
// <i18n> or <docs>. Parse keeps each block's attributes and its content
// exactly as written; Source writes the auxiliary blocks back in the fixed
// order custom, script, styles.
//
// Template directives:
//   - extends="<path>": names the base component
//   - extendable: marks a merged template that still has open extension points
//
// Example Usage:
//
//	d, err := sfc.Parse(src, sfc.ParseOptions{})
//	if base, ok := d.Extends(); ok {
//		fmt.Println("extends", base)
//	}
//	out := sfc.Component(nil, d.Template.Content, d)
package sfc
