// Package transform is the per-file entry point used by build tooling.
//
// Transform resolves the extends chain of a component, finalizes the
// merged result into plain compiler input and reports the ancestor files
// the output depends on. Source maps are passed through unmodified.
//
// Example Usage:
//
//	t := transform.New(extend.NewResolver(extend.DefaultOptions()), logger, nil)
//	out, err := t.Transform(ctx, transform.Input{Filename: path, Source: src}, loader)
package transform
