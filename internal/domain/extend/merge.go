package extend

import (
	"fmt"

	"github.com/GriffinCanCode/sfc-extends/internal/domain/markup"
	"github.com/GriffinCanCode/sfc-extends/internal/domain/sfc"
	"golang.org/x/net/html"
)

// Markup vocabulary.
const (
	TagExtensionPoint = "extension-point"
	TagExtensions     = "extensions"
	TagExtension      = "extension"
	TagNeutral        = "template"

	AttrName  = "name"
	AttrPoint = "point"
)

// Merge splices the overrides declared by child into the extension points
// of base, whose template must already be resolved. It returns a new
// component: the merged template marked extendable, followed by the
// auxiliary blocks of child. Neither descriptor is modified.
func Merge(child, base *sfc.Descriptor) (string, error) {
	baseRoot, err := markup.Parse(base.Template.Content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedAncestor, err)
	}
	childRoot, err := markup.Parse(child.Template.Content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", sfc.ErrMalformedSource, err)
	}

	overrides, err := Overrides(childRoot)
	if err != nil {
		return "", err
	}

	// Points are collected before splicing, so points arriving inside an
	// override stay open for the next descendant.
	for _, point := range markup.FindByTag(baseRoot, TagExtensionPoint) {
		name, ok := markup.Attr(point, AttrName)
		if !ok || name == "" {
			return "", fmt.Errorf("%w: <%s> without %q attribute",
				ErrMalformedAncestor, TagExtensionPoint, AttrName)
		}
		if ext, ok := overrides[name]; ok {
			markup.ReplaceChildren(point, ext)
		}
		Neutralize(point)
	}

	body, err := markup.Render(baseRoot)
	if err != nil {
		return "", err
	}
	return sfc.Component(sfc.Attrs{{Key: sfc.AttrExtendable}}, body, child), nil
}

// Overrides collects the extension blocks of the first top-level
// extensions container under root, keyed by point name. A template
// without a container has no overrides. When several blocks target the
// same point the first one wins.
func Overrides(root *html.Node) (map[string]*html.Node, error) {
	overrides := make(map[string]*html.Node)

	containers, err := markup.FindTopLevel(root, TagExtensions)
	if err != nil {
		return nil, err
	}
	if len(containers) == 0 {
		return overrides, nil
	}

	for c := containers[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != TagExtension {
			continue
		}
		point, ok := markup.Attr(c, AttrPoint)
		if !ok || point == "" {
			return nil, fmt.Errorf("%w: <%s> without %q attribute",
				sfc.ErrMalformedSource, TagExtension, AttrPoint)
		}
		if _, dup := overrides[point]; dup {
			continue
		}
		overrides[point] = c
	}
	return overrides, nil
}

// Neutralize turns an extension point into a plain template tag.
func Neutralize(point *html.Node) {
	markup.Rename(point, TagNeutral)
	markup.RemoveAttr(point, AttrName)
}
