package sfc

import "errors"

// ErrMalformedSource is returned when raw text cannot be split into a
// template block plus auxiliary blocks, or carries an invalid directive.
var ErrMalformedSource = errors.New("malformed component source")

// Block types with special placement in a component.
const (
	TypeTemplate  = "template"
	TypeScript    = "script"
	TypeStyle     = "style"
	TypeExtension = "extension"
)

// Template directives.
const (
	AttrExtends    = "extends"
	AttrExtendable = "extendable"
)

// Attr is a single block attribute. An empty Val is a presence-only flag.
type Attr struct {
	Key string
	Val string
}

// Attrs is an ordered attribute list with unique keys.
type Attrs []Attr

// Get returns the value for key.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// Has reports whether key is present.
func (a Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Set replaces the value of key or appends it.
func (a *Attrs) Set(key, val string) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Val = val
			return
		}
	}
	*a = append(*a, Attr{Key: key, Val: val})
}

// Del removes key if present.
func (a *Attrs) Del(key string) {
	out := (*a)[:0]
	for _, attr := range *a {
		if attr.Key != key {
			out = append(out, attr)
		}
	}
	*a = out
}

// Block is one top-level section of a component file.
type Block struct {
	Type    string
	Attrs   Attrs
	Content string
}

// Descriptor is the parsed form of a component file.
type Descriptor struct {
	Template     *Block
	Script       *Block
	Styles       []*Block
	CustomBlocks []*Block
}

// Extends returns the base path named by the template, if any.
func (d *Descriptor) Extends() (string, bool) {
	if d.Template == nil {
		return "", false
	}
	return d.Template.Attrs.Get(AttrExtends)
}

// Extendable reports whether the template still carries unresolved
// extension points for a further descendant.
func (d *Descriptor) Extendable() bool {
	return d.Template != nil && d.Template.Attrs.Has(AttrExtendable)
}
