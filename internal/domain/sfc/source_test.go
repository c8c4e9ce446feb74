package sfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceOrder(t *testing.T) {
	d := &Descriptor{
		Template: &Block{Type: TypeTemplate, Content: "<div/>"},
		Script:   &Block{Type: TypeScript, Content: "s"},
		Styles: []*Block{
			{Type: TypeStyle, Attrs: Attrs{{Key: "scoped"}}, Content: "a"},
			{Type: TypeStyle, Attrs: Attrs{{Key: "lang", Val: "scss"}}, Content: "b"},
		},
		CustomBlocks: []*Block{
			{Type: "i18n", Attrs: Attrs{{Key: "locale", Val: "en"}}, Content: "{}"},
			{Type: TypeExtension, Content: "dropped"},
		},
	}

	want := `<i18n locale="en">{}</i18n>` + "\n" +
		`<script>s</script>` + "\n" +
		`<style scoped>a</style>` + "\n" +
		`<style lang="scss">b</style>`
	assert.Equal(t, want, Source(d))
}

func TestSourceEmpty(t *testing.T) {
	assert.Equal(t, "", Source(&Descriptor{Template: &Block{Type: TypeTemplate}}))
}

func TestComponent(t *testing.T) {
	d := &Descriptor{Script: &Block{Type: TypeScript, Content: "x"}}

	got := Component(Attrs{{Key: AttrExtendable}, {Key: "title", Val: `a"b`}}, "<p/>", d)
	assert.Equal(t, `<template extendable title="a&#34;b"><p/></template>`+"\n<script>x</script>", got)
}

func TestComponentRoundTrip(t *testing.T) {
	source := `<template extends="./B.vue" data-x="1 &amp; 2"><div>{{ a }}</div></template>
<docs>readme</docs>
<script setup lang="ts">const a = 1</script>
<style module>.a {}</style>`

	first, err := Parse(source, ParseOptions{})
	require.NoError(t, err)

	second, err := Parse(Component(first.Template.Attrs, first.Template.Content, first), ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
