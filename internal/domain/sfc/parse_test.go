package sfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const childSource = `<template extends="./Base.vue">
  <extensions>
    <extension point="body"><p>Hi</p></extension>
  </extensions>
</template>

<script>
export default { name: 'Child' }
</script>

<style scoped>
p { color: red; }
</style>
`

func TestParse(t *testing.T) {
	d, err := Parse(childSource, ParseOptions{})
	require.NoError(t, err)

	require.NotNil(t, d.Template)
	assert.Equal(t, Attrs{{Key: "extends", Val: "./Base.vue"}}, d.Template.Attrs)
	assert.Equal(t, "\n  <extensions>\n    <extension point=\"body\"><p>Hi</p></extension>\n  </extensions>\n", d.Template.Content)

	base, ok := d.Extends()
	assert.True(t, ok)
	assert.Equal(t, "./Base.vue", base)
	assert.False(t, d.Extendable())

	require.NotNil(t, d.Script)
	assert.Equal(t, "\nexport default { name: 'Child' }\n", d.Script.Content)
	assert.Empty(t, d.Script.Attrs)

	require.Len(t, d.Styles, 1)
	assert.Equal(t, Attrs{{Key: "scoped"}}, d.Styles[0].Attrs)
	assert.Equal(t, "\np { color: red; }\n", d.Styles[0].Content)
	assert.Empty(t, d.CustomBlocks)
}

func TestParseContentVerbatim(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "entities kept",
			source: `<template><p>&amp; &lt;</p></template>`,
			want:   `<p>&amp; &lt;</p>`,
		},
		{
			name:   "nested templates",
			source: `<template><div><template v-if="x"><b>a</b></template></div></template>`,
			want:   `<div><template v-if="x"><b>a</b></template></div>`,
		},
		{
			name:   "case and unusual attributes",
			source: `<template><MyComp :fooBar="1" @Click='go'/></template>`,
			want:   `<MyComp :fooBar="1" @Click='go'/>`,
		},
		{
			name:   "empty template",
			source: `<template></template>`,
			want:   ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.source, ParseOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Template.Content)
		})
	}
}

func TestParseBlocks(t *testing.T) {
	source := `leading text
<docs/>
<i18n locale="en">{"hi": "Hi"}</i18n>
<template extendable><div/></template>
<script lang="ts">const s = "</template>"</script>
<style>a {}</style>
<style lang="scss">b {}</style>
`
	d, err := Parse(source, ParseOptions{})
	require.NoError(t, err)

	assert.True(t, d.Extendable())
	assert.Equal(t, `const s = "</template>"`, d.Script.Content)
	require.Len(t, d.CustomBlocks, 2)
	assert.Equal(t, "docs", d.CustomBlocks[0].Type)
	assert.Equal(t, "", d.CustomBlocks[0].Content)
	assert.Equal(t, "i18n", d.CustomBlocks[1].Type)
	require.Len(t, d.Styles, 2)
	assert.Equal(t, "b {}", d.Styles[1].Content)
}

func TestParseCustomBlockCase(t *testing.T) {
	source := `<template><Textarea><b>x</b></Textarea></template>
<I18n locale="en"><I18n>{}</i18n></I18N>`
	d, err := Parse(source, ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, "<Textarea><b>x</b></Textarea>", d.Template.Content)
	require.Len(t, d.CustomBlocks, 1)
	b := d.CustomBlocks[0]
	assert.Equal(t, "I18n", b.Type)
	assert.Equal(t, "<I18n>{}</i18n>", b.Content)
	assert.Equal(t, `<I18n locale="en"><I18n>{}</i18n></I18n>`, Source(d))
}

func TestParseCapitalizedScriptIsCustom(t *testing.T) {
	d, err := Parse(`<template><p/></template><Script>x</Script>`, ParseOptions{})
	require.NoError(t, err)

	assert.Nil(t, d.Script)
	require.Len(t, d.CustomBlocks, 1)
	assert.Equal(t, "Script", d.CustomBlocks[0].Type)
}

func TestParseDuplicateAttributeFirstWins(t *testing.T) {
	d, err := Parse(`<template extends="./A.vue" extends="./B.vue"></template>`, ParseOptions{})
	require.NoError(t, err)

	base, _ := d.Extends()
	assert.Equal(t, "./A.vue", base)
	assert.Len(t, d.Template.Attrs, 1)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "no template", source: `<script>x</script>`},
		{name: "empty input", source: ``},
		{name: "unterminated block", source: `<template><div></div>`},
		{name: "unterminated script", source: "<template></template>\n<script>x"},
		{name: "stray end tag", source: `</div><template></template>`},
		{name: "two templates", source: `<template></template><template></template>`},
		{name: "two scripts", source: `<template></template><script></script><script></script>`},
		{name: "empty extends", source: `<template extends=""></template>`},
		{name: "blank extends", source: `<template extends="  "></template>`},
		{name: "extendable with value", source: `<template extendable="yes"></template>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.source, ParseOptions{})
			assert.ErrorIs(t, err, ErrMalformedSource)
			assert.Nil(t, d)
		})
	}
}

func TestParsePadLine(t *testing.T) {
	source := "<template><div/></template>\n\n<script>\nx\n</script>\n<style>\na\n</style>\n<docs>d</docs>"

	d, err := Parse(source, ParseOptions{Pad: PadLine})
	require.NoError(t, err)

	assert.Equal(t, "<div/>", d.Template.Content)
	assert.Equal(t, "//\n//\n\nx\n", d.Script.Content)
	assert.Equal(t, "\n\n\n\n\n\na\n", d.Styles[0].Content)
	assert.Equal(t, "\n\n\n\n\n\n\n\nd", d.CustomBlocks[0].Content)
}

func TestParsePadLineTypedScript(t *testing.T) {
	d, err := Parse("<template></template>\n<script lang=\"ts\">x</script>", ParseOptions{Pad: PadLine})
	require.NoError(t, err)
	assert.Equal(t, "\nx", d.Script.Content)
}

func TestAttrs(t *testing.T) {
	var a Attrs
	a.Set("extends", "./A.vue")
	a.Set("class", "x")
	a.Set("extends", "./B.vue")

	v, ok := a.Get("extends")
	assert.True(t, ok)
	assert.Equal(t, "./B.vue", v)
	assert.Len(t, a, 2)

	a.Del("extends")
	assert.False(t, a.Has("extends"))
	assert.Equal(t, Attrs{{Key: "class", Val: "x"}}, a)
}
