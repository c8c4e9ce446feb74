package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagName(t *testing.T) {
	tests := []struct {
		raw     string
		lowered string
		want    string
	}{
		{raw: `<MyComp a="1">`, lowered: "mycomp", want: "MyComp"},
		{raw: `</MyComp>`, lowered: "mycomp", want: "MyComp"},
		{raw: `<div>`, lowered: "div", want: "div"},
		{raw: `<`, lowered: "div", want: "div"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, TagName(tt.raw, []byte(tt.lowered)))
		})
	}
}

func TestRawAttrNames(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: `<div>`, want: nil},
		{raw: `<div a="1" B='2' c=3 d>`, want: []string{"a", "B", "c", "d"}},
		{raw: `<x :fooBar="a b" @Click.stop = "go()"/>`, want: []string{":fooBar", "@Click.stop"}},
		{raw: `<x title="a=b >c">`, want: []string{"title"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, rawAttrNames(tt.raw))
		})
	}
}
