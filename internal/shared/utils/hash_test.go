package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasher(t *testing.T) {
	h := DefaultHasher()

	// sha256 of the empty string
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", h.HashString(""))
	assert.Equal(t, h.Hash([]byte("<template></template>")), h.HashString("<template></template>"))
	assert.NotEqual(t, h.HashString("a"), h.HashString("b"))
}

func TestShort(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc", Short("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"))
	assert.Equal(t, "abc", Short("abc"))
}
