package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"node-types", "descriptors", "namespaces"} {
		p, ok := Lookup(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, name, p.Name())
			assert.NotEmpty(t, p.Title())
		}
	}

	_, ok := Lookup("cnd")
	assert.False(t, ok)
}
