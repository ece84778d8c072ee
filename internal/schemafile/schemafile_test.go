package schemafile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

const pageSchema = `
namespaces:
  - prefix: app
    uri: http://example.com/app
nodeTypes:
  - name: app:page
    supertypes: [nt:base, mix:title]
    orderable: true
    primaryItem: app:body
    properties:
      - name: app:body
        defaultValues: ["<p/>"]
        onParentVersion: VERSION
      - name: app:tags
        multiple: true
        valueConstraints: ["[a-z]+"]
    childNodes:
      - name: "*"
        requiredPrimaryTypes: [nt:base]
        defaultPrimaryType: nt:unstructured
        sameNameSiblings: true
        onParentVersion: IGNORE
  - name: app:marker
    mixin: true
`

func TestLoad(t *testing.T) {
	schema, err := Load(strings.NewReader(pageSchema))
	require.NoError(t, err)

	assert.Equal(t, []types.Namespace{{Prefix: "app", URI: "http://example.com/app"}}, schema.Namespaces)
	require.Len(t, schema.NodeTypes, 2)

	page := schema.NodeTypes[0]
	assert.Equal(t, "app:page", page.Name)
	assert.Equal(t, []string{"nt:base", "mix:title"}, page.Supertypes)
	assert.True(t, page.Orderable)
	assert.Equal(t, "app:body", page.PrimaryItem)

	require.Len(t, page.Properties, 2)
	assert.Equal(t, []string{"<p/>"}, page.Properties[0].DefaultValues)
	assert.Equal(t, types.OnParentVersionVersion, page.Properties[0].OnParentVersion)
	assert.Equal(t, types.OnParentVersionCopy, page.Properties[1].OnParentVersion, "defaults to COPY")
	assert.Nil(t, page.Properties[1].DefaultValues)

	require.Len(t, page.ChildNodes, 1)
	child := page.ChildNodes[0]
	assert.Equal(t, types.WildcardName, child.Name)
	assert.Equal(t, "nt:unstructured", child.DefaultPrimaryType)
	assert.True(t, child.SameNameSiblings)
	assert.Equal(t, types.OnParentVersionIgnore, child.OnParentVersion)

	assert.True(t, schema.NodeTypes[1].Mixin)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmptyDocument},
		{"unknown action", "nodeTypes:\n  - name: a\n    properties:\n      - name: p\n        onParentVersion: copy\n", types.ErrUnknownOnParentVersion},
		{"missing name", "nodeTypes:\n  - mixin: true\n", types.ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader("nodeTypes:\n  - name: a\n    mixn: true\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pageSchema), 0o644))

	schema, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, schema.NodeTypes, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
