package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

// findNodeType reads all node types and returns the one named name.
func findNodeType(t *testing.T, b *Backend, name string) *types.NodeType {
	t.Helper()
	sess, err := b.Login(context.Background())
	require.NoError(t, err)
	defer sess.Logout()

	for nt, err := range sess.NodeTypes() {
		require.NoError(t, err)
		if nt.Name == name {
			return nt
		}
	}
	t.Fatalf("node type %q not found", name)
	return nil
}

func TestSession_NodeTypeRoundTrip(t *testing.T) {
	b, _ := attachTestBackend(t)

	in := &types.NodeType{
		Name:        "app:asset",
		Supertypes:  []string{"nt:hierarchyNode", "mix:title", "mix:referenceable"},
		Orderable:   true,
		PrimaryItem: "app:data",
		Properties: []*types.PropertyDefinition{
			{Name: "app:data", Mandatory: true, DefaultValues: []string{"a", "b"}, OnParentVersion: types.OnParentVersionCopy},
			{Name: "app:size", Multiple: true, ValueConstraints: []string{"[0,)"}, OnParentVersion: types.OnParentVersionCompute},
			{Name: "*", AutoCreated: true, Protected: true, OnParentVersion: types.OnParentVersionIgnore},
		},
		ChildNodes: []*types.ChildNodeDefinition{
			{Name: "app:rendition", RequiredPrimaryTypes: []string{"nt:file"}, DefaultPrimaryType: "nt:file", SameNameSiblings: true, OnParentVersion: types.OnParentVersionVersion},
			{Name: "*", Mandatory: true, OnParentVersion: types.OnParentVersionAbort},
		},
	}
	require.NoError(t, b.Import([]*types.NodeType{in}, nil))

	got := findNodeType(t, b, "app:asset")
	assert.Equal(t, in, got)
}

func TestSession_AbsentFacetsStayNil(t *testing.T) {
	b, _ := attachTestBackend(t)
	require.NoError(t, b.Import([]*types.NodeType{{
		Name:       "app:empty",
		Properties: []*types.PropertyDefinition{{Name: "p", OnParentVersion: types.OnParentVersionCopy}},
		ChildNodes: []*types.ChildNodeDefinition{{Name: "c", OnParentVersion: types.OnParentVersionCopy}},
	}}, nil))

	got := findNodeType(t, b, "app:empty")
	assert.Nil(t, got.Supertypes)
	assert.Empty(t, got.PrimaryItem)
	require.Len(t, got.Properties, 1)
	assert.Nil(t, got.Properties[0].DefaultValues)
	assert.Nil(t, got.Properties[0].ValueConstraints)
	require.Len(t, got.ChildNodes, 1)
	assert.Nil(t, got.ChildNodes[0].RequiredPrimaryTypes)
	assert.Empty(t, got.ChildNodes[0].DefaultPrimaryType)
}

func TestSession_StoreOrder(t *testing.T) {
	b, _ := attachTestBackend(t)
	require.NoError(t, b.Import([]*types.NodeType{{Name: "zz:last"}, {Name: "aa:first"}}, nil))

	names := nodeTypeNames(t, b)
	require.GreaterOrEqual(t, len(names), len(builtInNodeTypes)+2)
	assert.Equal(t, builtInNodeTypes[0].Name, names[0])
	assert.Equal(t, []string{"zz:last", "aa:first"}, names[len(names)-2:])
}

func TestSession_StopEarly(t *testing.T) {
	b, _ := attachTestBackend(t)
	sess, err := b.Login(context.Background())
	require.NoError(t, err)
	defer sess.Logout()

	count := 0
	for _, err := range sess.NodeTypes() {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestSession_Closed(t *testing.T) {
	b, _ := attachTestBackend(t)
	sess, err := b.Login(context.Background())
	require.NoError(t, err)
	require.NoError(t, sess.Logout())
	require.NoError(t, sess.Logout(), "Logout should be idempotent")

	for nt, err := range sess.NodeTypes() {
		assert.Nil(t, nt)
		assert.ErrorIs(t, err, types.ErrSessionClosed)
	}
	_, err = sess.NamespacePrefixes()
	assert.ErrorIs(t, err, types.ErrSessionClosed)
	_, err = sess.NamespaceURI("jcr")
	assert.ErrorIs(t, err, types.ErrSessionClosed)
}

func TestSession_Namespaces(t *testing.T) {
	b, _ := attachTestBackend(t)
	require.NoError(t, b.Import(nil, []types.Namespace{{Prefix: "app", URI: "http://example.com/app"}}))

	sess, err := b.Login(context.Background())
	require.NoError(t, err)
	defer sess.Logout()

	all, err := sess.NamespacePrefixes()
	require.NoError(t, err)
	assert.Equal(t, []string{"", "app", "jcr", "mix", "nt", "xml"}, all)

	global, err := sess.RegistryPrefixes()
	require.NoError(t, err)
	assert.NotContains(t, global, "app")
	assert.Contains(t, global, "jcr")

	uri, err := sess.NamespaceURI("app")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/app", uri)

	_, err = sess.NamespaceURI("nope")
	assert.ErrorIs(t, err, types.ErrNamespaceNotFound)
}
