package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

func TestSeedBuiltInsOnFirstRun(t *testing.T) {
	b, dataDir := attachTestBackend(t)

	names := nodeTypeNames(t, b)
	want := make([]string, 0, len(builtInNodeTypes))
	for _, nt := range builtInNodeTypes {
		want = append(want, nt.Name)
	}
	assert.Equal(t, want, names)

	for _, name := range jsonlFiles {
		info, err := os.Stat(filepath.Join(dataDir, name))
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), "%s should be seeded", name)
	}
}

func TestSeedIsNotRepeated(t *testing.T) {
	dataDir := t.TempDir()
	config := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

	b := NewBackend()
	require.NoError(t, b.Attach(config))
	require.NoError(t, b.Detach())

	// Trim the seeded node types to one record; a reattach must keep it that way.
	path := filepath.Join(dataDir, nodeTypesJSONL)
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"nt:base"}`+"\n"), 0o644))

	b2 := NewBackend()
	require.NoError(t, b2.Attach(config))
	defer b2.Detach()
	assert.Equal(t, []string{"nt:base"}, nodeTypeNames(t, b2))
}

func TestBuiltInNodeTypesUseKnownActions(t *testing.T) {
	for _, nt := range builtInNodeTypes {
		for _, p := range nt.Properties {
			_, err := types.NameFromValue(p.OnParentVersion)
			assert.NoError(t, err, "%s/%s", nt.Name, p.Name)
		}
		for _, c := range nt.ChildNodes {
			_, err := types.NameFromValue(c.OnParentVersion)
			assert.NoError(t, err, "%s/+%s", nt.Name, c.Name)
		}
	}
}
