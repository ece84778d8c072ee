package reportdiff

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseline = "[nt:base] > \n- jcr:primaryType mandatory COMPUTE\n\n"

func TestCompare_Identical(t *testing.T) {
	res := Compare(baseline, baseline)
	assert.False(t, res.Changed())
	require.Len(t, res.Lines, 3)
	for _, l := range res.Lines {
		assert.Equal(t, Equal, l.Op)
	}
}

func TestCompare_ChangedLine(t *testing.T) {
	current := "[nt:base] > \n- jcr:primaryType mandatory autocreated COMPUTE\n\n"
	res := Compare(baseline, current)

	assert.True(t, res.Changed())
	assert.Equal(t, []Line{
		{Op: Equal, Text: "[nt:base] > "},
		{Op: Delete, Text: "- jcr:primaryType mandatory COMPUTE"},
		{Op: Insert, Text: "- jcr:primaryType mandatory autocreated COMPUTE"},
		{Op: Equal, Text: ""},
	}, res.Lines)

	inserted, deleted := res.Counts()
	assert.Equal(t, 1, inserted)
	assert.Equal(t, 1, deleted)
}

func TestCompare_AddedBlock(t *testing.T) {
	current := baseline + "[nt:folder] > nt:hierarchyNode\n\n"
	res := Compare(baseline, current)

	inserted, deleted := res.Counts()
	assert.Equal(t, 2, inserted)
	assert.Zero(t, deleted)
}

func TestCompare_EmptyInputs(t *testing.T) {
	res := Compare("", "")
	assert.False(t, res.Changed())
	assert.Empty(t, res.Lines)
}

func TestWrite(t *testing.T) {
	res := Compare("a\nb\n", "a\nc\n")

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, res.Write(&buf, false))
		assert.Equal(t, "  a\n- b\n+ c\n", buf.String())
	})

	t.Run("colour", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, res.Write(&buf, true))
		assert.Contains(t, buf.String(), "\x1b[")
		assert.Contains(t, buf.String(), "+ c")
	})
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "report")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, ColorEnabled(f), "regular files are not terminals")
}
