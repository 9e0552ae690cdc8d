package regionjson

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiregions/regions/pkg/region"
)

func TestWriteEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(region.New(), &buf))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestWriteOwnExportsOnly(t *testing.T) {
	c, err := Parse([]byte(felixInput))
	require.NoError(t, err)

	out, err := Marshal(c)
	require.NoError(t, err)

	var wire []Region
	require.NoError(t, json.Unmarshal(out, &wire))
	require.Len(t, wire, 2)

	// Inherited entries must not leak into a region's own exports.
	assert.Equal(t, "base", wire[0].Name)
	assert.Equal(t, []string{"org.apache.felix.inventory"}, wire[0].Exports)
	assert.Equal(t, "extended", wire[1].Name)
	assert.Equal(t, []string{"org.apache.felix.scr.component"}, wire[1].Exports)
}

func TestRoundTrip(t *testing.T) {
	c := region.New()
	base, _ := c.Create("base")
	base.Add("org.apache.felix.inventory")
	base.Add("org.apache.felix.metatype")
	ext, _ := c.Create("extended")
	ext.Add("org.apache.felix.scr.component")
	_, _ = c.Create("empty")

	first, err := Marshal(c)
	require.NoError(t, err)

	reparsed, err := Parse(first)
	require.NoError(t, err)

	second, err := Marshal(reparsed)
	require.NoError(t, err)

	// serialize(parse(serialize(c))) == serialize(c): names, order, and
	// per-region own exports all survive the trip.
	assert.Equal(t, string(first), string(second))
}

func TestWriteFileRoundTrip(t *testing.T) {
	c, err := Parse([]byte(felixInput))
	require.NoError(t, err)

	path := t.TempDir() + "/regions.json"
	require.NoError(t, WriteFile(c, path))

	back, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, c.Len(), back.Len())
}
