package regionjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apiregions/regions/pkg/region"
)

// Write serializes the collection to w as the api-regions wire format:
// one object per region in insertion order, each with the region's own
// exports only, sorted. An empty collection writes the empty array "[]".
// Write does not flush or close w; the sink's lifecycle belongs to the
// caller.
func Write(c *region.Collection, w io.Writer) error {
	out := make([]Region, 0, c.Len())
	for r := range c.All() {
		out = append(out, Region{Name: r.Name(), Exports: r.Exports()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal serializes the collection to JSON bytes.
func Marshal(c *region.Collection) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(c, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the collection to a file at path, created with 0644
// permissions.
func WriteFile(c *region.Collection, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(c, f)
}
