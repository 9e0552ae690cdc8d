package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/apiregions/regions/pkg/feature"
	"github.com/apiregions/regions/pkg/region"
	"github.com/apiregions/regions/pkg/regionjson"
)

// readCollection loads a region collection from path. The file may be the
// bare api-regions array or a feature manifest whose api-regions extension
// carries the array; the form is detected from the first JSON token.
func readCollection(path string) (*region.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var c *region.Collection
	switch firstToken(data) {
	case '[':
		c, err = regionjson.Parse(data)
	case '{':
		c, err = feature.Regions(data)
	default:
		err = fmt.Errorf("%w: expected a JSON array or object", regionjson.ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// readWire loads the wire-level region array from path without building a
// model, so entries the model would silently drop stay visible. Accepts the
// same two input forms as readCollection.
func readWire(path string) ([]regionjson.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if firstToken(data) == '{' {
		ext, err := feature.Extract(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		data = []byte(ext.Text)
	}

	wire, err := regionjson.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wire, nil
}

// firstToken returns the first non-whitespace byte, or 0 for blank input.
func firstToken(data []byte) byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
