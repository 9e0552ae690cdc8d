package regionjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/apiregions/regions/pkg/region"
)

// ErrMalformed is returned when the input does not match the api-regions
// wire shape. The wrapped message names the structural problem.
var ErrMalformed = errors.New("malformed api-regions document")

// Region is the wire form of a single region: its name and its own exports.
type Region struct {
	Name    string   `json:"name"`
	Exports []string `json:"exports"`
}

// Decode reads the wire-level array from r without building a model.
// It validates structure only: exports that would be dropped by the model's
// identifier rules are passed through untouched, which makes Decode the
// right entry point for lint tooling that wants to see them.
func Decode(r io.Reader) ([]Region, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return decode(data)
}

func decode(data []byte) ([]Region, error) {
	var raw []struct {
		Name    *string   `json:"name"`
		Exports []*string `json:"exports"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}

	out := make([]Region, len(raw))
	for i, obj := range raw {
		if obj.Name == nil {
			return nil, fmt.Errorf("%w: element %d has no \"name\"", ErrMalformed, i)
		}
		var exports []string
		for j, e := range obj.Exports {
			// encoding/json maps a JSON null onto the zero value, so a
			// plain []string would swallow it; the pointer form keeps it
			// visible.
			if e == nil {
				return nil, fmt.Errorf("%w: element %d has a null export at index %d", ErrMalformed, i, j)
			}
			exports = append(exports, *e)
		}
		out[i] = Region{Name: *obj.Name, Exports: exports}
	}
	return out, nil
}

// Parse builds a region collection from api-regions JSON text. Each array
// element becomes a region inheriting from its predecessor; invalid exports
// are dropped silently. Parse returns an error, and no collection, when the
// document is structurally malformed ([ErrMalformed]) or a region name is
// empty or duplicated ([region.ErrEmptyName], [region.ErrDuplicateName]).
func Parse(data []byte) (*region.Collection, error) {
	wire, err := decode(data)
	if err != nil {
		return nil, err
	}

	c := region.New()
	for _, w := range wire {
		r, err := c.Create(w.Name)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", w.Name, err)
		}
		if err := r.AddAll(slices.Values(w.Exports)); err != nil {
			return nil, fmt.Errorf("region %q: %w", w.Name, err)
		}
	}
	return c, nil
}

// Read decodes a region collection from r. It does not close r.
func Read(r io.Reader) (*region.Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return Parse(data)
}

// ReadFile reads the api-regions file at path and returns the decoded
// collection. The error wraps the underlying cause with the file path.
func ReadFile(path string) (*region.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
