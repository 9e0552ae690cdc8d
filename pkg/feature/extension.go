// Package feature extracts the api-regions declaration out of a feature
// manifest: a JSON object whose top-level keys name extensions and whose
// values carry their payloads. The api-regions payload is treated as opaque
// text here; its shape is owned by package regionjson.
//
// Extension keys may carry type and policy markers after the name, e.g.
// "api-regions:JSON|optional". Only the name part is matched.
package feature

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/apiregions/regions/pkg/region"
	"github.com/apiregions/regions/pkg/regionjson"
)

// ExtensionName is the feature extension that carries region declarations.
const ExtensionName = "api-regions"

var (
	// ErrMalformed is returned when the feature manifest is not a JSON object.
	ErrMalformed = errors.New("malformed feature manifest")

	// ErrNoExtension is returned when the manifest carries no api-regions
	// extension.
	ErrNoExtension = errors.New("feature has no api-regions extension")
)

// Extension is a named extension payload lifted out of a feature manifest.
// Text is the raw JSON of the payload.
type Extension struct {
	Name string
	Text string
}

// Extract returns the api-regions extension from a feature manifest.
// The manifest must be a JSON object; the extension key may be bare
// ("api-regions") or annotated ("api-regions:JSON|optional"). When a
// manifest carries both forms, the bare key wins; otherwise the lexically
// smallest annotated key does.
func Extract(featureJSON []byte) (Extension, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(featureJSON, &doc); err != nil {
		return Extension{}, fmt.Errorf("%w: %s", ErrMalformed, err)
	}

	if raw, ok := doc[ExtensionName]; ok {
		return Extension{Name: ExtensionName, Text: string(raw)}, nil
	}
	for _, key := range slices.Sorted(maps.Keys(doc)) {
		name, _, _ := strings.Cut(key, ":")
		if name != ExtensionName {
			continue
		}
		return Extension{Name: name, Text: string(doc[key])}, nil
	}
	return Extension{}, ErrNoExtension
}

// Regions extracts the api-regions extension from a feature manifest and
// parses its payload into a region collection.
func Regions(featureJSON []byte) (*region.Collection, error) {
	ext, err := Extract(featureJSON)
	if err != nil {
		return nil, err
	}
	return regionjson.Parse([]byte(ext.Text))
}
