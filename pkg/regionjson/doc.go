// Package regionjson converts region collections to and from the
// api-regions wire format: a JSON array of objects, one per region, in
// inheritance order.
//
//	[
//	  {"name": "base", "exports": ["org.apache.felix.inventory"]},
//	  {"name": "extended", "exports": ["org.apache.felix.scr.component"]}
//	]
//
// Element i inherits from element i-1. The "exports" field is optional and
// holds only a region's own entries, never inherited ones. On input,
// exports that fail the package-identifier rules are dropped silently, per
// the model's best-effort contract; structural problems (top-level value
// not an array, element not an object, missing or non-string name,
// non-string exports) abort the whole parse with [ErrMalformed] and no
// partial collection is returned.
//
// Output is deterministic: regions in insertion order, each region's own
// exports sorted, so parse/serialize round trips are stable.
package regionjson
