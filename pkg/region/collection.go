package region

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrEmptyName is returned by [Collection.Create] when the region name
	// is empty. All regions must have non-empty names.
	ErrEmptyName = errors.New("region name must not be empty")

	// ErrDuplicateName is returned by [Collection.Create] when a region with
	// the same name already exists. Region names are unique per collection.
	ErrDuplicateName = errors.New("duplicate region name")
)

// Collection is an ordered, name-unique sequence of regions forming a
// single inheritance chain: each region's parent is the region created
// before it, and the first region has no parent. The collection exclusively
// owns its regions; a region's parent is a non-owning back-reference into
// the same collection.
//
// Collection is not safe for concurrent use.
type Collection struct {
	regions []*Region
	byName  map[string]*Region
}

// New creates an empty collection.
func New() *Collection {
	return &Collection{byName: make(map[string]*Region)}
}

// Create appends a new region whose parent is the most recently created
// region, or no parent if the collection is empty, and returns it.
// Returns ErrEmptyName for an empty name or ErrDuplicateName if the name
// is already taken; the collection is unchanged on error.
func (c *Collection) Create(name string) (*Region, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, exists := c.byName[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	var parent *Region
	if n := len(c.regions); n > 0 {
		parent = c.regions[n-1]
	}

	r := newRegion(name, parent)
	c.regions = append(c.regions, r)
	c.byName[name] = r
	return r, nil
}

// ByName returns the named region and true, or nil and false if absent.
func (c *Collection) ByName(name string) (*Region, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// Remove detaches the named region from the collection and returns it, or
// nil and false if no region has that name.
//
// When a region in the middle of the chain is removed, its successor is
// relinked to the removed region's former parent. This keeps the chain
// invariant (each region's parent is its predecessor) intact and cannot
// introduce a cycle, since the former parent always precedes the successor.
// The removed region keeps its own entries and parent pointer but is no
// longer reachable through the collection.
func (c *Collection) Remove(name string) (*Region, bool) {
	removed, ok := c.byName[name]
	if !ok {
		return nil, false
	}

	i := slices.Index(c.regions, removed)
	if i+1 < len(c.regions) {
		c.regions[i+1].parent = removed.parent
	}
	c.regions = slices.Delete(c.regions, i, i+1)
	delete(c.byName, name)
	return removed, true
}

// All returns a lazy, restartable sequence over the regions in insertion
// order.
func (c *Collection) All() iter.Seq[*Region] {
	return func(yield func(*Region) bool) {
		for _, r := range c.regions {
			if !yield(r) {
				return
			}
		}
	}
}

// Len returns the number of regions in the collection.
func (c *Collection) Len() int { return len(c.regions) }

// IsEmpty reports whether the collection holds no regions.
func (c *Collection) IsEmpty() bool { return len(c.regions) == 0 }
